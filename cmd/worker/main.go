package main

import (
	"context"
	"log"

	"github.com/Teempact/script-to-video-gen/internal/platform"
	"github.com/Teempact/script-to-video-gen/models"
	"github.com/Teempact/script-to-video-gen/tasks"
	"github.com/Teempact/script-to-video-gen/worker"
)

func main() {
	// Use the shared initializers
	db := platform.NewDBConnection()
	rdb := platform.NewRedisClient()
	ctx := context.Background()

	if err := db.AutoMigrate(&models.Render{}, &models.RenderScene{}); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	processor := worker.NewProcessor(db, rdb)
	processor.Register(tasks.QueueVideoRender, processor.HandleRenderVideo)

	log.Println("Worker started, waiting for queue tasks...")
	processor.Listen(ctx, tasks.QueueVideoRender)
}
