package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/Teempact/script-to-video-gen/internal/platform"
	"github.com/Teempact/script-to-video-gen/models"
	"github.com/Teempact/script-to-video-gen/tasks"
)

// requeueAfter is how long a render may sit in "pending" before we
// assume its queue task was lost.
const requeueAfter = 10 * time.Minute

func main() {
	// Use the shared initializers
	db := platform.NewDBConnection()
	rdb := platform.NewRedisClient()
	ctx := context.Background()

	// Create a new cron scheduler
	c := cron.New()

	if _, err := c.AddFunc("@every 10m", func() { requeueStalled(ctx, db, rdb) }); err != nil {
		log.Fatalf("Failed to schedule requeue job: %v", err)
	}
	if _, err := c.AddFunc("@every 1h", func() { purgeExpired(db) }); err != nil {
		log.Fatalf("Failed to schedule purge job: %v", err)
	}

	c.Start()
	defer c.Stop()

	log.Println("Scheduler started")
	// Keep the main thread alive
	select {}
}

// requeueStalled re-enqueues renders whose task appears to have been
// lost before a worker picked it up.
func requeueStalled(ctx context.Context, db *gorm.DB, rdb *redis.Client) {
	var stalled []models.Render
	cutoff := time.Now().Add(-requeueAfter)
	if err := db.Where("status = ? AND updated_at < ?", "pending", cutoff).Find(&stalled).Error; err != nil {
		log.Printf("Error querying stalled renders: %v", err)
		return
	}

	for _, render := range stalled {
		payload, err := tasks.Marshal(tasks.RenderTaskPayload{RenderID: render.ID})
		if err != nil {
			log.Printf("Error marshalling requeue task for render %d: %v", render.ID, err)
			continue
		}
		if err := rdb.LPush(ctx, tasks.QueueVideoRender, payload).Err(); err != nil {
			log.Printf("Error requeueing render %d: %v", render.ID, err)
			continue
		}
		// Touch the row so the next sweep does not requeue it again.
		db.Model(&render).Update("updated_at", time.Now())
		log.Printf("Requeued stalled render %d", render.ID)
	}
}

// purgeExpired deletes finished renders and their output files past
// the retention window.
func purgeExpired(db *gorm.DB) {
	retentionHours := 72
	if v := os.Getenv("RENDER_RETENTION_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			retentionHours = n
		}
	}
	cutoff := time.Now().Add(-time.Duration(retentionHours) * time.Hour)

	var expired []models.Render
	if err := db.Where("status IN ? AND updated_at < ?", []string{"complete", "failed"}, cutoff).Find(&expired).Error; err != nil {
		log.Printf("Error querying expired renders: %v", err)
		return
	}

	for _, render := range expired {
		if render.OutputPath != "" {
			if err := os.Remove(render.OutputPath); err != nil && !os.IsNotExist(err) {
				log.Printf("Error removing output file for render %d: %v", render.ID, err)
			}
		}
		if err := db.Where("render_id = ?", render.ID).Delete(&models.RenderScene{}).Error; err != nil {
			log.Printf("Error deleting scenes for render %d: %v", render.ID, err)
			continue
		}
		if err := db.Delete(&render).Error; err != nil {
			log.Printf("Error deleting render %d: %v", render.ID, err)
			continue
		}
		log.Printf("Purged expired render %d", render.ID)
	}
}
