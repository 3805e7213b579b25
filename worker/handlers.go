package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Teempact/script-to-video-gen/images"
	"github.com/Teempact/script-to-video-gen/internal/media"
	"github.com/Teempact/script-to-video-gen/models"
	"github.com/Teempact/script-to-video-gen/narration"
	"github.com/Teempact/script-to-video-gen/pipeline"
	"github.com/Teempact/script-to-video-gen/tasks"
)

// HandleRenderVideo processes tasks from QueueVideoRender: it runs the
// whole script-to-video pipeline for one render row.
func (p *Processor) HandleRenderVideo(ctx context.Context, payload string) error {
	var task tasks.RenderTaskPayload
	if err := json.Unmarshal([]byte(payload), &task); err != nil {
		return err
	}

	log.Printf("Processing render %d", task.RenderID)
	var render models.Render
	if err := p.DB.First(&render, task.RenderID).Error; err != nil {
		return err
	}

	p.DB.Model(&render).Update("status", "processing")

	outputDir := os.Getenv("RENDER_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "renders"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		p.failRender(&render, err)
		return err
	}

	runner := media.ExecRunner{}
	narrator, err := narration.NewOpenAI(os.Getenv("OPENAI_API_KEY"), runner)
	if err != nil {
		p.failRender(&render, err)
		return err
	}

	pipe := pipeline.New(narrator, images.NewPexels(os.Getenv("PEXELS_API_KEY")), runner)
	pipe.OutputPath = filepath.Join(outputDir, fmt.Sprintf("render_%d_%s.mp4", render.ID, uuid.NewString()))

	progress := make(chan pipeline.Progress, 16)
	pipe.Progress = progress
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range progress {
			log.Printf("Render %d: scene %d/%d ready", render.ID, ev.Scene, ev.Total)
		}
	}()

	result, runErr := pipe.Run(ctx, render.Script, render.Keywords)
	close(progress)
	<-done

	if runErr != nil {
		p.failRender(&render, runErr)
		return runErr
	}

	// Save the scene breakdown and the finished render in one transaction.
	err = p.DB.Transaction(func(tx *gorm.DB) error {
		for _, s := range result.Scenes {
			scene := models.RenderScene{
				RenderID:    render.ID,
				SceneNumber: s.SceneNumber,
				Text:        s.Text,
				Keyword:     s.Keyword,
				Duration:    s.Duration,
				ImageSource: s.ImageSource,
			}
			if err := tx.Create(&scene).Error; err != nil {
				return err
			}
		}
		return tx.Model(&render).Updates(map[string]interface{}{
			"status":      "complete",
			"scene_count": len(result.Scenes),
			"output_path": result.OutputPath,
		}).Error
	})
	if err != nil {
		p.failRender(&render, err)
		return err
	}

	log.Printf("Completed render %d: %d scenes, %.1fs, %s", render.ID, len(result.Scenes), result.Duration, result.OutputPath)
	return nil
}

func (p *Processor) failRender(render *models.Render, cause error) {
	log.Printf("Render %d failed: %v", render.ID, cause)
	p.DB.Model(render).Updates(map[string]interface{}{
		"status": "failed",
		"error":  cause.Error(),
	})
}
