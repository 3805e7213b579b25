// Package pipeline runs one script-to-video conversion: segment the
// script, narrate and illustrate each scene, build fixed-canvas clips,
// and concatenate them into a single MP4.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Teempact/script-to-video-gen/images"
	"github.com/Teempact/script-to-video-gen/internal/media"
	"github.com/Teempact/script-to-video-gen/narration"
	"github.com/Teempact/script-to-video-gen/processing"
	"github.com/Teempact/script-to-video-gen/video"
)

// captionLimit bounds the scene text passed to the placeholder
// renderer as a caption.
const captionLimit = 120

// ErrEmptyScript is returned before the pipeline starts when the
// script trims to nothing.
var ErrEmptyScript = errors.New("script is empty")

// Progress is emitted after each scene's clip is ready.
type Progress struct {
	Scene int
	Total int
}

// SceneResult records how one scene was produced.
type SceneResult struct {
	SceneNumber int
	Text        string
	Keyword     string
	Duration    float64
	ImageSource string // "pexels" or "placeholder"
}

// Result is the outcome of a successful run.
type Result struct {
	OutputPath string
	Duration   float64
	Scenes     []SceneResult
}

// Pipeline converts one script into one video file. All collaborators
// are injected; nothing reads ambient credentials.
type Pipeline struct {
	Narrator narration.Synthesizer
	Images   images.Source
	Runner   media.Runner
	Config   video.Config

	// OutputPath is overwritten on every run. Empty selects
	// DefaultOutputPath.
	OutputPath string

	// Progress, when non-nil, receives an event after each scene
	// completes. Sends never block; a slow subscriber misses events
	// rather than stalling the run.
	Progress chan<- Progress
}

// New builds a pipeline with the default 720p profile.
func New(narrator narration.Synthesizer, imgs images.Source, runner media.Runner) *Pipeline {
	return &Pipeline{
		Narrator: narrator,
		Images:   imgs,
		Runner:   runner,
		Config:   video.DefaultConfig(),
	}
}

// DefaultOutputPath is the fixed well-known artifact location. Later
// runs overwrite earlier ones.
func DefaultOutputPath() string {
	return filepath.Join(os.TempDir(), "script2video_output.mp4")
}

// Run executes the whole conversion. Narration and encoding failures
// are fatal; image acquisition never is.
func (p *Pipeline) Run(ctx context.Context, script, keywords string) (*Result, error) {
	if strings.TrimSpace(script) == "" {
		return nil, ErrEmptyScript
	}

	scenes := processing.Segment(script)
	total := len(scenes)
	log.Printf("Detected %d scene(s)", total)

	if !p.Images.Configured() {
		log.Printf("No image provider credential configured, placeholder images will be used")
	}

	workDir, err := os.MkdirTemp("", "s2v_")
	if err != nil {
		return nil, fmt.Errorf("create working directory: %w", err)
	}
	defer os.RemoveAll(workDir) // best effort

	outputPath := p.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputPath()
	}

	builder := &video.Builder{Runner: p.Runner, Config: p.Config}
	assembler := &video.Assembler{Runner: p.Runner, Config: p.Config}

	result := &Result{OutputPath: outputPath}
	var clipPaths []string

	for i, scene := range scenes {
		audioPath := filepath.Join(workDir, fmt.Sprintf("scene_%d.mp3", i))
		imagePath := filepath.Join(workDir, fmt.Sprintf("scene_%d.jpg", i))
		clipPath := filepath.Join(workDir, fmt.Sprintf("clip_%d.mp4", i))

		var duration float64
		var imageSource string
		keyword := processing.ExtractKeyword(scene, keywords)

		// Narration and image acquisition for the same scene are
		// independent; scene order is preserved because scene i+1 does
		// not start until both finish and the clip is built.
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			d, err := p.Narrator.Synthesize(gctx, scene, audioPath)
			if err != nil {
				return fmt.Errorf("narration synthesis: %w", err)
			}
			duration = d
			return nil
		})
		g.Go(func() error {
			src, err := p.sceneImage(gctx, scene, keyword, imagePath)
			if err != nil {
				return err
			}
			imageSource = src
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("scene %d/%d: %w", i+1, total, err)
		}

		if err := builder.BuildClip(ctx, imagePath, audioPath, duration, clipPath); err != nil {
			return nil, fmt.Errorf("scene %d/%d: %w", i+1, total, err)
		}
		clipPaths = append(clipPaths, clipPath)

		result.Scenes = append(result.Scenes, SceneResult{
			SceneNumber: i + 1,
			Text:        scene,
			Keyword:     keyword,
			Duration:    duration,
			ImageSource: imageSource,
		})
		result.Duration += duration

		log.Printf("Prepared scene %d/%d (%.1fs, %s image)", i+1, total, duration, imageSource)
		p.emit(Progress{Scene: i + 1, Total: total})
	}

	if err := assembler.Assemble(ctx, clipPaths, outputPath); err != nil {
		return nil, err
	}

	log.Printf("Video written to %s (%.1fs total)", outputPath, result.Duration)
	return result, nil
}

// sceneImage acquires the scene's still image, degrading to the
// placeholder for every outcome short of a downloaded photo.
func (p *Pipeline) sceneImage(ctx context.Context, sceneText, keyword, destPath string) (string, error) {
	if p.Images.Configured() {
		res := p.Images.Fetch(ctx, keyword, destPath)
		switch res.Status {
		case images.TransientError:
			log.Printf("Image fetch failed for %q: %v, using placeholder", keyword, res.Err)
		case images.NotFound:
			log.Printf("No image found for %q, using placeholder", keyword)
		}
		if !images.UsePlaceholder(res) {
			return "pexels", nil
		}
	}

	caption := truncateRunes(sceneText, captionLimit)
	if err := images.RenderPlaceholder(caption, destPath, p.Config.Width, p.Config.Height); err != nil {
		return "", err
	}
	return "placeholder", nil
}

func (p *Pipeline) emit(ev Progress) {
	if p.Progress == nil {
		return
	}
	select {
	case p.Progress <- ev:
	default:
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
