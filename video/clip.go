package video

import (
	"context"
	"fmt"

	"github.com/Teempact/script-to-video-gen/internal/media"
)

// minClipDuration guards against zero-length narration producing an
// unencodable clip.
const minClipDuration = 0.1

// Builder turns one still image plus one narration file into a
// fixed-canvas scene clip whose playback duration equals the narration
// duration.
type Builder struct {
	Runner media.Runner
	Config Config
}

// BuildClip renders the scene clip to outPath.
func (b *Builder) BuildClip(ctx context.Context, imagePath, audioPath string, durationSec float64, outPath string) error {
	if durationSec < minClipDuration {
		durationSec = minClipDuration
	}

	args := []string{
		"-y",
		"-loop", "1",
		"-i", imagePath,
		"-i", audioPath,
		"-t", fmt.Sprintf("%.3f", durationSec),
		"-vf", b.Config.scalePadFilter(),
		"-r", fmt.Sprintf("%d", b.Config.FPS),
		"-c:v", b.Config.VideoCodec,
		"-preset", "fast",
		"-pix_fmt", "yuv420p",
		"-c:a", b.Config.AudioCodec,
		outPath,
	}

	if err := b.Runner.Run(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("build clip %s: %w", outPath, err)
	}
	return nil
}
