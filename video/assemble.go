package video

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Teempact/script-to-video-gen/internal/media"
)

// Assembler concatenates scene clips in order into one encoded file.
// A primary-codec failure is retried exactly once with the fallback
// codec before giving up.
type Assembler struct {
	Runner media.Runner
	Config Config
}

// Assemble writes the concatenated video to outPath.
func (a *Assembler) Assemble(ctx context.Context, clipPaths []string, outPath string) error {
	if len(clipPaths) == 0 {
		return fmt.Errorf("assemble: no clips")
	}

	if err := a.encode(ctx, clipPaths, outPath, a.Config.VideoCodec); err != nil {
		log.Printf("Primary codec %s failed (%v), retrying with %s", a.Config.VideoCodec, err, a.Config.FallbackVideoCodec)
		if err := a.encode(ctx, clipPaths, outPath, a.Config.FallbackVideoCodec); err != nil {
			return fmt.Errorf("encode video: %w", err)
		}
	}
	return nil
}

// encode runs one ffmpeg concat pass. Every input is scaled and padded
// onto the canvas again, so clips of unexpected geometry still
// concatenate cleanly.
func (a *Assembler) encode(ctx context.Context, clipPaths []string, outPath, videoCodec string) error {
	args := []string{"-y"}
	for _, p := range clipPaths {
		args = append(args, "-i", p)
	}

	var filter strings.Builder
	for i := range clipPaths {
		fmt.Fprintf(&filter, "[%d:v]%s[v%d];", i, a.Config.scalePadFilter(), i)
	}
	for i := range clipPaths {
		fmt.Fprintf(&filter, "[v%d][%d:a]", i, i)
	}
	fmt.Fprintf(&filter, "concat=n=%d:v=1:a=1[v][a]", len(clipPaths))

	args = append(args,
		"-filter_complex", filter.String(),
		"-map", "[v]",
		"-map", "[a]",
		"-r", fmt.Sprintf("%d", a.Config.FPS),
		"-c:v", videoCodec,
		"-c:a", a.Config.AudioCodec,
		"-pix_fmt", "yuv420p",
		outPath,
	)

	return a.Runner.Run(ctx, "ffmpeg", args...)
}
