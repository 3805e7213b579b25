// Package video builds per-scene clips and concatenates them into the
// final encoded file, shelling out to ffmpeg.
package video

import "fmt"

// Config fixes the canvas geometry and encoding parameters for a run.
// Values are threaded through the Builder and Assembler instead of
// being baked into call sites.
type Config struct {
	Width      int
	Height     int
	FPS        int
	Background string // letterbox fill color

	VideoCodec         string // primary
	FallbackVideoCodec string // retried once on encode failure
	AudioCodec         string
}

// DefaultConfig is the 720p slideshow profile.
func DefaultConfig() Config {
	return Config{
		Width:              1280,
		Height:             720,
		FPS:                24,
		Background:         "black",
		VideoCodec:         "libx264",
		FallbackVideoCodec: "mpeg4",
		AudioCodec:         "aac",
	}
}

// scalePadFilter scales a frame to fit the canvas preserving aspect
// ratio, then centers it with letterbox fill. Applied both when
// building clips and again when concatenating, so the assembler never
// relies on its inputs already being uniform.
func (c Config) scalePadFilter() string {
	return fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:color=%s,setsar=1",
		c.Width, c.Height, c.Width, c.Height, c.Background,
	)
}
