package images

import (
	"image"
	_ "image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func renderAndDecode(t *testing.T, caption string) image.Config {
	t.Helper()
	dest := filepath.Join(t.TempDir(), "placeholder.jpg")
	if err := RenderPlaceholder(caption, dest, 1280, 720); err != nil {
		t.Fatalf("RenderPlaceholder error: %v", err)
	}

	f, err := os.Open(dest)
	if err != nil {
		t.Fatalf("open rendered image: %v", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode rendered image: %v", err)
	}
	return cfg
}

func TestRenderPlaceholder_CanvasSize(t *testing.T) {
	cfg := renderAndDecode(t, "A short caption")
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Fatalf("canvas = %dx%d, want 1280x720", cfg.Width, cfg.Height)
	}
}

func TestRenderPlaceholder_EmptyCaption(t *testing.T) {
	cfg := renderAndDecode(t, "")
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Fatalf("canvas = %dx%d, want 1280x720", cfg.Width, cfg.Height)
	}
}

func TestRenderPlaceholder_OversizedCaption(t *testing.T) {
	// Far past the 400-char cap; must truncate, not fail.
	caption := strings.Repeat("sprawling nebulae and distant moons ", 40)
	cfg := renderAndDecode(t, caption)
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Fatalf("canvas = %dx%d, want 1280x720", cfg.Width, cfg.Height)
	}
}

func TestWrapCaption_WidthAndCap(t *testing.T) {
	lines := wrapCaption(strings.Repeat("word ", 200))
	total := 0
	for i, line := range lines {
		if len(line) > wrapWidth {
			t.Fatalf("line %d exceeds wrap width: %q", i, line)
		}
		total += len(line)
	}
	total += len(lines) - 1 // rejoined newlines count against the cap
	if total > maxCaptionLen {
		t.Fatalf("wrapped caption length %d exceeds cap %d", total, maxCaptionLen)
	}
}
