package images

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	wrapWidth     = 40  // characters per caption line
	maxCaptionLen = 400 // wrapped caption cap, runes
	lineHeight    = 13  // basicfont.Face7x13 glyph height
	glyphAdvance  = 7   // basicfont.Face7x13 glyph advance
)

var (
	placeholderBackground = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	placeholderTextColor  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// RenderPlaceholder draws a solid dark canvas with the caption
// word-wrapped and centered, and writes it as JPEG to destPath. It is
// the guaranteed fallback when no stock image is available, so it only
// fails on filesystem errors, never on caption content.
func RenderPlaceholder(caption, destPath string, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, placeholderBackground)
		}
	}

	lines := wrapCaption(caption)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(placeholderTextColor),
		Face: basicfont.Face7x13,
	}

	startY := (height - len(lines)*lineHeight) / 2
	if startY < lineHeight {
		startY = lineHeight
	}
	for i, line := range lines {
		lineW := len(line) * glyphAdvance
		x := (width - lineW) / 2
		if x < 0 {
			x = 0
		}
		d.Dot = fixed.P(x, startY+i*lineHeight)
		d.DrawString(line)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("placeholder: %w", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("placeholder: encode: %w", err)
	}
	return nil
}

// wrapCaption word-wraps the caption to wrapWidth characters per line
// and truncates the wrapped text to maxCaptionLen runes.
func wrapCaption(caption string) []string {
	var lines []string
	var line strings.Builder

	for _, word := range strings.Fields(caption) {
		if line.Len() > 0 && line.Len()+1+len(word) > wrapWidth {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	if len(lines) == 0 {
		return nil
	}

	wrapped := strings.Join(lines, "\n")
	runes := []rune(wrapped)
	if len(runes) > maxCaptionLen {
		wrapped = string(runes[:maxCaptionLen])
	}
	return strings.Split(wrapped, "\n")
}
