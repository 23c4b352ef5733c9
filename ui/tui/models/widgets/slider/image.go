// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package slider

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ImageFrame renders img as half-block cells, width columns wide. Every cell
// carries two vertically stacked pixels.
func ImageFrame(img image.Image, width int) string {
	b := img.Bounds()
	if width <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}
	// terminal cells are about twice as tall as wide
	height := max(2, width*b.Dy()/b.Dx())
	height += height % 2

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	var sb strings.Builder
	for y := 0; y < height; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(hex(dst.At(x, y))).
				Background(hex(dst.At(x, y+1))).
				Render("▀"))
		}
	}
	return sb.String()
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// LoadFrames reads slider frames from files. Images (png, jpeg, gif, bmp,
// webp) are rendered width columns wide; .txt files are used as is.
func LoadFrames(paths []string, width int) ([]string, error) {
	frames := make([]string, 0, len(paths))
	for _, p := range paths {
		frame, err := loadFrame(p, width)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func loadFrame(path string, width int) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("could not read frame %s: %w", path, err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open frame %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("could not decode frame %s: %w", path, err)
	}
	return ImageFrame(img, width), nil
}
