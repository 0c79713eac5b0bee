package cmd

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/phanxgames/panzoom"
)

const (
	checkerW    = 1200
	checkerH    = 800
	checkerTile = 50
)

// loadImage decodes the image named by args, or builds the built-in
// checkerboard when args is empty.
func loadImage(args []string) (image.Image, string, error) {
	if len(args) == 0 {
		return checkerboard(checkerW, checkerH, checkerTile), "checkerboard", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", args[0], err)
	}
	return img, filepath.Base(args[0]), nil
}

// checkerboard draws alternating tiles shaded by position so panning is easy
// to follow.
func checkerboard(w, h, tile int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := uint8(40 + 180*x/w)
			b := uint8(40 + 180*y/h)
			c := color.RGBA{R: r, G: 60, B: b, A: 255}
			if (x/tile+y/tile)%2 == 0 {
				c = color.RGBA{R: r / 2, G: 30, B: b / 2, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// fitSize scales src to fit inside box while keeping its aspect ratio.
func fitSize(src, box panzoom.Size) panzoom.Size {
	if src.Width <= 0 || src.Height <= 0 {
		return box
	}
	s := min(box.Width/src.Width, box.Height/src.Height)
	if s < 0 {
		s = 0
	}
	return panzoom.Size{Width: src.Width * s, Height: src.Height * s}
}

func imageSize(img image.Image) panzoom.Size {
	b := img.Bounds()
	return panzoom.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}
