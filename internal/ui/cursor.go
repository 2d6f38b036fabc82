package ui

import (
	"image"
	"image/color"
)

// NewCursor returns the arrow pointer image drawn in software.
func NewCursor() *image.RGBA {
	const size = 16
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	outline := color.RGBA{A: 255}
	fill := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < size; y++ {
		width := y*2/3 + 1
		if y > 11 {
			width = 3
		}
		for x := 0; x <= width && x < size; x++ {
			col := fill
			if x == 0 || x == width || y == size-1 {
				col = outline
			}
			img.SetRGBA(x, y, col)
		}
	}
	return img
}
