package ui

import (
	"image"
	"image/color"
	"image/draw"

	"clear-skies/internal/scene"
)

// FastForward draws the cutscene skip hint and the overlay shown while
// the modifier key is held.
type FastForward struct {
	Hint  string
	phase float64
}

// NewFastForward returns the overlay with the default hint.
func NewFastForward() *FastForward {
	return &FastForward{Hint: "Hold [Right Shift] to fast-forward"}
}

// DrawOption paints the hint in the bottom right corner.
func (f *FastForward) DrawOption(dst draw.Image) {
	b := dst.Bounds()
	w := scene.TextWidth(f.Hint) + 2*8
	box := image.Rect(b.Max.X-w-12, b.Max.Y-12-24, b.Max.X-12, b.Max.Y-12)
	scene.FillRect(dst, box, color.RGBA{R: 10, G: 10, B: 12, A: 170})
	scene.DrawText(dst, f.Hint, box.Min.X+8, box.Min.Y+17, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

// DrawOverlay tints the whole frame and paints animated chevrons.
func (f *FastForward) DrawOverlay(dst draw.Image, dt float64) {
	f.phase += dt * 2
	if f.phase >= 1 {
		f.phase -= float64(int(f.phase))
	}
	b := dst.Bounds()
	scene.FillRect(dst, b, color.RGBA{R: 8, G: 12, B: 24, A: 80})
	label := ">>"
	if f.phase >= 0.5 {
		label = ">>>"
	}
	label += " x5"
	scene.DrawText(dst, label, b.Min.X+24, b.Min.Y+40, color.RGBA{R: 250, G: 250, B: 250, A: 255})
}
