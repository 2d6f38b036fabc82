package dialogue

import (
	"image"
	"image/color"
	"image/draw"
	"unicode/utf8"

	"clear-skies/internal/scene"
)

// revealRate is the typewriter speed in runes per second.
const revealRate = 45.0

// Box is the on-screen dialogue panel. Text is revealed progressively, also
// while the simulation is blocked.
type Box struct {
	name     string
	pages    []string
	page     int
	revealed float64
	layout   Layout
}

func newBox(name string, pages []string, layout Layout) *Box {
	return &Box{name: name, pages: pages, layout: layout}
}

func (b *Box) next() bool {
	if b.page+1 >= len(b.pages) {
		return false
	}
	b.page++
	b.revealed = 0
	return true
}

// Update advances the typewriter effect.
func (b *Box) Update(dt float64) { b.Animate(dt) }

// Animate advances the typewriter effect without simulation time.
func (b *Box) Animate(dt float64) {
	b.revealed += dt * revealRate
	if limit := float64(utf8.RuneCountInString(b.pages[b.page])); b.revealed > limit {
		b.revealed = limit
	}
}

// Visible returns the part of the current page revealed so far.
func (b *Box) Visible() string {
	text := b.pages[b.page]
	n := int(b.revealed)
	for i := range text {
		if n == 0 {
			return text[:i]
		}
		n--
	}
	return text
}

// Draw paints the panel along the bottom edge of the screen.
func (b *Box) Draw(dst draw.Image) {
	const (
		margin  = 24
		height  = 96
		padding = 16
	)
	w, h := b.layout.ScreenW, b.layout.ScreenH
	if w <= 0 || h <= 0 {
		bounds := dst.Bounds()
		w, h = bounds.Dx(), bounds.Dy()
	}
	panel := image.Rect(margin, h-margin-height, w-margin, h-margin)
	scene.FillRect(dst, panel, color.RGBA{R: 24, G: 20, B: 16, A: 220})
	scene.FillRect(dst, image.Rect(panel.Min.X, panel.Min.Y, panel.Max.X, panel.Min.Y+2), color.RGBA{R: 220, G: 190, B: 120, A: 255})

	y := panel.Min.Y + padding + 10
	for _, line := range wrap(b.Visible(), (panel.Dx()-2*padding)/7) {
		scene.DrawText(dst, line, panel.Min.X+padding, y, color.RGBA{R: 245, G: 236, B: 214, A: 255})
		y += scene.LineHeight
	}
	if int(b.revealed) >= utf8.RuneCountInString(b.pages[b.page]) {
		hint := "[T] continue"
		scene.DrawText(dst, hint, panel.Max.X-padding-scene.TextWidth(hint), panel.Max.Y-padding, color.RGBA{R: 200, G: 180, B: 140, A: 255})
	}
}

func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	for len(text) > width {
		cut := width
		for i := width; i > 0; i-- {
			if text[i] == ' ' {
				cut = i
				break
			}
		}
		lines = append(lines, text[:cut])
		text = text[cut:]
		for len(text) > 0 && text[0] == ' ' {
			text = text[1:]
		}
	}
	return append(lines, text)
}
