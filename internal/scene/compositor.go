// Package scene holds the software surface that every visual layer is
// composited onto before the frame is handed to the GPU pass.
package scene

import (
	"image"
	"image/color"

	"clear-skies/internal/core"

	"golang.org/x/image/draw"
)

// Compositor owns the CPU-side frame, its frozen snapshot and the scratch
// memory used by post effects. All buffers are allocated once.
type Compositor struct {
	surface  *image.RGBA
	snapshot *image.RGBA
	scratch  []uint8
	fresh    bool
}

// NewCompositor allocates a surface of the given size cleared to opaque white.
func NewCompositor(size core.Size) *Compositor {
	w, h := size.W, size.H
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	rect := image.Rect(0, 0, w, h)
	c := &Compositor{
		surface:  image.NewRGBA(rect),
		snapshot: image.NewRGBA(rect),
		scratch:  make([]uint8, 4*w*h),
	}
	c.Clear(color.White)
	return c
}

// Surface exposes the composite image that layers draw onto.
func (c *Compositor) Surface() *image.RGBA { return c.surface }

// Bounds returns the surface rectangle.
func (c *Compositor) Bounds() image.Rectangle { return c.surface.Rect }

// Clear fills the whole surface with col.
func (c *Compositor) Clear(col color.Color) {
	draw.Draw(c.surface, c.surface.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// Blit alpha-composites src with its top-left corner at at.
func (c *Compositor) Blit(src image.Image, at image.Point) {
	b := src.Bounds()
	draw.Draw(c.surface, image.Rectangle{Min: at, Max: at.Add(b.Size())}, src, b.Min, draw.Over)
}

// Capture copies the current surface into the frame snapshot.
func (c *Compositor) Capture() {
	copy(c.snapshot.Pix, c.surface.Pix)
}

// Restore replaces the surface with the last captured snapshot.
func (c *Compositor) Restore() {
	copy(c.surface.Pix, c.snapshot.Pix)
}

// Snapshot exposes the frozen frame.
func (c *Compositor) Snapshot() *image.RGBA { return c.snapshot }

// DrawCursor composites the pointer image with its hotspot at (x, y).
func (c *Compositor) DrawCursor(cursor image.Image, x, y int) {
	if cursor == nil {
		return
	}
	c.Blit(cursor, image.Pt(x, y))
}

// BoxBlur blurs the surface in place with a square kernel of the given radius.
func (c *Compositor) BoxBlur(radius int) {
	if radius <= 0 {
		return
	}
	boxBlur(c.surface, c.scratch, radius)
}

// MarkComposited flags the surface as holding a finished frame.
func (c *Compositor) MarkComposited() { c.fresh = true }

// Fresh reports whether a frame was composited since the last present.
func (c *Compositor) Fresh() bool { return c.fresh }

// Presented resets the surface after its content was uploaded, leaving it
// opaque white for the next tick.
func (c *Compositor) Presented() {
	c.fresh = false
	c.Clear(color.White)
}
