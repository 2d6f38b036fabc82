package scene

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"clear-skies/internal/core"
)

func TestNewCompositorStartsWhite(t *testing.T) {
	c := NewCompositor(core.Size{W: 4, H: 3})
	for i, v := range c.Surface().Pix {
		if v != 0xff {
			t.Fatalf("pixel byte %d = %d, expected opaque white", i, v)
		}
	}
}

func TestCaptureRestoreIsByteIdentical(t *testing.T) {
	c := NewCompositor(core.Size{W: 8, H: 8})
	c.Clear(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	c.Capture()
	want := append([]uint8(nil), c.Surface().Pix...)

	c.Clear(color.RGBA{R: 200, A: 255})
	c.Restore()

	if !bytes.Equal(want, c.Surface().Pix) {
		t.Fatal("restored surface differs from captured frame")
	}
	if !bytes.Equal(want, c.Snapshot().Pix) {
		t.Fatal("snapshot changed after restore")
	}
}

func TestPresentedClearsToWhite(t *testing.T) {
	c := NewCompositor(core.Size{W: 2, H: 2})
	c.Clear(color.Black)
	c.MarkComposited()
	if !c.Fresh() {
		t.Fatal("expected fresh frame after MarkComposited")
	}
	c.Presented()
	if c.Fresh() {
		t.Fatal("frame still fresh after Presented")
	}
	if got := c.Surface().RGBAAt(1, 1); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("surface pixel = %v, expected opaque white", got)
	}
}

func TestBlitComposites(t *testing.T) {
	c := NewCompositor(core.Size{W: 4, H: 4})
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(src, src.Rect, image.NewUniform(color.RGBA{G: 255, A: 255}), image.Point{}, draw.Src)
	c.Blit(src, image.Pt(2, 2))

	if got := c.Surface().RGBAAt(3, 3); got.G != 255 || got.R != 0 {
		t.Fatalf("blitted pixel = %v, expected green", got)
	}
	if got := c.Surface().RGBAAt(1, 1); got.R != 255 {
		t.Fatalf("pixel outside blit = %v, expected white", got)
	}
}

func TestBoxBlurPreservesUniformImage(t *testing.T) {
	c := NewCompositor(core.Size{W: 16, H: 9})
	fill := color.RGBA{R: 90, G: 140, B: 60, A: 255}
	c.Clear(fill)
	c.BoxBlur(2)
	for y := 0; y < 9; y++ {
		for x := 0; x < 16; x++ {
			if got := c.Surface().RGBAAt(x, y); got != fill {
				t.Fatalf("pixel (%d,%d) = %v, expected %v", x, y, got, fill)
			}
		}
	}
}

func TestBoxBlurSpreadsSinglePixel(t *testing.T) {
	c := NewCompositor(core.Size{W: 11, H: 11})
	c.Clear(color.Black)
	c.Surface().SetRGBA(5, 5, color.RGBA{R: 250, G: 250, B: 250, A: 255})
	c.BoxBlur(2)

	center := c.Surface().RGBAAt(5, 5)
	if center.R != 10 {
		t.Fatalf("center = %d, expected 250/25 = 10", center.R)
	}
	if got := c.Surface().RGBAAt(7, 7).R; got != 10 {
		t.Fatalf("pixel inside kernel = %d, expected 10", got)
	}
	if got := c.Surface().RGBAAt(8, 5).R; got != 0 {
		t.Fatalf("pixel outside kernel = %d, expected 0", got)
	}
}

func TestBoxBlurZeroRadiusIsNoop(t *testing.T) {
	c := NewCompositor(core.Size{W: 3, H: 3})
	c.Surface().SetRGBA(1, 1, color.RGBA{R: 7, A: 255})
	before := append([]uint8(nil), c.Surface().Pix...)
	c.BoxBlur(0)
	if !bytes.Equal(before, c.Surface().Pix) {
		t.Fatal("radius 0 modified the surface")
	}
}
