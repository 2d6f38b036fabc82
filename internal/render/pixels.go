package render

import "image"

// FlipRows copies img into buf as tightly packed RGBA with the row order
// reversed, the bottom-up layout the post-process pass samples from. buf must
// hold 4*w*h bytes.
func FlipRows(buf []byte, img *image.RGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	rowLen := 4 * w
	if len(buf) < rowLen*h {
		return
	}
	for y := 0; y < h; y++ {
		src := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		dst := (h - 1 - y) * rowLen
		copy(buf[dst:dst+rowLen], img.Pix[src:src+rowLen])
	}
}
