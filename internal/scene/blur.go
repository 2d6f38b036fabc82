package scene

import "image"

// boxBlur runs a separable box filter: rows into tmp, then columns back into
// img. Samples past the border repeat the edge pixel.
func boxBlur(img *image.RGBA, tmp []uint8, radius int) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 || len(tmp) < 4*w*h {
		return
	}
	for y := 0; y < h; y++ {
		blurLine(tmp, y*w*4, 4, img.Pix, img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y), 4, w, radius)
	}
	for x := 0; x < w; x++ {
		blurLine(img.Pix, img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y), img.Stride, tmp, x*4, w*4, h, radius)
	}
}

func blurLine(dst []uint8, dOff, dStep int, src []uint8, sOff, sStep, n, radius int) {
	window := 2*radius + 1
	for ch := 0; ch < 4; ch++ {
		sum := 0
		for k := -radius; k <= radius; k++ {
			sum += int(src[sOff+clampIndex(k, n)*sStep+ch])
		}
		for i := 0; i < n; i++ {
			dst[dOff+i*dStep+ch] = uint8((sum + window/2) / window)
			out := clampIndex(i-radius, n)
			in := clampIndex(i+radius+1, n)
			sum += int(src[sOff+in*sStep+ch]) - int(src[sOff+out*sStep+ch])
		}
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
