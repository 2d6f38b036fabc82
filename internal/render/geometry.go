package render

// TriangleVertex is one corner of the full-screen pass in pixel units.
type TriangleVertex struct {
	DstX, DstY float32
	SrcX, SrcY float32
}

// FullscreenTriangle returns a single triangle covering a w*h target. Its
// source coordinates address a bottom-up texture of the same size, so
// destination row y samples texture row h-1-y.
func FullscreenTriangle(w, h int) [3]TriangleVertex {
	fw, fh := float32(w), float32(h)
	return [3]TriangleVertex{
		{DstX: 0, DstY: 0, SrcX: 0, SrcY: fh},
		{DstX: 2 * fw, DstY: 0, SrcX: 2 * fw, SrcY: fh},
		{DstX: 0, DstY: 2 * fh, SrcX: 0, SrcY: -fh},
	}
}
