//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Pipeline uploads the composited frame and runs the full-screen post pass.
type Pipeline struct {
	ctx      *Context
	vertices []ebiten.Vertex
	indices  []uint16
	opts     ebiten.DrawTrianglesShaderOptions
	fallback ebiten.DrawImageOptions
}

// NewPipeline prepares the triangle geometry and draw options for ctx.
func NewPipeline(ctx *Context) *Pipeline {
	p := &Pipeline{ctx: ctx, indices: []uint16{0, 1, 2}}
	for _, v := range FullscreenTriangle(ctx.Size.W, ctx.Size.H) {
		p.vertices = append(p.vertices, ebiten.Vertex{
			DstX:   v.DstX,
			DstY:   v.DstY,
			SrcX:   v.SrcX,
			SrcY:   v.SrcY,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}
	p.opts.Images[0] = ctx.texture
	p.opts.Uniforms = map[string]any{
		"Tint": []float32{ctx.tint[0], ctx.tint[1], ctx.tint[2]},
	}
	p.fallback.GeoM.Scale(1, -1)
	p.fallback.GeoM.Translate(0, float64(ctx.Size.H))
	return p
}

// Present uploads a freshly composited frame, if any, and draws it to screen.
// The software surface is cleared to white once its content is on the GPU.
// Host redraws without a new frame repeat the pass on the last upload.
func (p *Pipeline) Present(screen *ebiten.Image) {
	surface := p.ctx.Surface
	if surface.Fresh() {
		FlipRows(p.ctx.upload, surface.Surface())
		p.ctx.texture.WritePixels(p.ctx.upload)
		surface.Presented()
	}
	if p.ctx.shader == nil {
		screen.DrawImage(p.ctx.texture, &p.fallback)
		return
	}
	screen.DrawTrianglesShader(p.vertices, p.indices, p.ctx.shader, &p.opts)
}
