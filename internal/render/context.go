//go:build ebiten

package render

import (
	"log"

	"clear-skies/internal/core"
	"clear-skies/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

// Context is the single owned render state: the software surface, the GPU
// texture it is uploaded into and the post-process shader. It is created once
// at startup and disposed at exit.
type Context struct {
	Size    core.Size
	Surface *scene.Compositor

	texture *ebiten.Image
	shader  *ebiten.Shader
	upload  []byte
	tint    [3]float32
}

// NewContext allocates the GPU texture and compiles shaderSrc. A shader that
// fails to compile is logged and the context falls back to a plain copy.
func NewContext(surface *scene.Compositor, shaderSrc []byte, tint [3]float32) *Context {
	b := surface.Bounds()
	size := core.Size{W: b.Dx(), H: b.Dy()}
	ctx := &Context{
		Size:    size,
		Surface: surface,
		texture: ebiten.NewImage(size.W, size.H),
		upload:  make([]byte, 4*size.W*size.H),
		tint:    tint,
	}
	shader, err := ebiten.NewShader(shaderSrc)
	if err != nil {
		log.Printf("[render] post-process shader unavailable, presenting untinted: %v", err)
	} else {
		ctx.shader = shader
	}
	return ctx
}

// Accelerated reports whether the shader pass is active.
func (c *Context) Accelerated() bool { return c.shader != nil }

// Dispose releases the GPU resources.
func (c *Context) Dispose() {
	if c.shader != nil {
		c.shader.Deallocate()
		c.shader = nil
	}
	if c.texture != nil {
		c.texture.Deallocate()
		c.texture = nil
	}
}
