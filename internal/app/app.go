//go:build ebiten

package app

import (
	"errors"
	"fmt"

	"clear-skies/internal/input"
	"clear-skies/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts the core loop to the ebiten.Game interface.
type Game struct {
	cfg      *Config
	core     *Core
	ctx      *render.Context
	pipeline *render.Pipeline
	started  bool
}

// New builds the core with ebiten input and the GPU post-process pass.
func New(cfg *Config) (*Game, error) {
	q := &input.Queue{}
	src := input.NewEbitenSource(q)
	c, err := NewCore(cfg, q, Host{Source: src, Pointer: src})
	if err != nil {
		return nil, err
	}
	shaderSrc, err := render.ShaderSource(cfg.ShaderPath)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("load shader: %w", err)
	}
	ctx := render.NewContext(c.Surface, shaderSrc, render.DefaultTint)
	return &Game{cfg: cfg, core: c, ctx: ctx, pipeline: render.NewPipeline(ctx)}, nil
}

// Update runs one loop step. A quit request ends the game.
func (g *Game) Update() error {
	g.started = true
	if !g.core.Loop.Step() {
		return ebiten.Termination
	}
	return nil
}

// Draw presents the composited frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.pipeline.Present(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// SetVsync toggles display-synced presentation.
func (g *Game) SetVsync(enabled bool) { ebiten.SetVsyncEnabled(enabled) }

// Run blocks in the ebiten loop. Termination is reported as nil.
func (g *Game) Run() error {
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Started reports whether the host ran at least one update.
func (g *Game) Started() bool { return g.started }

// Close disposes the GPU resources and the save store.
func (g *Game) Close() error {
	g.ctx.Dispose()
	return g.core.Close()
}
