// Package loop runs one tick of the game: input dispatch, simulation or
// menu, sprites, post effects and the software cursor, all composited onto
// the CPU surface that the render pipeline presents.
package loop

import (
	"image"
	"image/draw"

	"clear-skies/internal/core"
	"clear-skies/internal/input"
	"clear-skies/internal/scene"
)

// Ticker reports the seconds elapsed since its previous call.
type Ticker interface {
	Tick() float64
}

// Pointer exposes held keys and the cursor position.
type Pointer interface {
	Pressed(core.Key) bool
	CursorPosition() (int, int)
}

// Machine is the state machine as seen by the loop.
type Machine interface {
	input.Modes
	Current() core.GameState
	Switch(core.GameState)
}

// World is the simulation handler.
type World interface {
	core.EventHandler
	Update(dt float64, playing bool)
	Draw(dst draw.Image)
	CutsceneActive() bool
	VisualModifierActive() bool
}

// Player is frozen while dialogue or a menu is open.
type Player interface {
	Block()
	Unblock()
}

// Dialogue shows at most one text box.
type Dialogue interface {
	Showing() bool
	Open(name string)
	Advance()
}

// Overlay draws the fast-forward hint and overlay.
type Overlay interface {
	DrawOption(dst draw.Image)
	DrawOverlay(dst draw.Image, dt float64)
}

// roundEpsilon absorbs the drift of summing many small frame deltas.
const roundEpsilon = 1e-6

// Config tunes the loop.
type Config struct {
	// RoundDuration is the simulated length of a round in seconds.
	RoundDuration float64
	// FastForward multiplies dt while a cutscene is skipped.
	FastForward float64
	BlurRadius  int
	IntroDialog string
	SkipKey     core.Key
}

// DefaultConfig returns a fifteen minute round, 5x fast-forward and a blur
// radius of 2.
func DefaultConfig() Config {
	return Config{
		RoundDuration: 15 * 60,
		FastForward:   5,
		BlurRadius:    2,
		IntroDialog:   "intro_to_ingroup",
		SkipKey:       core.KeyRightShift,
	}
}

// Deps are the collaborators the loop orchestrates.
type Deps struct {
	Clock    Ticker
	Source   input.Source
	Pointer  Pointer
	Machine  Machine
	World    World
	Player   Player
	Dialogue Dialogue
	Sprites  *scene.Group
	Surface  *scene.Compositor
	Overlay  Overlay
	Cursor   image.Image
}

// Loop owns the per-tick orchestration. It is driven by a host that calls
// Step once per frame and presents the composited surface afterwards.
type Loop struct {
	cfg    Config
	deps   Deps
	router *input.Router

	first      bool
	introShown bool
	roundTimer float64
}

// New wires the router tiers: the loop itself handles global events ahead
// of the active menu and the world.
func New(cfg Config, deps Deps) *Loop {
	if deps.Sprites == nil {
		deps.Sprites = &scene.Group{}
	}
	l := &Loop{cfg: cfg, deps: deps, first: true}
	l.router = input.NewRouter(deps.Source, l, deps.Machine, deps.World)
	return l
}

// HandleEvent consumes the events that apply regardless of state.
func (l *Loop) HandleEvent(ev core.Event) bool {
	switch ev.Kind {
	case core.EventOpenInventory:
		l.deps.Machine.Switch(core.StateInventory)
	case core.EventDialogShow:
		if l.deps.Dialogue.Showing() {
			return true
		}
		l.deps.Dialogue.Open(ev.Dialog)
		if l.deps.Dialogue.Showing() {
			l.deps.Player.Block()
		}
	case core.EventDialogAdvance:
		if !l.deps.Dialogue.Showing() {
			return true
		}
		l.deps.Dialogue.Advance()
		if !l.deps.Dialogue.Showing() && !l.deps.Machine.Paused() {
			l.deps.Player.Unblock()
		}
	default:
		return false
	}
	return true
}

// Step runs one tick. It returns false once a quit event was dispatched.
func (l *Loop) Step() bool {
	d := &l.deps
	surface := d.Surface.Surface()

	dt := d.Clock.Tick()
	if l.router.Dispatch() {
		return false
	}

	paused := d.Machine.Paused()
	if !paused || l.first {
		simDt := dt
		if d.World.CutsceneActive() && l.pressed(l.cfg.SkipKey) {
			simDt *= l.cfg.FastForward
		}
		d.World.Update(simDt, d.Machine.Current() == core.StatePlay)
		d.World.Draw(surface)
	}

	if paused && !l.first {
		d.Surface.Restore()
		if menu := d.Machine.Menu(); menu != nil {
			menu.Update(dt)
			menu.Draw(surface)
		}
	} else if !paused {
		l.roundTimer += dt
		if l.roundTimer >= l.cfg.RoundDuration-roundEpsilon {
			l.roundTimer = 0
			d.Machine.Switch(core.StateRoundEnd)
		}
	}

	if d.World.CutsceneActive() {
		d.Sprites.UpdateBlocked(dt)
		if d.Overlay != nil {
			d.Overlay.DrawOption(surface)
			if l.pressed(l.cfg.SkipKey) {
				d.Overlay.DrawOverlay(surface, dt)
			}
		}
	} else {
		d.Sprites.Update(dt)
	}
	d.Sprites.Draw(surface)

	if d.World.VisualModifierActive() && d.Machine.Current() == core.StatePlay {
		d.Surface.BoxBlur(l.cfg.BlurRadius)
	}

	if !l.introShown && !d.Machine.Paused() {
		l.introShown = true
		if l.cfg.IntroDialog != "" {
			l.HandleEvent(core.Event{Kind: core.EventDialogShow, Dialog: l.cfg.IntroDialog})
		}
	}

	if !d.Machine.Paused() || l.first {
		d.Surface.Capture()
	}

	if d.Pointer != nil {
		x, y := d.Pointer.CursorPosition()
		d.Surface.DrawCursor(d.Cursor, x, y)
	}

	l.first = false
	d.Surface.MarkComposited()
	return true
}

// RoundTimer returns the seconds played in the current round.
func (l *Loop) RoundTimer() float64 { return l.roundTimer }

// IntroShown reports whether the intro dialogue was requested.
func (l *Loop) IntroShown() bool { return l.introShown }

// Surface returns the compositor the loop draws onto.
func (l *Loop) Surface() *scene.Compositor { return l.deps.Surface }

func (l *Loop) pressed(k core.Key) bool {
	return l.deps.Pointer != nil && l.deps.Pointer.Pressed(k)
}
