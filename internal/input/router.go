package input

import "clear-skies/internal/core"

// Modes exposes the parts of the state machine the router needs.
type Modes interface {
	Paused() bool
	Menu() core.Handler
}

// Router dispatches every drained event through a fixed waterfall: quit,
// global overlay events, the active menu while paused, then the world. The
// first tier that consumes an event ends its dispatch.
type Router struct {
	src    Source
	global core.EventHandler
	modes  Modes
	world  core.EventHandler
	batch  []core.Event
}

// NewRouter wires the dispatch tiers.
func NewRouter(src Source, global core.EventHandler, modes Modes, world core.EventHandler) *Router {
	return &Router{src: src, global: global, modes: modes, world: world}
}

// Dispatch drains the source once and routes each event. It returns true as
// soon as a quit event is seen; later events of the batch are dropped.
func (r *Router) Dispatch() (quit bool) {
	r.batch = r.src.Drain(r.batch[:0])
	for _, ev := range r.batch {
		if ev.Kind == core.EventQuit {
			return true
		}
		r.route(ev)
	}
	return false
}

func (r *Router) route(ev core.Event) {
	if r.global != nil && r.global.HandleEvent(ev) {
		return
	}
	if r.modes.Paused() {
		if menu := r.modes.Menu(); menu != nil && menu.HandleEvent(ev) {
			return
		}
	}
	if r.world != nil {
		r.world.HandleEvent(ev)
	}
}
