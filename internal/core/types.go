package core

import "image/draw"

// Size describes the fixed dimensions of the screen and its surfaces.
type Size struct {
	W int
	H int
}

// EventHandler consumes input events. It reports whether the event was
// handled so that lower dispatch tiers can be skipped.
type EventHandler interface {
	HandleEvent(ev Event) bool
}

// Handler is the capability set shared by every menu: event handling, a
// per-tick update and drawing onto the composited frame.
type Handler interface {
	EventHandler
	Update(dt float64)
	Draw(dst draw.Image)
}
