// Package input drains platform events once per tick and dispatches each to
// exactly one handler tier.
package input

import "clear-skies/internal/core"

// Source yields the events gathered since the previous call. Events not
// handled during the tick they were drained in are lost.
type Source interface {
	Drain(dst []core.Event) []core.Event
}

// Queue holds events posted by game code until the next drain. It plays the
// role of custom events on the platform queue.
type Queue struct {
	pending []core.Event
}

// Post enqueues ev for the next tick.
func (q *Queue) Post(ev core.Event) {
	q.pending = append(q.pending, ev)
}

// Drain appends the pending events to dst and empties the queue.
func (q *Queue) Drain(dst []core.Event) []core.Event {
	dst = append(dst, q.pending...)
	q.pending = q.pending[:0]
	return dst
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.pending) }
