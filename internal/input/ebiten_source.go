//go:build ebiten

package input

import (
	"clear-skies/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyTable = map[ebiten.Key]core.Key{
	ebiten.KeyArrowUp:    core.KeyUp,
	ebiten.KeyArrowDown:  core.KeyDown,
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyW:          core.KeyW,
	ebiten.KeyA:          core.KeyA,
	ebiten.KeyS:          core.KeyS,
	ebiten.KeyD:          core.KeyD,
	ebiten.KeyE:          core.KeyE,
	ebiten.KeyI:          core.KeyI,
	ebiten.KeyB:          core.KeyB,
	ebiten.KeyO:          core.KeyO,
	ebiten.KeyTab:        core.KeyTab,
	ebiten.KeyEnter:      core.KeyEnter,
	ebiten.KeyEscape:     core.KeyEscape,
	ebiten.KeySpace:      core.KeySpace,
	ebiten.KeyShiftRight: core.KeyRightShift,
}

// actionKeys post a global event instead of a key event.
var actionKeys = map[ebiten.Key]core.EventKind{
	ebiten.KeyT: core.EventDialogAdvance,
}

var reverseKeyTable = func() map[core.Key]ebiten.Key {
	m := make(map[core.Key]ebiten.Key, len(keyTable))
	for ek, k := range keyTable {
		m[k] = ek
	}
	return m
}()

// EbitenSource translates ebiten's polled input state into events.
type EbitenSource struct {
	queue *Queue
	keys  []ebiten.Key
}

// NewEbitenSource returns a source that also drains q. Closing the window is
// reported as a quit event instead of ending the process directly.
func NewEbitenSource(q *Queue) *EbitenSource {
	ebiten.SetWindowClosingHandled(true)
	return &EbitenSource{queue: q}
}

// Drain appends this tick's platform events followed by posted events.
func (s *EbitenSource) Drain(dst []core.Event) []core.Event {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, core.Event{Kind: core.EventQuit})
	}
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if kind, ok := actionKeys[k]; ok {
			dst = append(dst, core.Event{Kind: kind})
			continue
		}
		if key, ok := keyTable[k]; ok {
			dst = append(dst, core.Event{Kind: core.EventKeyDown, Key: key})
		}
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key, ok := keyTable[k]; ok {
			dst = append(dst, core.Event{Kind: core.EventKeyUp, Key: key})
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, core.Event{Kind: core.EventMouseDown, X: x, Y: y})
	}
	if s.queue != nil {
		dst = s.queue.Drain(dst)
	}
	return dst
}

// Pressed reports whether k is currently held.
func (s *EbitenSource) Pressed(k core.Key) bool {
	ek, ok := reverseKeyTable[k]
	return ok && ebiten.IsKeyPressed(ek)
}

// CursorPosition returns the pointer position in screen pixels.
func (s *EbitenSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}
