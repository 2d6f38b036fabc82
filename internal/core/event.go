package core

// EventKind enumerates the event types the router understands.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventKeyDown
	EventKeyUp
	EventMouseDown
	EventOpenInventory
	EventDialogShow
	EventDialogAdvance
)

// Key is a platform-independent key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyE
	KeyI
	KeyB
	KeyO
	KeyTab
	KeyEnter
	KeyEscape
	KeySpace
	KeyRightShift
)

// Event is one entry of the per-tick input queue.
type Event struct {
	Kind EventKind
	Key  Key
	// X and Y hold the pointer position for mouse events.
	X, Y int
	// Dialog names the script requested by EventDialogShow.
	Dialog string
}

// Press is shorthand for a key press event.
func Press(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }
