package core

// GameState identifies the top-level mode of the game.
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlay
	StatePause
	StateSettings
	StateShop
	StateInventory
	StateRoundEnd
	StateOutgroupMenu
	// StateSaveAndResume is never current: entering it saves and resolves to
	// StatePlay.
	StateSaveAndResume
)

// String returns the string representation of the game state.
func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StatePlay:
		return "Play"
	case StatePause:
		return "Pause"
	case StateSettings:
		return "Settings"
	case StateShop:
		return "Shop"
	case StateInventory:
		return "Inventory"
	case StateRoundEnd:
		return "RoundEnd"
	case StateOutgroupMenu:
		return "OutgroupMenu"
	case StateSaveAndResume:
		return "SaveAndResume"
	default:
		return "Unknown"
	}
}

// Paused reports whether the simulation is suspended in this state.
func (s GameState) Paused() bool { return s != StatePlay }
