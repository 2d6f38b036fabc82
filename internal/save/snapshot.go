// Package save persists the farm and player between sessions in SQLite.
package save

// Tile is one worked soil cell.
type Tile struct {
	X, Y    int
	Watered bool
	Plant   string
	Age     float64
}

// Player is the persisted player state.
type Player struct {
	X, Y      float64
	Money     int
	Tool      string
	Seed      string
	Ingroup   bool
	Items     map[string]int
	Cosmetics map[string]bool // owned cosmetics mapped to equipped
}

// Snapshot is everything written by one save.
type Snapshot struct {
	Soil   []Tile
	Player Player
}
