package world

import (
	"math"
	"sort"

	"clear-skies/internal/save"
)

// Cosmetic names the player can own and equip.
const (
	CosmeticGoggles  = "goggles"
	CosmeticHorn     = "horn"
	CosmeticNecklace = "necklace"
	CosmeticHat      = "hat"
)

// Tools the player can assign.
const (
	ToolHoe   = "hoe"
	ToolWater = "water"
	ToolPlant = "plant"
)

// Cosmetics lists every cosmetic in display order.
var Cosmetics = []string{CosmeticGoggles, CosmeticHorn, CosmeticNecklace, CosmeticHat}

// Tools lists every tool in display order.
var Tools = []string{ToolHoe, ToolWater, ToolPlant}

// Holding is one inventory line.
type Holding struct {
	Name  string
	Count int
}

// Player is the controllable farmer.
type Player struct {
	X, Y   float64
	VX, VY float64
	Speed  float64

	Money   int
	Tool    string
	Seed    string
	Ingroup bool

	items     map[string]int
	cosmetics map[string]bool
	blocked   bool
	dirX      float64
	dirY      float64
}

// NewPlayer returns a player at (x, y) with the starting kit.
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Speed:     160,
		Money:     50,
		Tool:      ToolHoe,
		Seed:      "tomato",
		Ingroup:   true,
		items:     map[string]int{"tomato seed": 5, "corn seed": 2},
		cosmetics: map[string]bool{},
	}
}

// Block freezes the player and zeroes its velocity.
func (p *Player) Block() {
	p.blocked = true
	p.VX, p.VY = 0, 0
	p.dirX, p.dirY = 0, 0
}

// Unblock returns control to the player.
func (p *Player) Unblock() { p.blocked = false }

// Blocked reports whether input is ignored.
func (p *Player) Blocked() bool { return p.blocked }

// Velocity returns the current velocity in pixels per second.
func (p *Player) Velocity() (float64, float64) { return p.VX, p.VY }

// HasGoggles reports whether the goggles are equipped.
func (p *Player) HasGoggles() bool { return p.cosmetics[CosmeticGoggles] }

// AssignTool selects the active tool.
func (p *Player) AssignTool(name string) { p.Tool = name }

// AssignSeed selects the seed used by the plant tool.
func (p *Player) AssignSeed(name string) { p.Seed = name }

// Count returns how many of item the player holds.
func (p *Player) Count(item string) int { return p.items[item] }

// Add changes the count of item by n, dropping it when it reaches zero.
func (p *Player) Add(item string, n int) {
	p.items[item] += n
	if p.items[item] <= 0 {
		delete(p.items, item)
	}
}

// Holdings returns the inventory sorted by name.
func (p *Player) Holdings() []Holding {
	out := make([]Holding, 0, len(p.items))
	for name, count := range p.items {
		out = append(out, Holding{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Owns reports whether the cosmetic is owned.
func (p *Player) Owns(cosmetic string) bool {
	_, ok := p.cosmetics[cosmetic]
	return ok
}

// Equipped reports whether the cosmetic is worn.
func (p *Player) Equipped(cosmetic string) bool { return p.cosmetics[cosmetic] }

// Grant adds a cosmetic to the wardrobe unequipped.
func (p *Player) Grant(cosmetic string) {
	if _, ok := p.cosmetics[cosmetic]; !ok {
		p.cosmetics[cosmetic] = false
	}
}

// ToggleCosmetic equips or removes an owned cosmetic.
func (p *Player) ToggleCosmetic(cosmetic string) {
	if worn, ok := p.cosmetics[cosmetic]; ok {
		p.cosmetics[cosmetic] = !worn
	}
}

func (p *Player) setDirection(dx, dy float64) {
	p.dirX, p.dirY = dx, dy
}

func (p *Player) move(dt float64, bounds [2]float64) {
	if p.blocked {
		p.VX, p.VY = 0, 0
		return
	}
	dx, dy := p.dirX, p.dirY
	if l := math.Hypot(dx, dy); l > 0 {
		dx, dy = dx/l, dy/l
	}
	p.VX, p.VY = dx*p.Speed, dy*p.Speed
	p.X = clamp(p.X+p.VX*dt, 0, bounds[0])
	p.Y = clamp(p.Y+p.VY*dt, 0, bounds[1])
}

func (p *Player) snapshot() save.Player {
	items := make(map[string]int, len(p.items))
	for k, v := range p.items {
		items[k] = v
	}
	cosmetics := make(map[string]bool, len(p.cosmetics))
	for k, v := range p.cosmetics {
		cosmetics[k] = v
	}
	return save.Player{
		X: p.X, Y: p.Y, Money: p.Money, Tool: p.Tool, Seed: p.Seed, Ingroup: p.Ingroup,
		Items: items, Cosmetics: cosmetics,
	}
}

func (p *Player) restore(s save.Player) {
	p.X, p.Y = s.X, s.Y
	p.Money = s.Money
	if s.Tool != "" {
		p.Tool = s.Tool
	}
	if s.Seed != "" {
		p.Seed = s.Seed
	}
	p.Ingroup = s.Ingroup
	p.items = map[string]int{}
	for k, v := range s.Items {
		p.items[k] = v
	}
	p.cosmetics = map[string]bool{}
	for k, v := range s.Cosmetics {
		p.cosmetics[k] = v
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
