package ui

import (
	"fmt"
	"strings"

	"clear-skies/internal/core"
	"clear-skies/internal/world"
)

// Inventory shows the player's holdings and assigns tools, seeds and
// cosmetics.
type Inventory struct {
	*List
	player *world.Player
	sw     Switcher
}

// NewInventory returns the inventory menu. Escape and I close it.
func NewInventory(player *world.Player, sw Switcher) *Inventory {
	m := &Inventory{List: NewList("Inventory"), player: player, sw: sw}
	m.OnBack(m.close)
	m.RefreshContent()
	return m
}

// HandleEvent implements core.EventHandler.
func (m *Inventory) HandleEvent(ev core.Event) bool {
	if ev.Kind == core.EventKeyDown && (ev.Key == core.KeyI || ev.Key == core.KeyTab) {
		m.close()
		return true
	}
	return m.List.HandleEvent(ev)
}

// RefreshContent rebuilds the options from the player's current holdings.
func (m *Inventory) RefreshContent() {
	var opts []Option
	for _, tool := range world.Tools {
		tool := tool
		label := "Use " + tool
		if m.player.Tool == tool {
			label += " *"
		}
		opts = append(opts, Option{Label: label, Action: func() {
			m.player.AssignTool(tool)
			m.RefreshContent()
		}})
	}
	var lines []string
	for _, h := range m.player.Holdings() {
		lines = append(lines, fmt.Sprintf("%s x%d", itemName(h.Name), h.Count))
		crop, ok := strings.CutSuffix(h.Name, " seed")
		if !ok {
			continue
		}
		label := "Plant " + crop
		if m.player.Seed == crop {
			label += " *"
		}
		opts = append(opts, Option{Label: label, Action: func() {
			m.player.AssignSeed(crop)
			m.RefreshContent()
		}})
	}
	for _, c := range world.Cosmetics {
		c := c
		if !m.player.Owns(c) {
			continue
		}
		label := "Wear " + c
		if m.player.Equipped(c) {
			label = "Remove " + c
		}
		opts = append(opts, Option{Label: label, Action: func() {
			m.player.ToggleCosmetic(c)
			m.RefreshContent()
		}})
	}
	opts = append(opts, Option{Label: "Close", Action: m.close})
	m.SetOptions(opts)
	if len(lines) == 0 {
		lines = []string{"Your bag is empty."}
	}
	m.Footer = lines
}

func (m *Inventory) close() { m.sw.Switch(core.StatePlay) }
