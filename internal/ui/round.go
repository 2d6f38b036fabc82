package ui

import (
	"fmt"

	"clear-skies/internal/core"
	"clear-skies/internal/world"
)

// RoundEnd summarizes a finished round.
type RoundEnd struct {
	*List
	player *world.Player
	round  int
	lines  []string
}

// NewRoundEnd returns the round summary menu.
func NewRoundEnd(player *world.Player, sw Switcher) *RoundEnd {
	m := &RoundEnd{List: NewList("Round over"), player: player}
	m.SetOptions([]Option{{Label: "Next round", Action: func() { sw.Switch(core.StatePlay) }}})
	return m
}

// Reset clears the previous summary.
func (m *RoundEnd) Reset() {
	m.lines = m.lines[:0]
	m.Footer = nil
}

// Generate writes the summary of the round that just ended.
func (m *RoundEnd) Generate() {
	m.round++
	m.lines = append(m.lines,
		fmt.Sprintf("Round %d complete", m.round),
		"Money: "+money(m.player.Money),
	)
	for _, h := range m.player.Holdings() {
		m.lines = append(m.lines, fmt.Sprintf("%s x%d", itemName(h.Name), h.Count))
	}
	m.Footer = m.lines
}

// Lines returns the current summary.
func (m *RoundEnd) Lines() []string { return m.lines }
