package ui

import (
	"fmt"

	"clear-skies/internal/core"
	"clear-skies/internal/world"
)

// NewMainMenu returns the title screen menu.
func NewMainMenu(sw Switcher, poster Poster) *List {
	return NewList("Clear Skies",
		Option{Label: "Play", Action: func() { sw.Switch(core.StatePlay) }},
		Option{Label: "Quit", Action: func() { poster.Post(core.Event{Kind: core.EventQuit}) }},
	)
}

// NewPauseMenu returns the in-game pause menu. Escape resumes.
func NewPauseMenu(sw Switcher, poster Poster) *List {
	l := NewList("Paused",
		Option{Label: "Resume", Action: func() { sw.Switch(core.StatePlay) }},
		Option{Label: "Options", Action: func() { sw.Switch(core.StateSettings) }},
		Option{Label: "Save and Resume", Action: func() { sw.Switch(core.StateSaveAndResume) }},
		Option{Label: "Quit", Action: func() { poster.Post(core.Event{Kind: core.EventQuit}) }},
	)
	l.OnBack(func() { sw.Switch(core.StatePlay) })
	return l
}

// Outgroup lets the player change sides.
type Outgroup struct {
	*List
	player *world.Player
}

// NewOutgroupMenu returns the group switch menu.
func NewOutgroupMenu(player *world.Player, sw Switcher) *Outgroup {
	m := &Outgroup{List: NewList("The Outgroup Camp"), player: player}
	m.SetOptions([]Option{
		{Label: "Switch sides", Action: func() {
			player.Ingroup = !player.Ingroup
			m.refresh()
		}},
		{Label: "Back", Action: func() { sw.Switch(core.StatePlay) }},
	})
	m.OnBack(func() { sw.Switch(core.StatePlay) })
	m.refresh()
	return m
}

func (m *Outgroup) refresh() {
	side := "outgroup"
	if m.player.Ingroup {
		side = "ingroup"
	}
	m.Footer = []string{fmt.Sprintf("You farm with the %s.", side)}
}
