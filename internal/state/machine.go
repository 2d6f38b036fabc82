// Package state implements the flat top-level state machine that decides
// which menu, if any, receives the per-tick calls.
package state

import (
	"log"

	"clear-skies/internal/core"
)

// Blocker freezes and releases player control. Block also zeroes velocity.
type Blocker interface {
	Block()
	Unblock()
}

// Saver persists the world and player.
type Saver interface {
	Save() error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func() error

// Save calls f.
func (f SaverFunc) Save() error { return f() }

// InventoryMenu is a menu whose content mirrors the player's holdings.
type InventoryMenu interface {
	core.Handler
	RefreshContent()
}

// RoundMenu is a menu that summarizes a finished round.
type RoundMenu interface {
	core.Handler
	Reset()
	Generate()
}

// Menus is the closed state-to-handler table. StatePlay has no menu.
type Menus struct {
	Main      core.Handler
	Pause     core.Handler
	Settings  core.Handler
	Shop      core.Handler
	Inventory InventoryMenu
	RoundEnd  RoundMenu
	Outgroup  core.Handler
}

// For returns the handler bound to s, or nil.
func (m *Menus) For(s core.GameState) core.Handler {
	switch s {
	case core.StateMainMenu:
		return m.Main
	case core.StatePause:
		return m.Pause
	case core.StateSettings:
		return m.Settings
	case core.StateShop:
		return m.Shop
	case core.StateInventory:
		if m.Inventory == nil {
			return nil
		}
		return m.Inventory
	case core.StateRoundEnd:
		if m.RoundEnd == nil {
			return nil
		}
		return m.RoundEnd
	case core.StateOutgroupMenu:
		return m.Outgroup
	default:
		return nil
	}
}

// Machine tracks the current state. Every state is reachable from every
// other; only StateSaveAndResume resolves on its own.
type Machine struct {
	// Debug logs every transition.
	Debug bool

	current core.GameState
	menus   Menus
	player  Blocker
	saver   Saver
}

// New returns a machine in initial. The player is blocked or released to
// match it.
func New(initial core.GameState, player Blocker, saver Saver) *Machine {
	m := &Machine{player: player, saver: saver}
	m.Switch(initial)
	return m
}

// SetMenus installs the menu table.
func (m *Machine) SetMenus(menus Menus) { m.menus = menus }

// Current returns the active state.
func (m *Machine) Current() core.GameState { return m.current }

// Paused reports whether the simulation is suspended.
func (m *Machine) Paused() bool { return m.current.Paused() }

// Menu returns the handler of the active state, nil while playing.
func (m *Machine) Menu() core.Handler { return m.menus.For(m.current) }

// Switch makes target current after applying its entry side effects.
func (m *Machine) Switch(target core.GameState) {
	if m.Debug {
		log.Printf("[state] %s -> %s", m.current, target)
	}
	m.current = target
	if m.current == core.StateSaveAndResume {
		if m.saver != nil {
			if err := m.saver.Save(); err != nil {
				log.Printf("[state] save failed: %v", err)
			}
		}
		m.current = core.StatePlay
	}
	switch m.current {
	case core.StateInventory:
		if m.menus.Inventory != nil {
			m.menus.Inventory.RefreshContent()
		}
	case core.StateRoundEnd:
		if m.menus.RoundEnd != nil {
			m.menus.RoundEnd.Reset()
			m.menus.RoundEnd.Generate()
		}
	}
	if m.player == nil {
		return
	}
	if m.Paused() {
		m.player.Block()
	} else {
		m.player.Unblock()
	}
}
