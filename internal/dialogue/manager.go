// Package dialogue shows scripted text boxes, at most one at a time.
package dialogue

import (
	"log"

	"clear-skies/internal/scene"
)

// Manager opens scripts into a box sprite and advances them page by page.
type Manager struct {
	scripts map[string][]string
	sprites *scene.Group
	box     *Box
	size    Layout
}

// Layout positions the dialogue box on screen.
type Layout struct {
	ScreenW, ScreenH int
}

// NewManager returns a manager drawing into sprites. A nil scripts map uses
// the built-in scripts.
func NewManager(sprites *scene.Group, scripts map[string][]string, layout Layout) *Manager {
	if scripts == nil {
		scripts = DefaultScripts()
	}
	return &Manager{scripts: scripts, sprites: sprites, size: layout}
}

// Showing reports whether a dialogue is open.
func (m *Manager) Showing() bool { return m.box != nil }

// Open starts the named script. Requests while a dialogue is showing and
// unknown names are ignored.
func (m *Manager) Open(name string) {
	if m.box != nil {
		return
	}
	pages := m.scripts[name]
	if len(pages) == 0 {
		log.Printf("[dialogue] unknown script %q", name)
		return
	}
	m.box = newBox(name, pages, m.size)
	m.sprites.Add(m.box)
}

// Advance moves to the next page, closing the dialogue after the last one.
func (m *Manager) Advance() {
	if m.box == nil {
		return
	}
	if m.box.next() {
		return
	}
	m.sprites.Remove(m.box)
	m.box = nil
}

// Current returns the name and page index of the open dialogue.
func (m *Manager) Current() (string, int, bool) {
	if m.box == nil {
		return "", 0, false
	}
	return m.box.name, m.box.page, true
}
