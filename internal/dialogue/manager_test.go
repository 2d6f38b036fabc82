package dialogue

import (
	"image"
	"testing"

	"clear-skies/internal/scene"
)

func newTestManager() (*Manager, *scene.Group) {
	g := &scene.Group{}
	scripts := map[string][]string{
		"two":  {"first page", "second page"},
		"one":  {"only page"},
		"long": {"the quick brown fox jumps over the lazy dog again and again"},
	}
	return NewManager(g, scripts, Layout{ScreenW: 320, ScreenH: 240}), g
}

func TestOpenIsIgnoredWhileShowing(t *testing.T) {
	m, g := newTestManager()
	m.Open("two")
	m.Open("one")
	name, page, ok := m.Current()
	if !ok || name != "two" || page != 0 {
		t.Fatalf("current = %q page %d ok=%v, expected first page of %q", name, page, ok, "two")
	}
	if g.Len() != 1 {
		t.Fatalf("sprite count = %d, expected exactly one open dialogue", g.Len())
	}
}

func TestAdvanceWalksPagesThenCloses(t *testing.T) {
	m, g := newTestManager()
	m.Open("two")
	m.Advance()
	if _, page, ok := m.Current(); !ok || page != 1 {
		t.Fatalf("page = %d ok=%v, expected second page", page, ok)
	}
	m.Advance()
	if m.Showing() {
		t.Fatal("dialogue still showing after last page")
	}
	if g.Len() != 0 {
		t.Fatalf("sprite count = %d, expected box removed", g.Len())
	}
}

func TestAdvanceWithoutDialogueIsNoop(t *testing.T) {
	m, g := newTestManager()
	m.Advance()
	if m.Showing() || g.Len() != 0 {
		t.Fatal("advance without an open dialogue changed state")
	}
}

func TestOpenUnknownScript(t *testing.T) {
	m, _ := newTestManager()
	m.Open("missing")
	if m.Showing() {
		t.Fatal("unknown script must not open a dialogue")
	}
}

func TestBoxRevealsWhileBlocked(t *testing.T) {
	m, g := newTestManager()
	m.Open("one")
	g.UpdateBlocked(0.1)
	if got := m.box.Visible(); got != "only" {
		t.Fatalf("visible = %q, expected %q", got, "only")
	}
	g.Update(10)
	if got := m.box.Visible(); got != "only page" {
		t.Fatalf("visible = %q, expected full page", got)
	}
	g.Draw(image.NewRGBA(image.Rect(0, 0, 320, 240)))
}

func TestBoxRevealsWholeRunes(t *testing.T) {
	b := newBox("accents", []string{"héllo wörld"}, Layout{})
	b.revealed = 2
	if got := b.Visible(); got != "hé" {
		t.Fatalf("visible = %q, expected %q", got, "hé")
	}
	b.Animate(10)
	if got := b.Visible(); got != "héllo wörld" {
		t.Fatalf("visible = %q, expected full page", got)
	}
	if b.revealed != 11 {
		t.Fatalf("revealed = %v, expected 11 runes", b.revealed)
	}
}

func TestWrapBreaksOnSpaces(t *testing.T) {
	lines := wrap("the quick brown fox", 10)
	want := []string{"the quick", "brown fox"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, expected %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("lines = %q, expected %q", lines, want)
		}
	}
}
