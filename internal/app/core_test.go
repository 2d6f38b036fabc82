package app

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"clear-skies/internal/core"
	"clear-skies/internal/save"
)

type fixedClock struct{ dt float64 }

func (c fixedClock) Tick() float64 { return c.dt }

func newTestCore(t *testing.T) (*Core, string) {
	t.Helper()
	cfg := NewConfig()
	cfg.Width, cfg.Height = 320, 192
	cfg.CutsceneSeconds = 0
	cfg.SavePath = filepath.Join(t.TempDir(), "save.db")
	c, err := NewCore(cfg, nil, Host{Clock: fixedClock{dt: 1.0 / 60}})
	if err != nil {
		t.Fatalf("new core: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, cfg.SavePath
}

func press(c *Core, keys ...core.Key) {
	for _, k := range keys {
		c.Queue.Post(core.Press(k))
	}
	c.Loop.Step()
}

func startPlaying(t *testing.T, c *Core) {
	t.Helper()
	press(c, core.KeyEnter)
	if c.Machine.Current() != core.StatePlay {
		t.Fatalf("state = %v after choosing Play", c.Machine.Current())
	}
	if !c.Dialogue.Showing() || !c.Player.Blocked() {
		t.Fatalf("intro dialogue not blocking the player")
	}
	for c.Dialogue.Showing() {
		c.Queue.Post(core.Event{Kind: core.EventDialogAdvance})
		c.Loop.Step()
	}
	if c.Player.Blocked() {
		t.Fatalf("player still blocked after the intro")
	}
}

func TestCoreStartsInMainMenu(t *testing.T) {
	c, _ := newTestCore(t)
	if c.Machine.Current() != core.StateMainMenu || !c.Player.Blocked() {
		t.Fatalf("state = %v blocked = %v", c.Machine.Current(), c.Player.Blocked())
	}
	if !c.Loop.Step() {
		t.Fatalf("first step quit")
	}
	if !c.Surface.Fresh() {
		t.Fatalf("first step did not composite a frame")
	}
}

func TestCorePauseFreezesFrame(t *testing.T) {
	c, _ := newTestCore(t)
	startPlaying(t, c)
	press(c, core.KeyEscape)
	if c.Machine.Current() != core.StatePause || !c.Player.Blocked() {
		t.Fatalf("escape: state = %v blocked = %v", c.Machine.Current(), c.Player.Blocked())
	}
	frozen := append([]byte(nil), c.Surface.Snapshot().Pix...)
	x, y := c.Player.X, c.Player.Y
	press(c, core.KeyD)
	c.Loop.Step()
	if !bytes.Equal(frozen, c.Surface.Snapshot().Pix) {
		t.Fatalf("snapshot changed while paused")
	}
	if c.Player.X != x || c.Player.Y != y {
		t.Fatalf("player moved while paused")
	}
	press(c, core.KeyEscape)
	if c.Machine.Current() != core.StatePlay {
		t.Fatalf("escape in pause menu: state = %v", c.Machine.Current())
	}
}

func TestCoreSaveAndResume(t *testing.T) {
	c, path := newTestCore(t)
	startPlaying(t, c)
	c.Player.Money = 77
	press(c, core.KeyEscape)
	press(c, core.KeyDown, core.KeyDown, core.KeyEnter)
	if c.Machine.Current() != core.StatePlay || c.Player.Blocked() {
		t.Fatalf("save and resume left state %v blocked %v", c.Machine.Current(), c.Player.Blocked())
	}

	store, err := save.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	snap, ok, err := store.Load(context.Background())
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if snap.Player.Money != 77 {
		t.Fatalf("saved money = %d, want 77", snap.Player.Money)
	}
}

func TestCoreInventoryFromWorldKey(t *testing.T) {
	c, _ := newTestCore(t)
	startPlaying(t, c)
	press(c, core.KeyI)
	c.Loop.Step()
	if c.Machine.Current() != core.StateInventory {
		t.Fatalf("state = %v, want inventory", c.Machine.Current())
	}
	press(c, core.KeyEscape)
	if c.Machine.Current() != core.StatePlay {
		t.Fatalf("state = %v after closing inventory", c.Machine.Current())
	}
}

func TestCoreRoundEnds(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 320, 192
	cfg.CutsceneSeconds = 0
	cfg.SavePath = ""
	cfg.RoundMinutes = 0.5 / 60
	c, err := NewCore(cfg, nil, Host{Clock: fixedClock{dt: 0.25}})
	if err != nil {
		t.Fatalf("new core: %v", err)
	}
	press(c, core.KeyEnter)
	c.Loop.Step()
	if c.Machine.Current() != core.StateRoundEnd {
		t.Fatalf("state = %v, want round end", c.Machine.Current())
	}
	if c.Loop.RoundTimer() != 0 {
		t.Fatalf("round timer = %v after reset", c.Loop.RoundTimer())
	}
}

func TestCoreQuitFromMainMenu(t *testing.T) {
	c, _ := newTestCore(t)
	press(c, core.KeyDown, core.KeyEnter)
	if c.Loop.Step() {
		t.Fatalf("loop kept running after Quit")
	}
}
