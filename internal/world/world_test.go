package world

import (
	"image"
	"testing"

	"clear-skies/internal/core"
)

type switchRecorder struct{ states []core.GameState }

func (s *switchRecorder) Switch(st core.GameState) { s.states = append(s.states, st) }

type postRecorder struct{ events []core.Event }

func (p *postRecorder) Post(ev core.Event) { p.events = append(p.events, ev) }

func newTestWorld(cutscene float64) (*World, *switchRecorder, *postRecorder) {
	sw := &switchRecorder{}
	po := &postRecorder{}
	w := New(Config{Width: 320, Height: 192, TileSize: 32, CutsceneSeconds: cutscene, Seed: 7}, NewPlayer(100, 100), sw, po)
	return w, sw, po
}

func TestWorldMovesPlayerWhilePlaying(t *testing.T) {
	w, _, _ := newTestWorld(0)
	w.HandleEvent(core.Press(core.KeyD))
	w.Update(0.5, true)
	if got := w.Player().X; got != 180 {
		t.Fatalf("player x = %v, want 180", got)
	}
	if vx, _ := w.Player().Velocity(); vx != w.Player().Speed {
		t.Fatalf("vx = %v, want %v", vx, w.Player().Speed)
	}
	w.HandleEvent(core.Event{Kind: core.EventKeyUp, Key: core.KeyD})
	w.Update(0.5, true)
	if got := w.Player().X; got != 180 {
		t.Fatalf("player drifted to %v after key release", got)
	}
}

func TestWorldReceivesNoTimeWhenNotPlaying(t *testing.T) {
	w, _, _ := newTestWorld(0)
	w.HandleEvent(core.Press(core.KeyS))
	w.Update(1, false)
	if w.Player().Y != 100 || w.Elapsed() != 0 {
		t.Fatalf("world advanced while not playing: y=%v elapsed=%v", w.Player().Y, w.Elapsed())
	}
}

func TestBlockedPlayerIgnoresCommands(t *testing.T) {
	w, sw, po := newTestWorld(0)
	w.Player().Block()
	for _, k := range []core.Key{core.KeyD, core.KeyEscape, core.KeyI, core.KeySpace} {
		if w.HandleEvent(core.Press(k)) {
			t.Fatalf("blocked world consumed key %v", k)
		}
	}
	if len(sw.states) != 0 || len(po.events) != 0 {
		t.Fatalf("blocked world produced side effects: %v %v", sw.states, po.events)
	}
	if vx, vy := w.Player().Velocity(); vx != 0 || vy != 0 {
		t.Fatalf("blocked velocity = (%v, %v)", vx, vy)
	}
}

func TestWorldKeysSwitchStatesAndPostEvents(t *testing.T) {
	w, sw, po := newTestWorld(0)
	w.HandleEvent(core.Press(core.KeyEscape))
	w.HandleEvent(core.Press(core.KeyB))
	w.HandleEvent(core.Press(core.KeyO))
	want := []core.GameState{core.StatePause, core.StateShop, core.StateOutgroupMenu}
	if len(sw.states) != len(want) {
		t.Fatalf("switches = %v, want %v", sw.states, want)
	}
	for i := range want {
		if sw.states[i] != want[i] {
			t.Fatalf("switch %d = %v, want %v", i, sw.states[i], want[i])
		}
	}
	w.HandleEvent(core.Press(core.KeyTab))
	if len(po.events) != 1 || po.events[0].Kind != core.EventOpenInventory {
		t.Fatalf("posted %v, want inventory-open", po.events)
	}
}

func TestSignDialogRequiresProximity(t *testing.T) {
	w, _, po := newTestWorld(0)
	w.Player().X, w.Player().Y = 0, 0
	if w.HandleEvent(core.Press(core.KeyE)) {
		t.Fatalf("sign read from across the map")
	}
	sign := w.SignPosition()
	w.Player().X = float64(sign.X - playerSize/2)
	w.Player().Y = float64(sign.Y - playerSize/2)
	if !w.HandleEvent(core.Press(core.KeyE)) {
		t.Fatalf("sign not read next to it")
	}
	if len(po.events) != 1 || po.events[0].Kind != core.EventDialogShow || po.events[0].Dialog != "sign" {
		t.Fatalf("posted %v, want sign dialogue", po.events)
	}
}

func TestFarmingCycle(t *testing.T) {
	w, _, _ := newTestWorld(0)
	p := w.Player()
	p.X, p.Y = 38, 38
	tx, ty := w.tileUnderPlayer()
	if tx != 1 || ty != 1 {
		t.Fatalf("tile under player = (%d,%d), want (1,1)", tx, ty)
	}
	seeds := p.Count("tomato seed")

	w.UseTool()
	p.AssignTool(ToolPlant)
	w.UseTool()
	plot := w.Soil().At(1, 1)
	if !plot.Tilled || plot.Plant != "tomato" {
		t.Fatalf("plot = %+v, want tilled tomato", *plot)
	}
	if p.Count("tomato seed") != seeds-1 {
		t.Fatalf("seed count = %d, want %d", p.Count("tomato seed"), seeds-1)
	}

	w.Update(growSeconds*ripeStage, true)
	if plot.Age != 0 {
		t.Fatalf("dry crop aged to %v", plot.Age)
	}
	p.AssignTool(ToolWater)
	w.UseTool()
	w.Update(growSeconds*ripeStage, true)
	if !plot.Ripe() {
		t.Fatalf("watered crop not ripe: %+v", *plot)
	}
	w.UseTool()
	if p.Count("tomato") != 1 || plot.Plant != "" {
		t.Fatalf("harvest failed: tomatoes=%d plot=%+v", p.Count("tomato"), *plot)
	}
}

func TestCutsceneWalksPlayerIn(t *testing.T) {
	w, _, _ := newTestWorld(2)
	w.StartCutscene()
	if !w.CutsceneActive() {
		t.Fatalf("cutscene not active after start")
	}
	if w.HandleEvent(core.Press(core.KeyEscape)) {
		t.Fatalf("commands accepted during cutscene")
	}
	w.Update(1, true)
	if got, want := w.Player().X, float64(320/2-playerSize/2)/2; got != want {
		t.Fatalf("halfway x = %v, want %v", got, want)
	}
	w.Update(1, true)
	if w.CutsceneActive() {
		t.Fatalf("cutscene still active after its duration")
	}
	w.StartCutscene()
	if w.CutsceneActive() {
		t.Fatalf("cutscene replayed")
	}
}

func TestVisualModifierFollowsGoggles(t *testing.T) {
	w, _, _ := newTestWorld(0)
	if w.VisualModifierActive() {
		t.Fatalf("modifier active without goggles")
	}
	w.Player().ToggleCosmetic(CosmeticGoggles)
	if w.VisualModifierActive() {
		t.Fatalf("unowned goggles equipped")
	}
	w.Player().Grant(CosmeticGoggles)
	w.Player().ToggleCosmetic(CosmeticGoggles)
	if !w.VisualModifierActive() {
		t.Fatalf("modifier inactive with goggles equipped")
	}
}

func TestSnapshotRestore(t *testing.T) {
	w, _, _ := newTestWorld(0)
	w.Soil().At(2, 3).Tilled = true
	w.Soil().At(2, 3).Plant = "corn"
	w.Player().Money = 99
	snap := w.Snapshot()

	other, _, _ := newTestWorld(0)
	other.Restore(snap)
	if got := other.Soil().At(2, 3); !got.Tilled || got.Plant != "corn" {
		t.Fatalf("restored plot = %+v", *got)
	}
	if other.Player().Money != 99 {
		t.Fatalf("restored money = %d", other.Player().Money)
	}
	snap.Player.Items["corn seed"] = 100
	if w.Player().Count("corn seed") == 100 {
		t.Fatalf("snapshot aliases player items")
	}
}

func TestTreesAreSeeded(t *testing.T) {
	a, _, _ := newTestWorld(0)
	b, _, _ := newTestWorld(0)
	if len(a.Trees()) != treeCount {
		t.Fatalf("tree count = %d", len(a.Trees()))
	}
	for i := range a.Trees() {
		if a.Trees()[i] != b.Trees()[i] {
			t.Fatalf("tree %d differs between equal seeds", i)
		}
	}
}

func TestDrawPaintsPlayer(t *testing.T) {
	w, _, _ := newTestWorld(0)
	img := image.NewRGBA(image.Rect(0, 0, 320, 192))
	w.Draw(img)
	if got := img.RGBAAt(110, 110); got != playerColor {
		t.Fatalf("player pixel = %v, want %v", got, playerColor)
	}
}
