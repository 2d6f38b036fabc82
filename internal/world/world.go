// Package world holds the farm simulation driven by the game loop: the
// player, the soil grid, crops and the arrival cutscene.
package world

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"clear-skies/internal/core"
	"clear-skies/internal/save"
	"clear-skies/internal/scene"
)

// Switcher changes the top-level game state.
type Switcher interface {
	Switch(core.GameState)
}

// Poster queues a custom event for the next dispatch.
type Poster interface {
	Post(core.Event)
}

// Config sizes the world.
type Config struct {
	Width           int
	Height          int
	TileSize        int
	CutsceneSeconds float64
	Seed            int64
}

const (
	playerSize = 20
	signReach  = 56.0
	treeCount  = 12
)

var (
	grassColor   = color.RGBA{R: 96, G: 160, B: 72, A: 255}
	tilledColor  = color.RGBA{R: 122, G: 86, B: 54, A: 255}
	wateredColor = color.RGBA{R: 82, G: 56, B: 36, A: 255}
	cropColor    = color.RGBA{R: 40, G: 120, B: 40, A: 255}
	ripeColor    = color.RGBA{R: 214, G: 62, B: 48, A: 255}
	treeColor    = color.RGBA{R: 34, G: 84, B: 40, A: 255}
	signColor    = color.RGBA{R: 170, G: 130, B: 80, A: 255}
	playerColor  = color.RGBA{R: 60, G: 80, B: 200, A: 255}
	gogglesColor = color.RGBA{R: 250, G: 220, B: 60, A: 255}
	hudColor     = color.RGBA{R: 250, G: 250, B: 250, A: 255}
)

// World is the simulation handler that receives events while playing.
type World struct {
	cfg      Config
	player   *Player
	soil     *Soil
	cutscene Cutscene
	switcher Switcher
	poster   Poster

	held    map[core.Key]bool
	trees   []image.Point
	sign    image.Point
	elapsed float64
}

// New builds the world around player. Tree placement is derived from the
// configured seed.
func New(cfg Config, player *Player, switcher Switcher, poster Poster) *World {
	if cfg.TileSize <= 0 {
		cfg.TileSize = 32
	}
	w := &World{
		cfg:      cfg,
		player:   player,
		soil:     NewSoil(cfg.Width/cfg.TileSize, cfg.Height/cfg.TileSize),
		switcher: switcher,
		poster:   poster,
		held:     map[core.Key]bool{},
		sign:     image.Pt(cfg.Width/2+3*cfg.TileSize, cfg.Height/2-2*cfg.TileSize),
	}
	w.cutscene.Duration = cfg.CutsceneSeconds
	rng := core.NewRNG(cfg.Seed)
	for i := 0; i < treeCount; i++ {
		w.trees = append(w.trees, image.Pt(rng.IntN(cfg.Width), rng.IntN(cfg.Height/4)))
	}
	return w
}

// Player returns the controlled player.
func (w *World) Player() *Player { return w.player }

// Soil returns the farm grid.
func (w *World) Soil() *Soil { return w.soil }

// Trees returns the decorative tree positions.
func (w *World) Trees() []image.Point { return w.trees }

// CutsceneActive reports whether the arrival cutscene is running.
func (w *World) CutsceneActive() bool { return w.cutscene.Active() }

// VisualModifierActive reports whether the player sees the world through
// the goggles.
func (w *World) VisualModifierActive() bool { return w.player.HasGoggles() }

// StartCutscene begins the arrival cutscene if it has not played yet.
func (w *World) StartCutscene() { w.cutscene.Start() }

// HandleEvent applies player commands. Key releases are always tracked so
// movement does not stick after a menu closes.
func (w *World) HandleEvent(ev core.Event) bool {
	if ev.Kind == core.EventKeyUp {
		if _, ok := w.held[ev.Key]; ok {
			w.held[ev.Key] = false
			return true
		}
		return false
	}
	if ev.Kind != core.EventKeyDown || w.player.Blocked() || w.cutscene.Active() {
		return false
	}
	switch ev.Key {
	case core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight, core.KeyW, core.KeyA, core.KeyS, core.KeyD:
		w.held[ev.Key] = true
	case core.KeySpace:
		w.UseTool()
	case core.KeyI, core.KeyTab:
		w.post(core.Event{Kind: core.EventOpenInventory})
	case core.KeyE:
		if !w.nearSign() {
			return false
		}
		w.post(core.Event{Kind: core.EventDialogShow, Dialog: "sign"})
	case core.KeyEscape:
		w.switcher.Switch(core.StatePause)
	case core.KeyB:
		w.switcher.Switch(core.StateShop)
	case core.KeyO:
		w.switcher.Switch(core.StateOutgroupMenu)
	default:
		return false
	}
	return true
}

// Update advances the simulation by dt seconds. Nothing moves unless the
// game is being played. The arrival cutscene starts on the first played
// tick.
func (w *World) Update(dt float64, playing bool) {
	if !playing {
		return
	}
	w.cutscene.Start()
	w.elapsed += dt
	if w.cutscene.Active() {
		w.cutscene.Advance(dt)
		w.walkIn()
	} else {
		w.player.setDirection(w.direction())
		w.player.move(dt, w.bounds())
	}
	w.soil.Grow(dt)
}

// UseTool applies the active tool to the tile under the player. Ripe crops
// are harvested whatever the tool.
func (w *World) UseTool() {
	plot := w.soil.At(w.tileUnderPlayer())
	if plot == nil {
		return
	}
	if plot.Ripe() {
		w.player.Add(plot.Plant, 1)
		*plot = Plot{Tilled: true}
		return
	}
	switch w.player.Tool {
	case ToolHoe:
		plot.Tilled = true
	case ToolWater:
		if plot.Tilled {
			plot.Watered = true
		}
	case ToolPlant:
		seed := w.player.Seed + " seed"
		if plot.Tilled && plot.Plant == "" && w.player.Count(seed) > 0 {
			w.player.Add(seed, -1)
			plot.Plant = w.player.Seed
			plot.Age = 0
		}
	}
}

// Draw paints the field, trees, sign, player and status line.
func (w *World) Draw(dst draw.Image) {
	b := dst.Bounds()
	scene.FillRect(dst, b, grassColor)
	ts := w.cfg.TileSize
	for y := 0; y < w.soil.H; y++ {
		for x := 0; x < w.soil.W; x++ {
			p := w.soil.At(x, y)
			if !p.Tilled {
				continue
			}
			r := image.Rect(x*ts+1, y*ts+1, (x+1)*ts-1, (y+1)*ts-1).Add(b.Min)
			col := tilledColor
			if p.Watered {
				col = wateredColor
			}
			scene.FillRect(dst, r, col)
			if p.Plant == "" {
				continue
			}
			inset := ts/2 - 3 - 3*p.Stage()
			crop := cropColor
			if p.Ripe() {
				crop = ripeColor
			}
			scene.FillRect(dst, r.Inset(inset), crop)
		}
	}
	for _, t := range w.trees {
		scene.FillRect(dst, image.Rect(t.X-10, t.Y-14, t.X+10, t.Y+14).Add(b.Min), treeColor)
	}
	scene.FillRect(dst, image.Rect(w.sign.X-12, w.sign.Y-8, w.sign.X+12, w.sign.Y+8).Add(b.Min), signColor)

	px, py := int(w.player.X), int(w.player.Y)
	scene.FillRect(dst, image.Rect(px, py, px+playerSize, py+playerSize).Add(b.Min), playerColor)
	if w.player.HasGoggles() {
		scene.FillRect(dst, image.Rect(px+3, py+4, px+playerSize-3, py+8).Add(b.Min), gogglesColor)
	}
	status := fmt.Sprintf("$%d  tool: %s  seed: %s", w.player.Money, w.player.Tool, w.player.Seed)
	scene.DrawText(dst, status, b.Min.X+8, b.Min.Y+scene.LineHeight, hudColor)
}

// Snapshot captures the persistent part of the world.
func (w *World) Snapshot() save.Snapshot {
	return save.Snapshot{Soil: w.soil.Tiles(), Player: w.player.snapshot()}
}

// Restore replaces soil and player state with a saved snapshot.
func (w *World) Restore(s save.Snapshot) {
	w.soil.Load(s.Soil)
	w.player.restore(s.Player)
}

func (w *World) post(ev core.Event) {
	if w.poster != nil {
		w.poster.Post(ev)
	}
}

func (w *World) direction() (float64, float64) {
	var dx, dy float64
	if w.held[core.KeyLeft] || w.held[core.KeyA] {
		dx--
	}
	if w.held[core.KeyRight] || w.held[core.KeyD] {
		dx++
	}
	if w.held[core.KeyUp] || w.held[core.KeyW] {
		dy--
	}
	if w.held[core.KeyDown] || w.held[core.KeyS] {
		dy++
	}
	return dx, dy
}

// walkIn slides the player from the left edge toward the middle of the
// field as the cutscene progresses.
func (w *World) walkIn() {
	target := float64(w.cfg.Width/2 - playerSize/2)
	w.player.X = target * w.cutscene.Progress()
	w.player.Y = float64(w.cfg.Height/2 - playerSize/2)
	w.player.VX, w.player.VY = 0, 0
}

func (w *World) bounds() [2]float64 {
	return [2]float64{float64(w.cfg.Width - playerSize), float64(w.cfg.Height - playerSize)}
}

func (w *World) tileUnderPlayer() (int, int) {
	cx := w.player.X + playerSize/2
	cy := w.player.Y + playerSize/2
	return int(cx) / w.cfg.TileSize, int(cy) / w.cfg.TileSize
}

func (w *World) nearSign() bool {
	cx := w.player.X + playerSize/2
	cy := w.player.Y + playerSize/2
	return math.Hypot(cx-float64(w.sign.X), cy-float64(w.sign.Y)) <= signReach
}

// SignPosition returns the centre of the notice board.
func (w *World) SignPosition() image.Point { return w.sign }

// Elapsed returns the simulated seconds played so far.
func (w *World) Elapsed() float64 { return w.elapsed }
