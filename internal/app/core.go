// Package app assembles the game from its parts and adapts it to the
// ebiten host.
package app

import (
	"context"
	"fmt"
	"log"

	"clear-skies/internal/core"
	"clear-skies/internal/dialogue"
	"clear-skies/internal/input"
	"clear-skies/internal/loop"
	"clear-skies/internal/save"
	"clear-skies/internal/scene"
	"clear-skies/internal/state"
	"clear-skies/internal/ui"
	"clear-skies/internal/world"
)

// Host supplies the platform side of the loop. Nil fields fall back to the
// core's own queue and the wall clock.
type Host struct {
	Source  input.Source
	Pointer loop.Pointer
	Clock   loop.Ticker
}

// Core is the assembled game without a window.
type Core struct {
	Config   *Config
	Queue    *input.Queue
	Player   *world.Player
	World    *world.World
	Machine  *state.Machine
	Dialogue *dialogue.Manager
	Settings *ui.Settings
	Sprites  *scene.Group
	Surface  *scene.Compositor
	Loop     *loop.Loop

	store *save.Store
}

// NewCore builds every collaborator once. The save file, when configured,
// is opened and loaded before the first tick.
func NewCore(cfg *Config, q *input.Queue, host Host) (*Core, error) {
	if q == nil {
		q = &input.Queue{}
	}
	if host.Source == nil {
		host.Source = q
	}
	if host.Clock == nil {
		host.Clock = core.NewClock(nil)
	}
	c := &Core{
		Config:  cfg,
		Queue:   q,
		Sprites: &scene.Group{},
		Surface: scene.NewCompositor(core.Size{W: cfg.Width, H: cfg.Height}),
	}
	if cfg.SavePath != "" {
		store, err := save.Open(cfg.SavePath)
		if err != nil {
			return nil, fmt.Errorf("open save: %w", err)
		}
		c.store = store
	}

	c.Player = world.NewPlayer(float64(cfg.Width/2), float64(cfg.Height/2))
	c.Machine = state.New(core.StateMainMenu, c.Player, state.SaverFunc(c.save))
	c.Machine.Debug = cfg.Debug
	c.World = world.New(world.Config{
		Width:           cfg.Width,
		Height:          cfg.Height,
		TileSize:        32,
		CutsceneSeconds: cfg.CutsceneSeconds,
		Seed:            cfg.Seed,
	}, c.Player, c.Machine, q)

	if c.store != nil {
		snap, ok, err := c.store.Load(context.Background())
		if err != nil {
			c.store.Close()
			return nil, fmt.Errorf("load save: %w", err)
		}
		if ok {
			c.World.Restore(snap)
			log.Printf("[save] restored %d tiles from %s", len(snap.Soil), cfg.SavePath)
		}
	}

	c.Settings = ui.NewSettings(c.Machine, ui.DefaultControls())
	c.Machine.SetMenus(state.Menus{
		Main:      ui.NewMainMenu(c.Machine, q),
		Pause:     ui.NewPauseMenu(c.Machine, q),
		Settings:  c.Settings,
		Shop:      ui.NewShop(c.Player, c.Machine),
		Inventory: ui.NewInventory(c.Player, c.Machine),
		RoundEnd:  ui.NewRoundEnd(c.Player, c.Machine),
		Outgroup:  ui.NewOutgroupMenu(c.Player, c.Machine),
	})
	c.Dialogue = dialogue.NewManager(c.Sprites, nil, dialogue.Layout{ScreenW: cfg.Width, ScreenH: cfg.Height})

	lc := loop.DefaultConfig()
	lc.RoundDuration = cfg.RoundMinutes * 60
	lc.FastForward = cfg.FastForward
	lc.BlurRadius = cfg.BlurRadius
	c.Loop = loop.New(lc, loop.Deps{
		Clock:    host.Clock,
		Source:   host.Source,
		Pointer:  host.Pointer,
		Machine:  c.Machine,
		World:    c.World,
		Player:   c.Player,
		Dialogue: c.Dialogue,
		Sprites:  c.Sprites,
		Surface:  c.Surface,
		Overlay:  ui.NewFastForward(),
		Cursor:   ui.NewCursor(),
	})
	return c, nil
}

// Close releases the save store.
func (c *Core) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

func (c *Core) save() error {
	if c.store == nil {
		log.Printf("[save] saving disabled, no save path configured")
		return nil
	}
	if err := c.store.Save(context.Background(), c.World.Snapshot()); err != nil {
		return fmt.Errorf("save world: %w", err)
	}
	log.Printf("[save] saved to %s", c.Config.SavePath)
	return nil
}
