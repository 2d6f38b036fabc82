package world

import "clear-skies/internal/save"

// Crop growth constants.
const (
	growSeconds = 20.0
	ripeStage   = 3
)

// Plot is one tile of farmland.
type Plot struct {
	Tilled  bool
	Watered bool
	Plant   string
	Age     float64
}

// Stage returns the growth stage of the planted crop, 0 to ripeStage.
func (p *Plot) Stage() int {
	if p.Plant == "" {
		return 0
	}
	stage := int(p.Age / growSeconds)
	if stage > ripeStage {
		stage = ripeStage
	}
	return stage
}

// Ripe reports whether the crop can be harvested.
func (p *Plot) Ripe() bool { return p.Plant != "" && p.Stage() == ripeStage }

// Soil is the grid of plots covering the map.
type Soil struct {
	W, H  int
	plots []Plot
}

// NewSoil allocates an untouched w*h field.
func NewSoil(w, h int) *Soil {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Soil{W: w, H: h, plots: make([]Plot, w*h)}
}

// At returns the plot at (x, y), or nil outside the field.
func (s *Soil) At(x, y int) *Plot {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return nil
	}
	return &s.plots[y*s.W+x]
}

// Grow ages every watered crop by dt seconds.
func (s *Soil) Grow(dt float64) {
	for i := range s.plots {
		p := &s.plots[i]
		if p.Plant != "" && p.Watered {
			p.Age += dt
		}
	}
}

// Tiles returns every tilled plot for saving.
func (s *Soil) Tiles() []save.Tile {
	var out []save.Tile
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			p := s.plots[y*s.W+x]
			if !p.Tilled {
				continue
			}
			out = append(out, save.Tile{X: x, Y: y, Watered: p.Watered, Plant: p.Plant, Age: p.Age})
		}
	}
	return out
}

// Load replaces the field with saved tiles.
func (s *Soil) Load(tiles []save.Tile) {
	for i := range s.plots {
		s.plots[i] = Plot{}
	}
	for _, t := range tiles {
		if p := s.At(t.X, t.Y); p != nil {
			*p = Plot{Tilled: true, Watered: t.Watered, Plant: t.Plant, Age: t.Age}
		}
	}
}
