package ui

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"clear-skies/internal/core"
	"clear-skies/internal/scene"
)

// Control describes one adjustable setting.
type Control struct {
	Key   string
	Label string
	Min   float64
	Max   float64
	Step  float64
	Value float64
}

// Settings is the options menu. Up and Down pick a row, Left and Right
// adjust it, and Escape returns to the pause menu.
type Settings struct {
	controls []Control
	cursor   int
	sw       Switcher
}

// DefaultControls returns the stored audio and display settings.
func DefaultControls() []Control {
	return []Control{
		{Key: "music", Label: "Music volume", Min: 0, Max: 1, Step: 0.1, Value: 0.6},
		{Key: "effects", Label: "Effects volume", Min: 0, Max: 1, Step: 0.1, Value: 0.8},
		{Key: "text_speed", Label: "Text speed", Min: 0.5, Max: 2, Step: 0.5, Value: 1},
	}
}

// NewSettings returns the options menu over controls.
func NewSettings(sw Switcher, controls []Control) *Settings {
	return &Settings{controls: controls, sw: sw}
}

// Value returns the current value of the control with key.
func (s *Settings) Value(key string) (float64, bool) {
	for _, c := range s.controls {
		if c.Key == key {
			return c.Value, true
		}
	}
	return 0, false
}

// HandleEvent implements core.EventHandler.
func (s *Settings) HandleEvent(ev core.Event) bool {
	if ev.Kind != core.EventKeyDown {
		return false
	}
	rows := len(s.controls) + 1
	switch ev.Key {
	case core.KeyUp, core.KeyW:
		s.cursor = (s.cursor + rows - 1) % rows
	case core.KeyDown, core.KeyS:
		s.cursor = (s.cursor + 1) % rows
	case core.KeyLeft, core.KeyA:
		s.adjust(-1)
	case core.KeyRight, core.KeyD:
		s.adjust(1)
	case core.KeyEnter, core.KeySpace:
		if s.cursor == len(s.controls) {
			s.sw.Switch(core.StatePause)
		}
	case core.KeyEscape:
		s.sw.Switch(core.StatePause)
	default:
		return false
	}
	return true
}

// Update is a no-op.
func (s *Settings) Update(float64) {}

func (s *Settings) adjust(direction int) {
	if s.cursor >= len(s.controls) || !s.canAdjust(&s.controls[s.cursor], direction) {
		return
	}
	c := &s.controls[s.cursor]
	target := c.Value + float64(direction)*step(c)
	if target < c.Min {
		target = c.Min
	}
	if target > c.Max {
		target = c.Max
	}
	c.Value = math.Round(target/step(c)) / (1 / step(c))
}

func (s *Settings) canAdjust(c *Control, direction int) bool {
	if direction == 0 {
		return false
	}
	target := c.Value + float64(direction)*step(c)
	if direction < 0 && target < c.Min-1e-9 {
		return false
	}
	if direction > 0 && target > c.Max+1e-9 {
		return false
	}
	return true
}

// Draw paints the settings panel.
func (s *Settings) Draw(dst draw.Image) {
	const width = 360
	b := dst.Bounds()
	scene.FillRect(dst, b, color.RGBA{A: 96})
	height := 2*panelPadding + headerHeight + (len(s.controls)+1)*rowHeight
	panel := image.Rect(0, 0, width, height).Add(image.Pt(b.Min.X+(b.Dx()-width)/2, b.Min.Y+(b.Dy()-height)/2))
	scene.FillRect(dst, panel, panelColor)
	scene.DrawText(dst, "Options", panel.Min.X+panelPadding, panel.Min.Y+panelPadding+scene.LineHeight, titleColor)

	top := panel.Min.Y + panelPadding + headerHeight
	for i := 0; i <= len(s.controls); i++ {
		row := image.Rect(panel.Min.X+panelPadding/2, top+i*rowHeight, panel.Max.X-panelPadding/2, top+(i+1)*rowHeight)
		if i == s.cursor {
			scene.FillRect(dst, row, highlightColor)
		}
		y := row.Min.Y + rowBaseline
		if i == len(s.controls) {
			scene.DrawText(dst, "Back", row.Min.X+markerWidth, y, textColor)
			continue
		}
		c := &s.controls[i]
		scene.DrawText(dst, c.Label, row.Min.X+markerWidth, y, textColor)
		value := formatFloat(*c)
		left, right := "<", ">"
		if !s.canAdjust(c, -1) {
			left = " "
		}
		if !s.canAdjust(c, 1) {
			right = " "
		}
		label := left + " " + value + " " + right
		scene.DrawText(dst, label, row.Max.X-panelPadding-scene.TextWidth(label), y, titleColor)
	}
}

func step(c *Control) float64 {
	if c.Step <= 0 {
		return 0.05
	}
	return c.Step
}

func formatFloat(c Control) string {
	precision := 2
	switch s := step(&c); {
	case s < 0.001:
		precision = 4
	case s < 0.01:
		precision = 3
	case s < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(c.Value, 'f', precision, 64)
}
