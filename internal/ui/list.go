// Package ui implements the menus shown while the game is paused, the
// fast-forward overlay and the software cursor.
package ui

import (
	"image"
	"image/color"
	"image/draw"

	"clear-skies/internal/core"
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

// Option is one selectable line of a menu.
type Option struct {
	Label  string
	Action func()
}

// List is a vertical menu navigated with the arrow keys, Enter or the
// mouse. Escape runs the back action when one is set.
type List struct {
	Title   string
	Footer  []string
	options []Option
	cursor  int
	back    func()
	rects   []image.Rectangle
	pulse   float64
}

// NewList returns a menu with the given options.
func NewList(title string, options ...Option) *List {
	return &List{Title: title, options: options}
}

// SetOptions replaces the options, keeping the cursor in range.
func (l *List) SetOptions(options []Option) {
	l.options = options
	l.rects = nil
	if l.cursor >= len(options) {
		l.cursor = len(options) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// OnBack sets the action bound to Escape.
func (l *List) OnBack(fn func()) { l.back = fn }

// Options returns the current options.
func (l *List) Options() []Option { return l.options }

// Cursor returns the highlighted option index.
func (l *List) Cursor() int { return l.cursor }

// Activate runs the highlighted option.
func (l *List) Activate() {
	if l.cursor < len(l.options) && l.options[l.cursor].Action != nil {
		l.options[l.cursor].Action()
	}
}

// Choose highlights and runs the option with the given label. It reports
// whether one was found.
func (l *List) Choose(label string) bool {
	for i, opt := range l.options {
		if opt.Label == label {
			l.cursor = i
			l.Activate()
			return true
		}
	}
	return false
}

// HandleEvent implements core.EventHandler.
func (l *List) HandleEvent(ev core.Event) bool {
	switch ev.Kind {
	case core.EventMouseDown:
		for i, r := range l.rects {
			if pointInRect(ev.X, ev.Y, r) {
				l.cursor = i
				l.Activate()
				return true
			}
		}
		return false
	case core.EventKeyDown:
	default:
		return false
	}
	switch ev.Key {
	case core.KeyUp, core.KeyW:
		l.move(-1)
	case core.KeyDown, core.KeyS:
		l.move(1)
	case core.KeyEnter, core.KeySpace:
		l.Activate()
	case core.KeyEscape:
		if l.back == nil {
			return false
		}
		l.back()
	default:
		return false
	}
	return true
}

// Update animates the highlight.
func (l *List) Update(dt float64) {
	l.pulse += dt
	if l.pulse > 1 {
		l.pulse -= 1
	}
}

// Draw dims dst and paints the menu panel in the middle of it.
func (l *List) Draw(dst draw.Image) {
	b := dst.Bounds()
	scene.FillRect(dst, b, color.RGBA{A: 96})

	width := scene.TextWidth(l.Title)
	for _, opt := range l.options {
		if w := scene.TextWidth(opt.Label) + 2*markerWidth; w > width {
			width = w
		}
	}
	for _, line := range l.Footer {
		if w := scene.TextWidth(line); w > width {
			width = w
		}
	}
	width += 2 * panelPadding
	height := 2*panelPadding + headerHeight + len(l.options)*rowHeight + len(l.Footer)*scene.LineHeight
	panel := image.Rect(0, 0, width, height).Add(image.Pt(b.Min.X+(b.Dx()-width)/2, b.Min.Y+(b.Dy()-height)/2))
	scene.FillRect(dst, panel, panelColor)
	scene.FillRect(dst, image.Rect(panel.Min.X, panel.Min.Y, panel.Max.X, panel.Min.Y+2), accentColor)
	scene.DrawText(dst, l.Title, panel.Min.X+panelPadding, panel.Min.Y+panelPadding+scene.LineHeight, titleColor)

	l.rects = l.rects[:0]
	top := panel.Min.Y + panelPadding + headerHeight
	for i, opt := range l.options {
		row := image.Rect(panel.Min.X+panelPadding/2, top+i*rowHeight, panel.Max.X-panelPadding/2, top+(i+1)*rowHeight)
		l.rects = append(l.rects, row)
		fg := textColor
		if i == l.cursor {
			bg := highlightColor
			if l.pulse > 0.5 {
				bg.A = 200
			}
			scene.FillRect(dst, row, bg)
			fg = titleColor
			scene.DrawText(dst, ">", row.Min.X+4, row.Min.Y+rowBaseline, fg)
		}
		scene.DrawText(dst, opt.Label, row.Min.X+markerWidth, row.Min.Y+rowBaseline, fg)
	}
	y := top + len(l.options)*rowHeight + scene.LineHeight
	for _, line := range l.Footer {
		scene.DrawText(dst, line, panel.Min.X+panelPadding, y, mutedColor)
		y += scene.LineHeight
	}
}

func (l *List) move(delta int) {
	if len(l.options) == 0 {
		return
	}
	l.cursor = (l.cursor + delta + len(l.options)) % len(l.options)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

var (
	panelColor     = color.RGBA{R: 16, G: 16, B: 20, A: 235}
	accentColor    = color.RGBA{R: 220, G: 190, B: 120, A: 255}
	titleColor     = color.RGBA{R: 240, G: 240, B: 245, A: 255}
	textColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	mutedColor     = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	highlightColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
)

const (
	panelPadding = 16
	headerHeight = 28
	rowHeight    = 24
	rowBaseline  = 17
	markerWidth  = 16
)
