package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Palette returns the colour of an item classification for a game.
type Palette func(game, class string) tcell.Color

// Renderer handles drawing the spoiler view to the screen.
type Renderer struct {
	screen  *Screen
	palette Palette
}

// NewRenderer creates a new renderer for the given screen. A nil palette
// draws every item in the default colour.
func NewRenderer(screen *Screen, palette Palette) *Renderer {
	if palette == nil {
		palette = func(string, string) tcell.Color { return tcell.ColorDefault }
	}
	return &Renderer{screen: screen, palette: palette}
}

// Render draws lines starting at offset, leaving the last row for status.
func (r *Renderer) Render(game string, lines []Line, offset int, status string) {
	r.screen.Clear()
	_, height := r.screen.Size()

	for y := 0; y < height-1; y++ {
		i := offset + y
		if i >= len(lines) {
			break
		}
		line := lines[i]
		r.drawText(0, y, line.Text, r.lineStyle(game, line))
	}
	r.RenderMessage(status, height-1)
	r.screen.Show()
}

// lineStyle returns the style for a line.
func (r *Renderer) lineStyle(game string, line Line) tcell.Style {
	switch line.Kind {
	case LineHeader:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case LineRegion:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	case LineExit:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case LineItem:
		return tcell.StyleDefault.Foreground(r.palette(game, line.Class))
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true))
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
