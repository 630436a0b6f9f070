package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/skymanual/internal/generate"
	"github.com/samdwyer/skymanual/internal/telemetry"
)

// Viewer is an interactive spoiler browser for one stored result.
type Viewer struct {
	screen   *Screen
	renderer *Renderer
	result   *generate.Result

	player  int // index into result.Players
	lines   []Line
	offset  int
	running bool
}

// NewViewer creates a viewer on screen for result.
func NewViewer(screen *Screen, result *generate.Result, palette Palette) (*Viewer, error) {
	if len(result.Players) == 0 {
		return nil, fmt.Errorf("result %s has no players", result.ID)
	}
	v := &Viewer{
		screen:   screen,
		renderer: NewRenderer(screen, palette),
		result:   result,
		running:  true,
	}
	v.selectPlayer(0)
	return v, nil
}

// Run executes the input loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	_, span := telemetry.Tracer("ui").Start(ctx, "viewer.run")
	span.SetAttributes(
		attribute.String("result.id", v.result.ID.String()),
		attribute.Int("result.players", len(v.result.Players)),
	)
	defer span.End()

	for v.running {
		v.Draw()
		v.handleInput()
	}

	v.screen.Close()
	return nil
}

// Draw renders the current page.
func (v *Viewer) Draw() {
	p := &v.result.Players[v.player]
	status := fmt.Sprintf(" %s  player %d/%d  line %d/%d  tab: next player  q: quit ",
		v.result.ID, v.player+1, len(v.result.Players), v.offset+1, len(v.lines))
	v.renderer.Render(p.Game, v.lines, v.offset, status)
}

// Player returns the index of the player on display.
func (v *Viewer) Player() int {
	return v.player
}

// Offset returns the first visible line.
func (v *Viewer) Offset() int {
	return v.offset
}

// Running reports whether the viewer is still accepting input.
func (v *Viewer) Running() bool {
	return v.running
}

func (v *Viewer) selectPlayer(i int) {
	v.player = i
	v.lines = BuildLines(&v.result.Players[i])
	v.offset = 0
}

// handleInput processes a single input event.
func (v *Viewer) handleInput() {
	switch ev := v.screen.PollEvent().(type) {
	case *tcell.EventKey:
		v.HandleKey(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// Screen finalized.
		v.running = false
	}
}

// Action is something a key press asks the viewer to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionUp
	ActionDown
	ActionPageUp
	ActionPageDown
	ActionTop
	ActionBottom
	ActionNextPlayer
	ActionPrevPlayer
)

// KeyAction maps a key (and its rune for KeyRune) to an action.
func KeyAction(k tcell.Key, r rune) Action {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyPgUp:
		return ActionPageUp
	case tcell.KeyPgDn:
		return ActionPageDown
	case tcell.KeyHome:
		return ActionTop
	case tcell.KeyEnd:
		return ActionBottom
	case tcell.KeyTab:
		return ActionNextPlayer
	case tcell.KeyBacktab:
		return ActionPrevPlayer
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return ActionQuit
		case 'j':
			return ActionDown
		case 'k':
			return ActionUp
		}
	}
	return ActionNone
}

// HandleKey applies one key press.
func (v *Viewer) HandleKey(ev *tcell.EventKey) {
	v.Apply(KeyAction(ev.Key(), ev.Rune()))
}

// Apply performs an action.
func (v *Viewer) Apply(a Action) {
	_, height := v.screen.Size()
	page := max(height-1, 1)
	players := len(v.result.Players)

	switch a {
	case ActionQuit:
		v.running = false
	case ActionUp:
		v.scroll(-1, page)
	case ActionDown:
		v.scroll(1, page)
	case ActionPageUp:
		v.scroll(-page, page)
	case ActionPageDown:
		v.scroll(page, page)
	case ActionTop:
		v.offset = 0
	case ActionBottom:
		v.scroll(len(v.lines), page)
	case ActionNextPlayer:
		v.selectPlayer((v.player + 1) % players)
	case ActionPrevPlayer:
		v.selectPlayer((v.player + players - 1) % players)
	}
}

// scroll moves the offset by delta, keeping the last page full.
func (v *Viewer) scroll(delta, page int) {
	last := max(len(v.lines)-page, 0)
	v.offset = min(max(v.offset+delta, 0), last)
}
