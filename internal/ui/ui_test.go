package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/skymanual/internal/generate"
)

func sampleResult() *generate.Result {
	player := func(n int, name string, locations int) generate.PlayerResult {
		r := generate.RegionResult{Name: "Hub", Exits: []string{"Chapter 1: Mudwater Hollow"}}
		for i := range locations {
			r.Locations = append(r.Locations, generate.LocationResult{Name: "Check " + string(rune('A'+i%26))})
		}
		r.Locations = append(r.Locations, generate.LocationResult{
			Name: "Defeat Kaos", Requires: "|Map of Arkus Fragment:16|",
			Item: "Victory", Class: "progression", Locked: true, Victory: true,
		})
		return generate.PlayerResult{
			Player: n, Name: name, Game: "Skylanders Swap Force",
			ItemPool:         []string{"Boom Jet"},
			Regions:          []generate.RegionResult{{Name: "Manual", Exits: []string{"Hub"}}, r},
			VictoryReachable: true,
		}
	}
	return &generate.Result{
		ID:      uuid.New(),
		Players: []generate.PlayerResult{player(1, "Spyro", 40), player(2, "Cynder", 2)},
	}
}

func TestBuildLines(t *testing.T) {
	r := sampleResult()
	lines := BuildLines(&r.Players[1])

	assert.Equal(t, LineHeader, lines[0].Kind)
	assert.Contains(t, lines[0].Text, "Cynder")

	var regions, items []Line
	for _, l := range lines {
		switch l.Kind {
		case LineRegion:
			regions = append(regions, l)
		case LineItem:
			items = append(items, l)
		}
	}
	require.Len(t, regions, 2)
	assert.Equal(t, "Manual", regions[0].Text)
	require.Len(t, items, 1)
	assert.Equal(t, "progression", items[0].Class)
	assert.True(t, strings.HasSuffix(items[0].Text, "! Victory"))
}

func TestBuildLinesWarnings(t *testing.T) {
	p := sampleResult().Players[0]
	p.VictoryReachable = false
	p.Warnings = []string{"pool too large"}

	lines := BuildLines(&p)
	var text []string
	for _, l := range lines {
		if l.Kind == LineHeader {
			text = append(text, l.Text)
		}
	}
	assert.Contains(t, text, "victory is not reachable")
	assert.Contains(t, text, "warning: pool too large")
}

func newTestViewer(t *testing.T) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	screen, err := NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(80, 10)
	t.Cleanup(screen.Close)

	palette := func(_, class string) tcell.Color {
		if class == "progression" {
			return tcell.ColorPurple
		}
		return tcell.ColorDefault
	}
	v, err := NewViewer(screen, sampleResult(), palette)
	require.NoError(t, err)
	return v, sim
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyRune, 'j', ActionDown},
		{tcell.KeyRune, 'k', ActionUp},
		{tcell.KeyRune, 'x', ActionNone},
		{tcell.KeyTab, 0, ActionNextPlayer},
		{tcell.KeyBacktab, 0, ActionPrevPlayer},
		{tcell.KeyPgDn, 0, ActionPageDown},
		{tcell.KeyEnter, 0, ActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KeyAction(tt.key, tt.r), "key %v rune %q", tt.key, tt.r)
	}
}

func TestViewerScroll(t *testing.T) {
	v, _ := newTestViewer(t)

	v.Apply(ActionUp)
	assert.Equal(t, 0, v.Offset())

	v.Apply(ActionDown)
	assert.Equal(t, 1, v.Offset())

	v.Apply(ActionBottom)
	last := v.Offset()
	assert.Positive(t, last)
	v.Apply(ActionPageDown)
	assert.Equal(t, last, v.Offset(), "cannot scroll past the last page")

	v.Apply(ActionTop)
	assert.Equal(t, 0, v.Offset())
}

func TestViewerSwitchPlayer(t *testing.T) {
	v, _ := newTestViewer(t)
	v.Apply(ActionDown)

	v.Apply(ActionNextPlayer)
	assert.Equal(t, 1, v.Player())
	assert.Equal(t, 0, v.Offset(), "switching player resets the scroll")

	v.Apply(ActionNextPlayer)
	assert.Equal(t, 0, v.Player())

	v.Apply(ActionPrevPlayer)
	assert.Equal(t, 1, v.Player())
}

func TestViewerQuit(t *testing.T) {
	v, _ := newTestViewer(t)
	assert.True(t, v.Running())
	v.Apply(ActionQuit)
	assert.False(t, v.Running())
}

func TestViewerDraw(t *testing.T) {
	v, _ := newTestViewer(t)
	assert.NotPanics(t, v.Draw)
	v.Apply(ActionBottom)
	assert.NotPanics(t, v.Draw)
}

func TestNewViewerNoPlayers(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	screen, err := NewScreenFrom(sim)
	require.NoError(t, err)
	defer screen.Close()

	_, err = NewViewer(screen, &generate.Result{}, nil)
	assert.Error(t, err)
}
