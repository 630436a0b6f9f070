package ui

import (
	"fmt"
	"strings"

	"github.com/samdwyer/skymanual/internal/generate"
	"github.com/samdwyer/skymanual/internal/world"
)

// LineKind selects how a line is styled.
type LineKind int

const (
	LineHeader LineKind = iota
	LineRegion
	LineExit
	LineLocation
	LineItem
	LineBlank
)

// Line is one row of the spoiler view.
type Line struct {
	Kind LineKind
	Text string
	// Class is the item classification for LineItem, else empty.
	Class string
}

// BuildLines lays out one player's world: a header, the item pool summary,
// then every region with its exits and locations. Locked items get their own
// line under the location.
func BuildLines(p *generate.PlayerResult) []Line {
	lines := []Line{
		{Kind: LineHeader, Text: fmt.Sprintf("Player %d: %s (%s)", p.Player, p.Name, p.Game)},
		{Kind: LineHeader, Text: fmt.Sprintf("%d items in pool, %d locations, filler %q",
			len(p.ItemPool), p.LocationCount(), p.FillerItem)},
	}
	if !p.VictoryReachable {
		lines = append(lines, Line{Kind: LineHeader, Text: "victory is not reachable"})
	}
	for _, w := range p.Warnings {
		lines = append(lines, Line{Kind: LineHeader, Text: "warning: " + w})
	}

	for _, r := range p.Regions {
		lines = append(lines, Line{Kind: LineBlank})
		lines = append(lines, Line{Kind: LineRegion, Text: r.Name})
		if len(r.Exits) > 0 {
			lines = append(lines, Line{Kind: LineExit, Text: "  -> " + strings.Join(r.Exits, ", ")})
		}
		for _, loc := range r.Locations {
			text := "  " + loc.Name
			if loc.Requires != "" {
				text += "  [" + loc.Requires + "]"
			}
			lines = append(lines, Line{Kind: LineLocation, Text: text})
			if loc.Item != "" {
				class := world.ParseClassification(loc.Class)
				lines = append(lines, Line{
					Kind:  LineItem,
					Text:  fmt.Sprintf("    %c %s", class.Rune(), loc.Item),
					Class: class.String(),
				})
			}
		}
	}
	return lines
}
