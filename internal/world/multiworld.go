package world

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/skymanual/internal/gamedata"
	"github.com/samdwyer/skymanual/internal/telemetry"
)

// StartRegion is the implicit region every player begins in. Its exits are
// the table's starting regions.
const StartRegion = "Manual"

var (
	// ErrRegionNotFound is returned when a region name is unknown for a player.
	ErrRegionNotFound = errors.New("region not found")
	// ErrLocationNotFound is returned when a location name is unknown for a player.
	ErrLocationNotFound = errors.New("location not found")
	// ErrItemNotFound is returned when an item name is not in the game's tables.
	ErrItemNotFound = errors.New("item not found")
	// ErrPlayerNotFound is returned for a player number with no world.
	ErrPlayerNotFound = errors.New("player not found")
)

// World is one player's slot: its game tables, regions and item pool.
type World struct {
	Player int
	Name   string
	Tables *gamedata.Tables

	Regions []*Region
	Pool    []*Item

	// ItemCounts is the pool's item count by name, recorded once the pool is final.
	ItemCounts map[string]int
	// ItemNameGroups maps each category to the enabled item names carrying it.
	ItemNameGroups map[string][]string

	regionIndex map[string]*Region
}

// Game returns the game name.
func (w *World) Game() string {
	return w.Tables.Game.Game
}

// Region returns the named region.
func (w *World) Region(name string) (*Region, error) {
	r, ok := w.regionIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q for player %d", ErrRegionNotFound, name, w.Player)
	}
	return r, nil
}

// Location returns the named location from any region.
func (w *World) Location(name string) (*Location, error) {
	for _, r := range w.Regions {
		if l := r.Location(name); l != nil {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %q for player %d", ErrLocationNotFound, name, w.Player)
}

// Locations returns every location in region order.
func (w *World) Locations() []*Location {
	var out []*Location
	for _, r := range w.Regions {
		out = append(out, r.Locations...)
	}
	return out
}

// UnfilledLocations returns the locations the fill would still place items in.
// Victory locations are excluded; they receive the victory event.
func (w *World) UnfilledLocations() []*Location {
	var out []*Location
	for _, l := range w.Locations() {
		if !l.Filled() && !l.Victory {
			out = append(out, l)
		}
	}
	return out
}

// RemoveLocations removes every named location and returns how many were removed.
// Names that are not present are ignored.
func (w *World) RemoveLocations(names ...string) int {
	removed := 0
	for _, name := range names {
		for _, r := range w.Regions {
			if r.RemoveLocation(name) {
				removed++
				break
			}
		}
	}
	return removed
}

// CreateItem creates one copy of the named item.
func (w *World) CreateItem(name string) (*Item, error) {
	def, ok := w.Tables.Item(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrItemNotFound, name, w.Game())
	}
	return NewItem(def, w.Player), nil
}

// RecordItemCounts snapshots the pool into ItemCounts. Locked items placed
// from the pool still count.
func (w *World) RecordItemCounts() {
	counts := make(map[string]int)
	for _, it := range w.Pool {
		counts[it.Name]++
	}
	for _, l := range w.Locations() {
		if l.Locked && l.Item != nil && !l.Item.IsEvent() {
			counts[l.Item.Name]++
		}
	}
	w.ItemCounts = counts
}

// Multiworld holds every player's world for one generation.
type Multiworld struct {
	Seed   int64
	worlds map[int]*World
	order  []int
}

// NewMultiworld creates an empty multiworld.
func NewMultiworld(seed int64) *Multiworld {
	return &Multiworld{
		Seed:   seed,
		worlds: make(map[int]*World),
	}
}

// AddWorld registers a player's world. Players are numbered from 1.
func (m *Multiworld) AddWorld(player int, name string, tables *gamedata.Tables) *World {
	w := &World{
		Player:      player,
		Name:        name,
		Tables:      tables,
		regionIndex: make(map[string]*Region),
	}
	if _, exists := m.worlds[player]; !exists {
		m.order = append(m.order, player)
	}
	m.worlds[player] = w
	return w
}

// World returns the world of a player.
func (m *Multiworld) World(player int) (*World, error) {
	w, ok := m.worlds[player]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPlayerNotFound, player)
	}
	return w, nil
}

// Players returns player numbers in registration order.
func (m *Multiworld) Players() []int {
	return slices.Clone(m.order)
}

// GetRegion returns a player's region by name.
func (m *Multiworld) GetRegion(name string, player int) (*Region, error) {
	w, err := m.World(player)
	if err != nil {
		return nil, err
	}
	return w.Region(name)
}

// GetLocation returns a player's location by name.
func (m *Multiworld) GetLocation(name string, player int) (*Location, error) {
	w, err := m.World(player)
	if err != nil {
		return nil, err
	}
	return w.Location(name)
}

// Regions returns every region of a player.
func (m *Multiworld) Regions(player int) []*Region {
	w, ok := m.worlds[player]
	if !ok {
		return nil
	}
	return w.Regions
}

// UnfilledLocations returns a player's unfilled, non-victory locations.
func (m *Multiworld) UnfilledLocations(player int) []*Location {
	w, ok := m.worlds[player]
	if !ok {
		return nil
	}
	return w.UnfilledLocations()
}

// CreateRegions builds a player's region graph from the tables. The start
// region connects to every starting region; only locations whose categories
// are enabled by opts are created.
func (m *Multiworld) CreateRegions(ctx context.Context, player int, opts gamedata.OptionSource) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "multiworld.create_regions")
	defer span.End()

	startTime := time.Now()

	w, err := m.World(player)
	if err != nil {
		return err
	}

	start := &Region{Name: StartRegion, Player: player}
	w.Regions = []*Region{start}
	w.regionIndex = map[string]*Region{StartRegion: start}

	for _, def := range w.Tables.Regions {
		r := &Region{
			Name:     def.Name,
			Player:   player,
			Requires: def.Requires,
			Exits:    slices.Clone(def.ConnectsTo),
		}
		w.Regions = append(w.Regions, r)
		w.regionIndex[r.Name] = r
		if def.Starting {
			start.AddExits(def.Name)
		}
	}

	locationCount := 0
	for i := range w.Tables.Locations {
		def := &w.Tables.Locations[i]
		if !w.Tables.LocationEnabled(def.Name, opts) {
			continue
		}
		r, err := w.Region(def.Region)
		if err != nil {
			return err
		}
		r.Locations = append(r.Locations, &Location{
			Name:       def.Name,
			Player:     player,
			Address:    def.ID,
			Region:     def.Region,
			Categories: slices.Clone(def.Category),
			Requires:   def.Requires,
			Victory:    def.Victory,
		})
		locationCount++
	}

	w.ItemNameGroups = buildItemNameGroups(w.Tables, opts)

	span.SetAttributes(
		attribute.Int("world.player", player),
		attribute.String("world.game", w.Game()),
		attribute.Int("world.region_count", len(w.Regions)),
		attribute.Int("world.location_count", locationCount),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// buildItemNameGroups maps each category to the enabled items in it, in table order.
func buildItemNameGroups(t *gamedata.Tables, opts gamedata.OptionSource) map[string][]string {
	groups := make(map[string][]string)
	for i := range t.Items {
		def := &t.Items[i]
		if !t.ItemEnabled(def.Name, opts) {
			continue
		}
		for _, c := range def.Category {
			groups[c] = append(groups[c], def.Name)
		}
	}
	return groups
}
