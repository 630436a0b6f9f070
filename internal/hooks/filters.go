package hooks

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/text/cases"

	"github.com/samdwyer/skymanual/internal/gamedata"
	"github.com/samdwyer/skymanual/internal/world"
)

// Category and region names the shared filters act on.
const (
	CategoryCharacter       = "Skylander"
	CategoryLevelCompletion = "Level Completion"
	HubRegion               = "Hub"
	chapterMarker           = "Chapter"
	challengePrefix         = "Heroic Challenge - "
)

// =============================================================================
// Character filter
// =============================================================================

// CharacterFilter configures FilterCharacters.
type CharacterFilter struct {
	// Enabled is characters_as_items; nothing is filtered when false.
	Enabled bool
	// Names is characters_to_exclude, or the whitelist when Whitelist is set.
	Names []string
	// Whitelist inverts the meaning of Names.
	Whitelist bool
	// Challenges also removes the removed characters' challenge locations.
	Challenges bool
}

// FilterCharacters removes one pool copy of every enabled character for which
// whitelist XOR listed holds. Returns the pool and the removed names.
func FilterCharacters(c *Context, pool []*world.Item, f CharacterFilter) ([]*world.Item, []string, error) {
	if !f.Enabled {
		return pool, nil, nil
	}

	listed := mapset.New[string]()
	for _, n := range f.Names {
		listed.Put(n)
	}
	if f.Whitelist && listed.Size() < MinWhitelistSize {
		return nil, nil, fmt.Errorf("%w (got %d)", ErrWhitelistTooSmall, listed.Size())
	}

	var remove, challenges []string
	tables := c.World.Tables
	for i := range tables.Items {
		def := &tables.Items[i]
		if !def.HasCategory(CategoryCharacter) || !tables.ItemEnabled(def.Name, c.Options) {
			continue
		}
		if f.Whitelist != listed.Has(def.Name) {
			remove = append(remove, def.Name)
			if f.Challenges {
				challenges = append(challenges, challengePrefix+def.Name)
			}
		}
	}

	if f.Challenges && len(challenges) > 0 {
		n := c.World.RemoveLocations(challenges...)
		c.Logger.Debug("removed challenge locations", "count", n)
	}

	for _, name := range remove {
		var err error
		pool, err = removeOne(pool, name)
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Debug("removed character from pool", "item", name)
	}
	return pool, remove, nil
}

// removeOne removes the first copy of name from pool.
func removeOne(pool []*world.Item, name string) ([]*world.Item, error) {
	i := slices.IndexFunc(pool, func(it *world.Item) bool { return it.Name == name })
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrItemNotInPool, name)
	}
	return slices.Delete(pool, i, i+1), nil
}

// =============================================================================
// Filler and trap generation
// =============================================================================

// TrapWeightKey returns the option key holding a trap's weight:
// casefolded name, spaces replaced by underscores, "_weight" appended.
func TrapWeightKey(trap string) string {
	return strings.ReplaceAll(cases.Fold().String(trap), " ", "_") + "_weight"
}

// FillStats reports what FillPool added.
type FillStats struct {
	Deficit int
	Traps   int
	Filler  int
	// ZeroWeights is set when every trap weight was zero.
	ZeroWeights bool
}

// SplitDeficit divides a deficit into trap and filler counts.
func SplitDeficit(deficit, trapPercent int) (traps, filler int) {
	traps = deficit * trapPercent / 100
	return traps, deficit - traps
}

// FillPool pads the pool up to the number of unfilled locations. trapPercent
// of the padding, floored, are traps drawn by weight; the rest is filler
// drawn uniformly.
func FillPool(c *Context, pool []*world.Item, trapPercent int) ([]*world.Item, FillStats, error) {
	deficit := len(c.World.UnfilledLocations()) - len(pool)
	stats := FillStats{Deficit: deficit}
	if deficit <= 0 {
		return pool, stats, nil
	}

	tables := c.World.Tables
	trapNames := tables.TrapNames()
	if len(trapNames) == 0 {
		trapPercent = 0
	}
	stats.Traps, stats.Filler = SplitDeficit(deficit, trapPercent)

	if len(trapNames) > 0 {
		weights := make([]gamedata.WeightedName, len(trapNames))
		for i, name := range trapNames {
			weights[i] = gamedata.WeightedName{Name: name, Weight: c.Options.Int(TrapWeightKey(name))}
		}
		traps := gamedata.NewTrapRegistry(weights)
		if traps.FellBack() {
			stats.ZeroWeights = true
			c.Warn(c.World.Name+" set every trap weight to 0; only "+trapNames[len(trapNames)-1]+" will be used",
				"name", c.World.Name)
		}
		for range stats.Traps {
			item, err := c.CreateItem(traps.Pick(c.RNG))
			if err != nil {
				return nil, stats, err
			}
			pool = append(pool, item)
		}
	}

	fillerNames := tables.FillerNames()
	if len(fillerNames) == 0 {
		fillerNames = []string{tables.Game.FillerItemName}
	}
	filler := gamedata.NewFillerRegistry(fillerNames)
	for range stats.Filler {
		item, err := c.CreateItem(filler.Pick(c.RNG))
		if err != nil {
			return nil, stats, err
		}
		pool = append(pool, item)
	}

	c.Logger.Debug("filled item pool",
		"deficit", stats.Deficit, "traps", stats.Traps, "filler", stats.Filler)
	return pool, stats, nil
}

// =============================================================================
// Region graph
// =============================================================================

// RewireHub makes the hub the only way into chapters: every region whose name
// contains "Chapter" loses its exits, the start region leads only to the hub,
// and the hub leads to exactly the chapter regions. Returns the chapter names.
func RewireHub(w *world.World) ([]string, error) {
	start, err := w.Region(world.StartRegion)
	if err != nil {
		return nil, err
	}
	hub, err := w.Region(HubRegion)
	if err != nil {
		return nil, err
	}

	var chapters []string
	for _, r := range w.Regions {
		if strings.Contains(r.Name, chapterMarker) {
			r.SetExits(nil)
			chapters = append(chapters, r.Name)
		}
	}
	start.SetExits([]string{HubRegion})
	hub.SetExits(chapters)
	return chapters, nil
}

// KeepGoal removes every victory location except the goal-th one, in table
// order. Returns the removed names.
func KeepGoal(w *world.World, goal int) []string {
	var removed []string
	for i, def := range w.Tables.VictoryLocations() {
		if i != goal {
			removed = append(removed, def.Name)
		}
	}
	w.RemoveLocations(removed...)
	return removed
}

// =============================================================================
// Locked placement
// =============================================================================

// PlaceInCategory removes extra copies of item from the pool, then locks one
// copy into every enabled location of the category. Returns the pool and the
// number of locations filled.
func PlaceInCategory(c *Context, pool []*world.Item, item, category string, extra int) ([]*world.Item, int, error) {
	var err error
	for range max(extra, 0) {
		if pool, err = removeOne(pool, item); err != nil {
			return nil, 0, err
		}
	}

	placed := 0
	tables := c.World.Tables
	for i := range tables.Locations {
		def := &tables.Locations[i]
		if !def.HasCategory(category) || !tables.LocationEnabled(def.Name, c.Options) {
			continue
		}
		loc, err := c.World.Location(def.Name)
		if err != nil {
			return nil, placed, err
		}
		idx := slices.IndexFunc(pool, func(it *world.Item) bool { return it.Name == item })
		if idx < 0 {
			return nil, placed, fmt.Errorf("%w: %q for %q", ErrItemNotInPool, item, def.Name)
		}
		loc.PlaceLockedItem(pool[idx])
		pool = slices.Delete(pool, idx, idx+1)
		placed++
	}
	return pool, placed, nil
}
