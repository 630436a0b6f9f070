package hooks

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/skymanual/internal/gamedata"
	"github.com/samdwyer/skymanual/internal/options"
	"github.com/samdwyer/skymanual/internal/world"
)

func testTable() *options.Table {
	return options.NewTable().Add(
		options.Toggle("characters_as_items", "", "", true),
		options.Toggle("challenges_as_locations", "", "", false),
		options.Range("element_lock_trap_weight", "", "", 0, 100, 35),
		options.Range("rename_skylander_trap_weight", "", "", 0, 100, 20),
		options.Range("solo_trap_weight", "", "", 0, 100, 15),
		options.Range("heavy_hitter_trap_weight", "", "", 0, 100, 20),
		options.Range("reset_last_skylander_trap_weight", "", "", 0, 100, 10),
	)
}

// newContext builds a Swap Force world for player 1 with every enabled
// non-filler item in the pool.
func newContext(t *testing.T, raw map[string]any) *Context {
	t.Helper()

	tables := gamedata.MustLoadTables("swapforce")
	values, err := options.Resolve(testTable(), raw, mapset.New[string]())
	require.NoError(t, err)

	mw := world.NewMultiworld(1)
	w := mw.AddWorld(1, "Player1", tables)
	require.NoError(t, mw.CreateRegions(context.Background(), 1, values))

	for i := range tables.Items {
		def := &tables.Items[i]
		if def.Trap || def.Filler || !tables.ItemEnabled(def.Name, values) {
			continue
		}
		for range def.Copies() {
			w.Pool = append(w.Pool, world.NewItem(def, 1))
		}
	}

	return &Context{
		World:      w,
		Multiworld: mw,
		Player:     1,
		Options:    values,
		RNG:        rand.New(rand.NewSource(42)),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		CreateItem: w.CreateItem,
	}
}

func countNamed(pool []*world.Item, name string) int {
	n := 0
	for _, it := range pool {
		if it.Name == name {
			n++
		}
	}
	return n
}

func characters(pool []*world.Item) []string {
	var names []string
	for _, it := range pool {
		if it.HasCategory(CategoryCharacter) {
			names = append(names, it.Name)
		}
	}
	slices.Sort(names)
	return names
}

func TestFilterCharactersBlacklist(t *testing.T) {
	c := newContext(t, nil)
	extra, err := c.World.CreateItem("Boom Jet")
	require.NoError(t, err)
	pool := append(c.World.Pool, extra)
	before := len(pool)

	pool, removed, err := FilterCharacters(c, pool, CharacterFilter{
		Enabled: true,
		Names:   []string{"Boom Jet", "Scratch"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Boom Jet", "Scratch"}, removed)
	assert.Len(t, pool, before-2)
	assert.Equal(t, 1, countNamed(pool, "Boom Jet"), "only one copy per name is removed")
	assert.Equal(t, 0, countNamed(pool, "Scratch"))
}

func TestFilterCharactersWhitelist(t *testing.T) {
	c := newContext(t, nil)
	keep := []string{"Boom Jet", "Scratch", "Doom Stone", "Scorp", "Blast Zone", "Fire Kraken", "Pop Thorn", "Slobber Tooth"}

	pool, _, err := FilterCharacters(c, c.World.Pool, CharacterFilter{
		Enabled:   true,
		Names:     keep,
		Whitelist: true,
	})
	require.NoError(t, err)

	want := slices.Clone(keep)
	slices.Sort(want)
	assert.Equal(t, want, characters(pool))
}

func TestFilterCharactersWhitelistTooSmall(t *testing.T) {
	c := newContext(t, nil)
	_, _, err := FilterCharacters(c, c.World.Pool, CharacterFilter{
		Enabled:   true,
		Names:     []string{"Boom Jet", "Boom Jet", "Scratch", "Scorp", "Blast Zone", "Fire Kraken", "Pop Thorn", "Doom Stone"},
		Whitelist: true,
	})
	assert.ErrorIs(t, err, ErrWhitelistTooSmall)
}

func TestFilterCharactersMissingItem(t *testing.T) {
	c := newContext(t, nil)
	pool := slices.DeleteFunc(slices.Clone(c.World.Pool), func(it *world.Item) bool { return it.Name == "Scratch" })

	_, _, err := FilterCharacters(c, pool, CharacterFilter{Enabled: true, Names: []string{"Scratch"}})
	assert.ErrorIs(t, err, ErrItemNotInPool)
}

func TestFilterCharactersRemovesChallenges(t *testing.T) {
	c := newContext(t, map[string]any{"challenges_as_locations": true})
	_, err := c.World.Location("Heroic Challenge - Scratch")
	require.NoError(t, err)

	_, _, err = FilterCharacters(c, c.World.Pool, CharacterFilter{
		Enabled:    true,
		Names:      []string{"Scratch"},
		Challenges: true,
	})
	require.NoError(t, err)

	_, err = c.World.Location("Heroic Challenge - Scratch")
	assert.ErrorIs(t, err, world.ErrLocationNotFound)
	_, err = c.World.Location("Heroic Challenge - Boom Jet")
	assert.NoError(t, err)
}

func TestFilterCharactersDisabled(t *testing.T) {
	c := newContext(t, nil)
	pool, removed, err := FilterCharacters(c, c.World.Pool, CharacterFilter{Names: []string{"Scratch"}})
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.Len(t, pool, len(c.World.Pool))
}

func TestTrapWeightKey(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"Element Lock Trap", "element_lock_trap_weight"},
		{"Reset Last Skylander Trap", "reset_last_skylander_trap_weight"},
		{"Solo Trap", "solo_trap_weight"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TrapWeightKey(tt.name))
	}
}

func TestSplitDeficit(t *testing.T) {
	traps, filler := SplitDeficit(4, 50)
	assert.Equal(t, 2, traps)
	assert.Equal(t, 2, filler)

	for deficit := 0; deficit < 40; deficit++ {
		for pct := 0; pct <= 100; pct += 7 {
			traps, filler := SplitDeficit(deficit, pct)
			assert.Equal(t, deficit, traps+filler)
			assert.Equal(t, deficit*pct/100, traps)
		}
	}
}

func TestFillPool(t *testing.T) {
	c := newContext(t, nil)
	unfilled := len(c.World.UnfilledLocations())
	pool := make([]*world.Item, unfilled-4)
	for i := range pool {
		pool[i] = &world.Item{Name: "Placeholder"}
	}

	pool, stats, err := FillPool(c, pool, 50)
	require.NoError(t, err)

	assert.Equal(t, FillStats{Deficit: 4, Traps: 2, Filler: 2}, stats)
	assert.Len(t, pool, unfilled)

	added := pool[unfilled-4:]
	traps := 0
	for _, it := range added {
		if it.Class == world.ClassTrap {
			traps++
		}
	}
	assert.Equal(t, 2, traps)
}

func TestFillPoolZeroWeights(t *testing.T) {
	c := newContext(t, map[string]any{
		"element_lock_trap_weight":         0,
		"rename_skylander_trap_weight":     0,
		"solo_trap_weight":                 0,
		"heavy_hitter_trap_weight":         0,
		"reset_last_skylander_trap_weight": 0,
	})

	pool, stats, err := FillPool(c, nil, 100)
	require.NoError(t, err)
	assert.True(t, stats.ZeroWeights)
	assert.Equal(t, stats.Deficit, stats.Traps)
	for _, it := range pool {
		assert.Equal(t, "Reset Last Skylander Trap", it.Name)
	}
}

func TestFillPoolNoDeficit(t *testing.T) {
	c := newContext(t, nil)
	pool := make([]*world.Item, len(c.World.UnfilledLocations())+3)

	out, stats, err := FillPool(c, pool, 50)
	require.NoError(t, err)
	assert.Equal(t, -3, stats.Deficit)
	assert.Len(t, out, len(pool))
}

func TestFillPoolReproducible(t *testing.T) {
	a, b := newContext(t, nil), newContext(t, nil)
	poolA, _, err := FillPool(a, nil, 35)
	require.NoError(t, err)
	poolB, _, err := FillPool(b, nil, 35)
	require.NoError(t, err)

	require.Len(t, poolB, len(poolA))
	for i := range poolA {
		assert.Equal(t, poolA[i].Name, poolB[i].Name)
	}
}

func TestRewireHub(t *testing.T) {
	c := newContext(t, nil)

	chapters, err := RewireHub(c.World)
	require.NoError(t, err)
	assert.Len(t, chapters, 20) // 16 story chapters plus 4 bonus chapters

	hub, err := c.World.Region(HubRegion)
	require.NoError(t, err)
	assert.Equal(t, chapters, hub.Exits)

	start, err := c.World.Region(world.StartRegion)
	require.NoError(t, err)
	assert.Equal(t, []string{HubRegion}, start.Exits)

	for _, name := range chapters {
		r, err := c.World.Region(name)
		require.NoError(t, err)
		assert.Empty(t, r.Exits, name)
	}
}

func TestKeepGoal(t *testing.T) {
	c := newContext(t, nil)
	removed := KeepGoal(c.World, 0)
	assert.Equal(t, []string{"All Levels Perfected"}, removed)

	_, err := c.World.Location("Defeat Kaos")
	assert.NoError(t, err)
	_, err = c.World.Location("All Levels Perfected")
	assert.ErrorIs(t, err, world.ErrLocationNotFound)
}

func TestPlaceInCategory(t *testing.T) {
	c := newContext(t, nil)
	pool := slices.Clone(c.World.Pool)
	require.Equal(t, 20, countNamed(pool, "Map of Arkus Fragment"))

	pool, placed, err := PlaceInCategory(c, pool, "Map of Arkus Fragment", CategoryLevelCompletion, 4)
	require.NoError(t, err)
	assert.Equal(t, 16, placed)
	assert.Equal(t, 0, countNamed(pool, "Map of Arkus Fragment"))

	loc, err := c.World.Location("Mudwater Hollow - Complete")
	require.NoError(t, err)
	require.NotNil(t, loc.Item)
	assert.True(t, loc.Locked)
	assert.Equal(t, "Map of Arkus Fragment", loc.Item.Name)
}

func TestPlaceInCategoryShortPool(t *testing.T) {
	c := newContext(t, nil)
	pool := slices.DeleteFunc(slices.Clone(c.World.Pool), func(it *world.Item) bool {
		return it.Name == "Map of Arkus Fragment"
	})
	_, _, err := PlaceInCategory(c, pool, "Map of Arkus Fragment", CategoryLevelCompletion, 0)
	assert.ErrorIs(t, err, ErrItemNotInPool)
}

func TestBaseIsIdentity(t *testing.T) {
	var h Hooks = Base{}
	table := options.NewTable()
	assert.Same(t, table, h.BeforeOptionsDefined(table))

	name, ok := h.FillerItemName(nil)
	assert.False(t, ok)
	assert.Empty(t, name)

	data := SlotData{"a": 1}
	assert.Equal(t, data, h.AfterFillSlotData(nil, data))
}
