package gamedata

import (
	"errors"
	"math/rand"
	"testing"
	"testing/fstest"
)

type fakeOptions map[string]int

func (f fakeOptions) Int(key string) int { return f[key] }

func TestLoadTables(t *testing.T) {
	tests := []struct {
		dir         string
		game        string
		itemKinds   int
		locations   int
		regions     int
		trapKinds   int
		fillerKinds int
	}{
		{"swapforce", "Skylanders Swap Force", 60, 120, 21, 5, 3},
		{"giants", "Skylanders Giants", 44, 58, 13, 4, 3},
	}

	for _, tt := range tests {
		tables, err := LoadTables(tt.dir)
		if err != nil {
			t.Fatalf("LoadTables(%q) failed: %v", tt.dir, err)
		}
		if tables.Game.Game != tt.game {
			t.Errorf("%s: game = %q, want %q", tt.dir, tables.Game.Game, tt.game)
		}
		if len(tables.Items) != tt.itemKinds {
			t.Errorf("%s: expected %d item kinds, got %d", tt.dir, tt.itemKinds, len(tables.Items))
		}
		if len(tables.Locations) != tt.locations {
			t.Errorf("%s: expected %d locations, got %d", tt.dir, tt.locations, len(tables.Locations))
		}
		if len(tables.Regions) != tt.regions {
			t.Errorf("%s: expected %d regions, got %d", tt.dir, tt.regions, len(tables.Regions))
		}
		if got := len(tables.TrapNames()); got != tt.trapKinds {
			t.Errorf("%s: expected %d traps, got %d", tt.dir, tt.trapKinds, got)
		}
		if got := len(tables.FillerNames()); got != tt.fillerKinds {
			t.Errorf("%s: expected %d filler items, got %d", tt.dir, tt.fillerKinds, got)
		}
		if len(tables.VictoryLocations()) != 2 {
			t.Errorf("%s: expected 2 victory locations, got %d", tt.dir, len(tables.VictoryLocations()))
		}
	}
}

func TestTableIDs(t *testing.T) {
	tables := MustLoadTables("swapforce")

	first, ok := tables.Item(tables.Items[0].Name)
	if !ok {
		t.Fatal("first item not found by name")
	}
	if first.ID != tables.Game.BaseID+1 {
		t.Errorf("first item ID = %d, want %d", first.ID, tables.Game.BaseID+1)
	}

	loc, ok := tables.Location("Defeat Kaos")
	if !ok {
		t.Fatal("Defeat Kaos not found")
	}
	if loc.ID <= tables.Game.BaseID+LocationIDOffset {
		t.Errorf("location ID %d should be above the location offset", loc.ID)
	}
}

func TestCategoryGates(t *testing.T) {
	tables := MustLoadTables("swapforce")

	withChars := fakeOptions{"characters_as_items": 1}
	without := fakeOptions{}

	if !tables.ItemEnabled("Boom Jet", withChars) {
		t.Error("Boom Jet should be enabled when characters_as_items is on")
	}
	if tables.ItemEnabled("Boom Jet", without) {
		t.Error("Boom Jet should be disabled when characters_as_items is off")
	}
	if tables.ItemEnabled("Air Skylanders", withChars) {
		t.Error("element unlocks should be disabled when characters_as_items is on")
	}
	if !tables.ItemEnabled("Air Skylanders", without) {
		t.Error("element unlocks should be enabled when characters_as_items is off")
	}
	if tables.ItemEnabled("No Such Item", withChars) {
		t.Error("unknown items must never be enabled")
	}

	// Ungated categories are always enabled.
	if !tables.LocationEnabled("Mudwater Hollow - Complete", without) {
		t.Error("chapter completion should always be enabled")
	}
	if tables.LocationEnabled("Empire of Ice - Complete", without) {
		t.Error("pack level should be disabled without include_empire")
	}
	if !tables.LocationEnabled("Empire of Ice - Complete", fakeOptions{"include_empire": 1}) {
		t.Error("pack level should be enabled with include_empire")
	}
}

func TestLoadTablesRejectsBadReferences(t *testing.T) {
	fsys := fstest.MapFS{
		GameFile:       {Data: []byte(`{"game":"Test","base_id":100}`)},
		ItemsFile:      {Data: []byte(`{"items":[{"name":"A"}]}`)},
		LocationsFile:  {Data: []byte(`{"locations":[{"name":"L","region":"Nowhere"}]}`)},
		RegionsFile:    {Data: []byte(`{"regions":[{"name":"Hub","starting":true,"connects_to":[]}]}`)},
		CategoriesFile: {Data: []byte(`{"categories":{}}`)},
	}

	_, err := LoadTablesFS(fsys)
	if !errors.Is(err, ErrInvalidTables) {
		t.Errorf("LoadTablesFS() error = %v, want ErrInvalidTables", err)
	}
}

func TestTrapRegistry(t *testing.T) {
	registry := NewTrapRegistry([]WeightedName{
		{"Element Lock Trap", 35},
		{"Solo Trap", 15},
		{"Reset Last Skylander Trap", 10},
	})

	if registry.Count() != 3 {
		t.Errorf("Expected 3 trap kinds, got %d", registry.Count())
	}
	if registry.FellBack() {
		t.Error("non-zero weights should not fall back")
	}

	// Test weighted picking is deterministic with same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 20; i++ {
		a, b := registry.Pick(rng1), registry.Pick(rng2)
		if a != b {
			t.Errorf("Pick %d mismatch: %s != %s", i, a, b)
		}
	}
}

func TestTrapRegistryZeroWeights(t *testing.T) {
	registry := NewTrapRegistry([]WeightedName{
		{"Element Lock Trap", 0},
		{"Solo Trap", 0},
		{"Reset Last Skylander Trap", 0},
	})

	if !registry.FellBack() {
		t.Fatal("all-zero weights should fall back")
	}

	weights := registry.Weights()
	for i, w := range weights[:len(weights)-1] {
		if w.Weight != 0 {
			t.Errorf("weight %d = %d, want 0", i, w.Weight)
		}
	}
	if weights[len(weights)-1].Weight != 1 {
		t.Errorf("last weight = %d, want 1", weights[len(weights)-1].Weight)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		if got := registry.Pick(rng); got != "Reset Last Skylander Trap" {
			t.Fatalf("Pick() = %q, want only the last trap", got)
		}
	}
}

func TestTrapRegistryOnlyPicksWeighted(t *testing.T) {
	registry := NewTrapRegistry([]WeightedName{
		{"Element Lock Trap", 0},
		{"Solo Trap", 5},
		{"Heavy Hitter Trap", -3},
	})

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		if got := registry.Pick(rng); got != "Solo Trap" {
			t.Fatalf("Pick() = %q, want Solo Trap", got)
		}
	}
}

func TestEmptyRegistries(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := NewTrapRegistry(nil).Pick(rng); got != "" {
		t.Errorf("empty trap registry Pick() = %q, want empty", got)
	}
	if got := NewFillerRegistry(nil).Pick(rng); got != "" {
		t.Errorf("empty filler registry Pick() = %q, want empty", got)
	}
}

func TestFillerRegistry(t *testing.T) {
	names := []string{"Pile of Gold", "Treasure Chest", "Experience Orb"}
	registry := NewFillerRegistry(names)

	seen := make(map[string]bool)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		seen[registry.Pick(rng)] = true
	}
	for _, n := range names {
		if !seen[n] {
			t.Errorf("filler %q never picked in 200 draws", n)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#AF99EF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestClassColor(t *testing.T) {
	tables := MustLoadTables("giants")
	if tables.Game.ClassColor("trap") == 0 {
		t.Error("ClassColor(trap) returned zero color")
	}
	if tables.Game.ClassColor("unknown") != 0 {
		t.Error("ClassColor(unknown) should return the default color")
	}
}
