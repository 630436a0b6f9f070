package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

// =============================================================================
// Table Design
// =============================================================================
//
// Every game is described by five JSON tables in its own directory under
// data/. The tables are plain data; all behaviour lives in code.
//
//   game.json        Game name, creator, default filler item, base ID, and the
//                    classification colours used by the spoiler viewer.
//   items.json       Every item kind with its copy count, categories and
//                    classification flags (progression, useful, trap, filler).
//   locations.json   Every check with its region, categories and a requires
//                    string. Victory locations carry "victory": true.
//   regions.json     The region graph. Starting regions are connected from
//                    the implicit "Manual" start region.
//   categories.json  Option gates. A category listing "opt" is enabled when
//                    the option is non-zero; "!opt" when it is zero.
//
// IDs are not stored in the tables. Items are numbered from base_id in table
// order and locations from base_id+LocationIDOffset, so reordering a table
// changes IDs, which is fine for a generator that never talks to a server.
//
// =============================================================================

// LocationIDOffset separates location IDs from item IDs within a game's range.
const LocationIDOffset = 10000

// Table file names within a game directory.
const (
	GameFile       = "game.json"
	ItemsFile      = "items.json"
	LocationsFile  = "locations.json"
	RegionsFile    = "regions.json"
	CategoriesFile = "categories.json"
)

// ErrInvalidTables is returned when the tables reference names that do not exist.
var ErrInvalidTables = errors.New("invalid game tables")

// OptionSource resolves option values by key. Missing keys read as zero.
type OptionSource interface {
	Int(key string) int
}

// GameDef is the game-level metadata from game.json.
type GameDef struct {
	Game           string            `json:"game"`
	Creator        string            `json:"creator"`
	FillerItemName string            `json:"filler_item_name"`
	BaseID         int64             `json:"base_id"`
	Colors         map[string]string `json:"colors,omitempty"`
}

// ItemDef describes one item kind.
type ItemDef struct {
	Name        string   `json:"name"`
	Count       int      `json:"count,omitempty"`
	Category    []string `json:"category,omitempty"`
	Progression bool     `json:"progression,omitempty"`
	Useful      bool     `json:"useful,omitempty"`
	Trap        bool     `json:"trap,omitempty"`
	Filler      bool     `json:"filler,omitempty"`

	ID int64 `json:"-"`
}

// Copies returns how many copies of the item go into the pool.
func (d *ItemDef) Copies() int {
	if d.Count <= 0 {
		return 1
	}
	return d.Count
}

// HasCategory reports whether the item belongs to the category.
func (d *ItemDef) HasCategory(category string) bool {
	return slices.Contains(d.Category, category)
}

// LocationDef describes one location.
type LocationDef struct {
	Name     string   `json:"name"`
	Region   string   `json:"region"`
	Category []string `json:"category,omitempty"`
	Requires string   `json:"requires,omitempty"`
	Victory  bool     `json:"victory,omitempty"`

	ID int64 `json:"-"`
}

// HasCategory reports whether the location belongs to the category.
func (d *LocationDef) HasCategory(category string) bool {
	return slices.Contains(d.Category, category)
}

// RegionDef describes one region and its outgoing connections.
type RegionDef struct {
	Name       string   `json:"name"`
	ConnectsTo []string `json:"connects_to"`
	Starting   bool     `json:"starting,omitempty"`
	Requires   string   `json:"requires,omitempty"`
}

// CategoryDef gates a category on option values.
type CategoryDef struct {
	YAMLOption []string `json:"yaml_option,omitempty"`
}

// Tables holds every table of one game.
type Tables struct {
	Game       GameDef
	Items      []ItemDef
	Locations  []LocationDef
	Regions    []RegionDef
	Categories map[string]CategoryDef

	itemsByName     map[string]*ItemDef
	locationsByName map[string]*LocationDef
}

// LoadTables loads a game's tables from the embedded data directory.
func LoadTables(dir string) (*Tables, error) {
	fsys, err := gameFS(dir)
	if err != nil {
		return nil, err
	}
	return LoadTablesFS(fsys)
}

// MustLoadTables loads a game's tables, panicking on error.
func MustLoadTables(dir string) *Tables {
	t, err := LoadTables(dir)
	if err != nil {
		panic(err)
	}
	return t
}

// LoadTablesFS loads tables from the root of fsys.
func LoadTablesFS(fsys fs.FS) (*Tables, error) {
	game, err := Load[GameDef](fsys, GameFile)
	if err != nil {
		return nil, err
	}
	items, err := Load[struct {
		Items []ItemDef `json:"items"`
	}](fsys, ItemsFile)
	if err != nil {
		return nil, err
	}
	locations, err := Load[struct {
		Locations []LocationDef `json:"locations"`
	}](fsys, LocationsFile)
	if err != nil {
		return nil, err
	}
	regions, err := Load[struct {
		Regions []RegionDef `json:"regions"`
	}](fsys, RegionsFile)
	if err != nil {
		return nil, err
	}
	categories, err := Load[struct {
		Categories map[string]CategoryDef `json:"categories"`
	}](fsys, CategoriesFile)
	if err != nil {
		return nil, err
	}

	t := &Tables{
		Game:       game,
		Items:      items.Items,
		Locations:  locations.Locations,
		Regions:    regions.Regions,
		Categories: categories.Categories,
	}
	if t.Categories == nil {
		t.Categories = make(map[string]CategoryDef)
	}
	if err := t.index(); err != nil {
		return nil, err
	}
	return t, nil
}

// index assigns IDs, builds the name lookups and checks cross references.
func (t *Tables) index() error {
	t.itemsByName = make(map[string]*ItemDef, len(t.Items))
	for i := range t.Items {
		item := &t.Items[i]
		if _, dup := t.itemsByName[item.Name]; dup {
			return fmt.Errorf("%w: duplicate item %q", ErrInvalidTables, item.Name)
		}
		item.ID = t.Game.BaseID + int64(i) + 1
		t.itemsByName[item.Name] = item
	}

	regions := make(map[string]bool, len(t.Regions))
	for _, r := range t.Regions {
		regions[r.Name] = true
	}
	for _, r := range t.Regions {
		for _, exit := range r.ConnectsTo {
			if !regions[exit] {
				return fmt.Errorf("%w: region %q connects to unknown region %q", ErrInvalidTables, r.Name, exit)
			}
		}
	}

	t.locationsByName = make(map[string]*LocationDef, len(t.Locations))
	for i := range t.Locations {
		loc := &t.Locations[i]
		if _, dup := t.locationsByName[loc.Name]; dup {
			return fmt.Errorf("%w: duplicate location %q", ErrInvalidTables, loc.Name)
		}
		if !regions[loc.Region] {
			return fmt.Errorf("%w: location %q is in unknown region %q", ErrInvalidTables, loc.Name, loc.Region)
		}
		loc.ID = t.Game.BaseID + LocationIDOffset + int64(i) + 1
		t.locationsByName[loc.Name] = loc
	}
	return nil
}

// Item returns the item definition with the given name.
func (t *Tables) Item(name string) (*ItemDef, bool) {
	d, ok := t.itemsByName[name]
	return d, ok
}

// Location returns the location definition with the given name.
func (t *Tables) Location(name string) (*LocationDef, bool) {
	d, ok := t.locationsByName[name]
	return d, ok
}

// ItemNames returns every item name in table order.
func (t *Tables) ItemNames() []string {
	names := make([]string, len(t.Items))
	for i := range t.Items {
		names[i] = t.Items[i].Name
	}
	return names
}

// TrapNames returns the names of trap items in table order.
func (t *Tables) TrapNames() []string {
	var names []string
	for i := range t.Items {
		if t.Items[i].Trap {
			names = append(names, t.Items[i].Name)
		}
	}
	return names
}

// FillerNames returns the names of filler items in table order.
func (t *Tables) FillerNames() []string {
	var names []string
	for i := range t.Items {
		if t.Items[i].Filler {
			names = append(names, t.Items[i].Name)
		}
	}
	return names
}

// ItemsInCategory returns the items carrying the category, in table order.
func (t *Tables) ItemsInCategory(category string) []*ItemDef {
	var out []*ItemDef
	for i := range t.Items {
		if t.Items[i].HasCategory(category) {
			out = append(out, &t.Items[i])
		}
	}
	return out
}

// VictoryLocations returns the locations flagged as victory checks.
func (t *Tables) VictoryLocations() []*LocationDef {
	var out []*LocationDef
	for i := range t.Locations {
		if t.Locations[i].Victory {
			out = append(out, &t.Locations[i])
		}
	}
	return out
}

// CategoryEnabled reports whether every option gate of the category passes.
// Categories without an entry in categories.json are always enabled.
func (t *Tables) CategoryEnabled(category string, opts OptionSource) bool {
	def, ok := t.Categories[category]
	if !ok {
		return true
	}
	for _, gate := range def.YAMLOption {
		want := true
		if strings.HasPrefix(gate, "!") {
			want = false
			gate = gate[1:]
		}
		if (opts.Int(gate) != 0) != want {
			return false
		}
	}
	return true
}

func (t *Tables) categoriesEnabled(categories []string, opts OptionSource) bool {
	for _, c := range categories {
		if !t.CategoryEnabled(c, opts) {
			return false
		}
	}
	return true
}

// ItemEnabled reports whether the named item exists and all its categories are enabled.
func (t *Tables) ItemEnabled(name string, opts OptionSource) bool {
	d, ok := t.itemsByName[name]
	if !ok {
		return false
	}
	return t.categoriesEnabled(d.Category, opts)
}

// LocationEnabled reports whether the named location exists and all its categories are enabled.
func (t *Tables) LocationEnabled(name string, opts OptionSource) bool {
	d, ok := t.locationsByName[name]
	if !ok {
		return false
	}
	return t.categoriesEnabled(d.Category, opts)
}
