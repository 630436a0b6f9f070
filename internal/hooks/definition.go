package hooks

import (
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/skymanual/internal/gamedata"
	"github.com/samdwyer/skymanual/internal/options"
	"github.com/samdwyer/skymanual/internal/rules"
)

// Definition is everything the generator needs to know about one game.
type Definition struct {
	// Key is the short name used on the command line and in player files.
	Key    string
	Tables *gamedata.Tables
	Rules  *rules.Registry

	// Options defines the world's option table.
	Options OptionHooks
	// NewHooks returns the hooks for one player, built from that player's
	// resolved options.
	NewHooks func(values *options.Values) Hooks
}

// Game returns the full game name.
func (d *Definition) Game() string {
	return d.Tables.Game.Game
}

// Matches reports whether name refers to this game, by key or full name.
func (d *Definition) Matches(name string) bool {
	return strings.EqualFold(name, d.Key) || strings.EqualFold(name, d.Game())
}

// OptionTable builds the world's option table: the world's own options, then
// the host defaults, then the world's overrides.
func (d *Definition) OptionTable() *options.Table {
	t := d.Options.BeforeOptionsDefined(options.NewTable())
	options.AddHostDefaults(t, len(d.Tables.TrapNames()) > 0)
	return d.Options.AfterOptionsDefined(t)
}

// ItemNames returns the set of every item name in the game.
func (d *Definition) ItemNames() mapset.Set[string] {
	names := mapset.New[string]()
	for _, n := range d.Tables.ItemNames() {
		names.Put(n)
	}
	return names
}

// Resolve validates raw player settings against the option table.
func (d *Definition) Resolve(raw map[string]any) (*options.Values, error) {
	return options.Resolve(d.OptionTable(), raw, d.ItemNames())
}
