// Package swapforce is the Skylanders Swap Force world: its options, typed
// settings, rule helpers and generation hooks.
package swapforce

import (
	"github.com/samdwyer/skymanual/internal/gamedata"
	"github.com/samdwyer/skymanual/internal/hooks"
	"github.com/samdwyer/skymanual/internal/options"
	"github.com/samdwyer/skymanual/internal/rules"
)

// Key names the world on the command line and selects its data directory.
const Key = "swapforce"

// Rules returns the helpers Swap Force requires strings may call.
func Rules() *rules.Registry {
	r := rules.Base()
	r.RegisterTemplate("requiresSwapper", rules.Template(requiresSwapperStr))
	return r
}

// Definition loads the Swap Force world.
func Definition() (*hooks.Definition, error) {
	tables, err := gamedata.LoadTables(Key)
	if err != nil {
		return nil, err
	}
	return &hooks.Definition{
		Key:     Key,
		Tables:  tables,
		Rules:   Rules(),
		Options: optionHooks{},
		NewHooks: func(v *options.Values) hooks.Hooks {
			return &Hooks{Settings: NewSettings(v)}
		},
	}, nil
}
