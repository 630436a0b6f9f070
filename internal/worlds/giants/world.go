// Package giants is the Skylanders Giants world.
package giants

import (
	"github.com/samdwyer/skymanual/internal/gamedata"
	"github.com/samdwyer/skymanual/internal/hooks"
	"github.com/samdwyer/skymanual/internal/options"
	"github.com/samdwyer/skymanual/internal/rules"
)

const (
	// Key names the world on the command line and selects its data directory.
	Key = "giants"

	giantCategory = "Giant"
)

// Rules returns the helpers Giants requires strings may call.
func Rules() *rules.Registry {
	r := rules.Base()
	r.RegisterTemplate("requiresGiant", rules.Template("|@"+giantCategory+":1|"))
	return r
}

// Definition loads the Giants world.
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
