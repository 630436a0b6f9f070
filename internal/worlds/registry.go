// Package worlds lists every world the generator knows about.
package worlds

import (
	"github.com/samdwyer/skymanual/internal/hooks"
	"github.com/samdwyer/skymanual/internal/worlds/giants"
	"github.com/samdwyer/skymanual/internal/worlds/swapforce"
)

// All loads every world definition.
func All() ([]*hooks.Definition, error) {
	loaders := []func() (*hooks.Definition, error){
		swapforce.Definition,
		giants.Definition,
	}
	defs := make([]*hooks.Definition, 0, len(loaders))
	for _, load := range loaders {
		d, err := load()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}
