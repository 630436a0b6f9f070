package giants

import (
	"github.com/samdwyer/skymanual/internal/hooks"
	"github.com/samdwyer/skymanual/internal/options"
	"github.com/samdwyer/skymanual/internal/world"
)

// Hooks are the Giants generation hooks for one player.
type Hooks struct {
	hooks.Base
	Settings Settings
}

var _ hooks.Hooks = (*Hooks)(nil)

func (h *Hooks) BeforeOptionsDefined(t *options.Table) *options.Table {
	return optionHooks{}.BeforeOptionsDefined(t)
}

func (h *Hooks) AfterOptionsDefined(t *options.Table) *options.Table {
	return optionHooks{}.AfterOptionsDefined(t)
}

func (h *Hooks) AfterCreateRegions(c *hooks.Context) error {
	removed := hooks.KeepGoal(c.World, int(h.Settings.Goal))
	c.Logger.Debug("removed unused goal locations", "locations", removed)
	return nil
}

func (h *Hooks) BeforeCreateItemsStarting(c *hooks.Context, pool []*world.Item) ([]*world.Item, error) {
	pool, _, err := hooks.FilterCharacters(c, pool, h.Settings.characterFilter())
	return pool, err
}

func (h *Hooks) BeforeCreateItemsFiller(c *hooks.Context, pool []*world.Item) ([]*world.Item, error) {
	pool, _, err := hooks.FillPool(c, pool, h.Settings.FillerTraps)
	return pool, err
}
