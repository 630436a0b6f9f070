package swapforce

import (
	"errors"

	"github.com/samdwyer/skymanual/internal/hooks"
	"github.com/samdwyer/skymanual/internal/options"
	"github.com/samdwyer/skymanual/internal/rules"
	"github.com/samdwyer/skymanual/internal/world"
)

// Item and location names the hooks refer to.
const (
	FragmentItem       = "Map of Arkus Fragment"
	FinalBossLocation  = "Defeat Kaos"
	packFragmentSlots  = 4
	swapForceCategory  = "Swap Force"
	requiresSwapperStr = "|@" + swapForceCategory + ":1|"
)

// Hooks are the Swap Force generation hooks for one player.
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

// AfterCreateRegions drops the victory location the goal did not select and,
// outside linear mode, routes every chapter through the hub.
func (h *Hooks) AfterCreateRegions(c *hooks.Context) error {
	removed := hooks.KeepGoal(c.World, int(h.Settings.Goal))
	c.Logger.Debug("removed unused goal locations", "locations", removed)

	if h.Settings.LinearMode {
		return nil
	}
	chapters, err := hooks.RewireHub(c.World)
	if err != nil {
		return err
	}
	c.Logger.Info("non-linear mode: hub connects to every chapter", "chapters", len(chapters))
	return nil
}

// BeforeCreateItemsStarting removes excluded (or non-whitelisted) characters.
func (h *Hooks) BeforeCreateItemsStarting(c *hooks.Context, pool []*world.Item) ([]*world.Item, error) {
	pool, removed, err := hooks.FilterCharacters(c, pool, h.Settings.CharacterFilter())
	if err != nil {
		return nil, err
	}
	if len(removed) > 0 {
		c.Logger.Info("filtered characters", "removed", len(removed))
	}
	return pool, nil
}

// BeforeCreateItemsFiller locks a fragment into each level completion outside
// linear mode, then pads the pool with weighted traps and filler.
func (h *Hooks) BeforeCreateItemsFiller(c *hooks.Context, pool []*world.Item) ([]*world.Item, error) {
	if !h.Settings.LinearMode {
		extra := packFragmentSlots - h.Settings.EnabledPacks()
		var placed int
		var err error
		pool, placed, err = hooks.PlaceInCategory(c, pool, FragmentItem, hooks.CategoryLevelCompletion, extra)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("placed fragments on level completions",
			"placed", placed, "removed", extra)
	}

	pool, _, err := hooks.FillPool(c, pool, h.Settings.FillerTraps)
	return pool, err
}

// AfterSetRules requires enough fragments before Kaos can be fought. The
// count is chapters_to_beat, capped by the fragments the world holds.
func (h *Hooks) AfterSetRules(c *hooks.Context) error {
	loc, err := c.World.Location(FinalBossLocation)
	if errors.Is(err, world.ErrLocationNotFound) {
		// Goal is all_levels_perfected.
		return nil
	}
	if err != nil {
		return err
	}

	need := min(h.Settings.ChaptersToBeat, c.World.ItemCounts[FragmentItem])
	rules.Restrict(loc, rules.HasCount(FragmentItem, c.Player, need))
	return nil
}
