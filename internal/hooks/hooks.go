// Package hooks defines the lifecycle callbacks a world supplies to the
// generator, an identity implementation to embed, and the filters both
// Skylanders worlds share.
package hooks

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/samdwyer/skymanual/internal/options"
	"github.com/samdwyer/skymanual/internal/rules"
	"github.com/samdwyer/skymanual/internal/world"
)

// SlotData is exported to client tooling per player.
type SlotData map[string]any

// HintData maps player to location address to extra hint text.
type HintData map[int]map[int64]string

// Context is passed to every hook. Hooks run one at a time and own the
// context for the duration of the call.
type Context struct {
	World      *world.World
	Multiworld *world.Multiworld
	Player     int
	Options    *options.Values
	RNG        *rand.Rand
	Logger     *slog.Logger
	Rules      *rules.Registry

	// CreateItem creates one item, running the item creation hooks.
	CreateItem func(name string) (*world.Item, error)

	// Warnings collects messages worth keeping in the generation result.
	Warnings []string
}

// Warn logs msg at warn level and records it in Warnings.
func (c *Context) Warn(msg string, args ...any) {
	c.Logger.Warn(msg, args...)
	c.Warnings = append(c.Warnings, msg)
}

// RuleEnv returns the rule helper environment for this player with no state.
func (c *Context) RuleEnv() rules.Env {
	return rules.Env{
		World:      c.World,
		Multiworld: c.Multiworld,
		Player:     c.Player,
		Options:    c.Options,
	}
}

// OptionHooks add a world's options around the host defaults.
type OptionHooks interface {
	BeforeOptionsDefined(t *options.Table) *options.Table
	AfterOptionsDefined(t *options.Table) *options.Table
}

// Hooks is the full set of callbacks, in the order the generator calls them.
type Hooks interface {
	OptionHooks

	// FillerItemName overrides the game's filler item when ok is true.
	FillerItemName(c *Context) (name string, ok bool)

	BeforeCreateRegions(c *Context) error
	AfterCreateRegions(c *Context) error

	BeforeCreateItem(c *Context, name string) string
	AfterCreateItem(c *Context, item *world.Item) *world.Item

	BeforeCreateItemsStarting(c *Context, pool []*world.Item) ([]*world.Item, error)
	BeforeCreateItemsFiller(c *Context, pool []*world.Item) ([]*world.Item, error)
	AfterCreateItems(c *Context, pool []*world.Item) ([]*world.Item, error)

	BeforeSetRules(c *Context) error
	AfterSetRules(c *Context) error

	BeforeGenerateBasic(c *Context) error
	AfterGenerateBasic(c *Context) error

	BeforeFillSlotData(c *Context, data SlotData) SlotData
	AfterFillSlotData(c *Context, data SlotData) SlotData

	BeforeWriteSpoiler(c *Context, w io.Writer) error

	BeforeExtendHintInformation(c *Context, hints HintData)
	AfterExtendHintInformation(c *Context, hints HintData)
}

// Base implements every hook as a no-op. Worlds embed it and override what
// they need.
type Base struct{}

var _ Hooks = Base{}

func (Base) BeforeOptionsDefined(t *options.Table) *options.Table { return t }
func (Base) AfterOptionsDefined(t *options.Table) *options.Table  { return t }

func (Base) FillerItemName(*Context) (string, bool) { return "", false }

func (Base) BeforeCreateRegions(*Context) error { return nil }
func (Base) AfterCreateRegions(*Context) error  { return nil }

func (Base) BeforeCreateItem(_ *Context, name string) string            { return name }
func (Base) AfterCreateItem(_ *Context, item *world.Item) *world.Item { return item }

func (Base) BeforeCreateItemsStarting(_ *Context, pool []*world.Item) ([]*world.Item, error) {
	return pool, nil
}

func (Base) BeforeCreateItemsFiller(_ *Context, pool []*world.Item) ([]*world.Item, error) {
	return pool, nil
}

func (Base) AfterCreateItems(_ *Context, pool []*world.Item) ([]*world.Item, error) {
	return pool, nil
}

func (Base) BeforeSetRules(*Context) error { return nil }
func (Base) AfterSetRules(*Context) error  { return nil }

func (Base) BeforeGenerateBasic(*Context) error { return nil }
func (Base) AfterGenerateBasic(*Context) error  { return nil }

func (Base) BeforeFillSlotData(_ *Context, data SlotData) SlotData { return data }
func (Base) AfterFillSlotData(_ *Context, data SlotData) SlotData  { return data }

func (Base) BeforeWriteSpoiler(*Context, io.Writer) error { return nil }

func (Base) BeforeExtendHintInformation(*Context, HintData) {}
func (Base) AfterExtendHintInformation(*Context, HintData)  {}
