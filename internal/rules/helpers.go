package rules

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samdwyer/skymanual/internal/options"
	"github.com/samdwyer/skymanual/internal/world"
)

var (
	// ErrUnknownHelper is returned when a requires string calls an unregistered helper.
	ErrUnknownHelper = errors.New("unknown rule helper")
	// ErrHelperArgs is returned when a helper receives unusable arguments.
	ErrHelperArgs = errors.New("invalid rule helper arguments")
)

// Env is what a helper sees: the player's world, the multiworld, the state
// being evaluated and the player's option values. State is nil when requires
// strings are expanded ahead of fill.
type Env struct {
	World      *world.World
	Multiworld *world.Multiworld
	State      *world.CollectionState
	Player     int
	Options    *options.Values
}

// CheckFunc answers a yes/no question about the collection state.
type CheckFunc func(env Env, args ...string) (bool, error)

// TemplateFunc returns a requirement string to splice into a requires string.
type TemplateFunc func(env Env, args ...string) (string, error)

type helper struct {
	check    CheckFunc
	template TemplateFunc
}

// Registry maps helper names to their functions.
type Registry struct {
	helpers map[string]helper
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{helpers: make(map[string]helper)}
}

// Base returns a registry holding the helpers every world shares.
func Base() *Registry {
	r := NewRegistry()
	r.RegisterCheck("fullElementAnywhere", FullElementAnywhere)
	r.RegisterCheck("anyUpgradeLevel", AnyUpgradeLevel)
	r.RegisterTemplate("OptOneDynamic", OptOneDynamic)
	return r
}

// RegisterCheck adds or replaces a state check.
func (r *Registry) RegisterCheck(name string, fn CheckFunc) {
	r.helpers[name] = helper{check: fn}
}

// RegisterTemplate adds or replaces a string template.
func (r *Registry) RegisterTemplate(name string, fn TemplateFunc) {
	r.helpers[name] = helper{template: fn}
}

// Names returns the registered helper names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.helpers))
	for n := range r.helpers {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Call invokes a helper. Checks return a bool, templates a string.
func (r *Registry) Call(env Env, name string, args ...string) (any, error) {
	h, ok := r.helpers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHelper, name)
	}
	if h.template != nil {
		return h.template(env, args...)
	}
	if env.State == nil {
		return nil, fmt.Errorf("%w: %s needs a collection state", ErrHelperArgs, name)
	}
	return h.check(env, args...)
}

// IsCheck reports whether name is a registered state check.
func (r *Registry) IsCheck(name string) bool {
	h, ok := r.helpers[name]
	return ok && h.check != nil
}

// Template returns a helper that always yields s.
func Template(s string) TemplateFunc {
	return func(Env, ...string) (string, error) { return s, nil }
}

// FullElementAnywhere reports whether the player holds every item of any
// group whose name ends in " Element".
func FullElementAnywhere(env Env, _ ...string) (bool, error) {
	groups := make([]string, 0, len(env.World.ItemNameGroups))
	for g := range env.World.ItemNameGroups {
		if strings.HasSuffix(g, " Element") {
			groups = append(groups, g)
		}
	}
	slices.Sort(groups)

	for _, g := range groups {
		items := env.World.ItemNameGroups[g]
		if len(items) > 0 && env.State.HasAll(items, env.Player) {
			return true, nil
		}
	}
	return false, nil
}

// AnyUpgradeLevel reports whether any item in the "Upgrade" group has reached
// the given count.
func AnyUpgradeLevel(env Env, args ...string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("%w: anyUpgradeLevel wants 1 argument, got %d", ErrHelperArgs, len(args))
	}
	level, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return false, fmt.Errorf("%w: anyUpgradeLevel level %q", ErrHelperArgs, args[0])
	}
	for _, item := range env.World.ItemNameGroups["Upgrade"] {
		if env.State.Count(item, env.Player) >= level {
			return true, nil
		}
	}
	return false, nil
}

// Clamp bounds v to [lo, hi]. When hi < lo the upper bound wins.
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// OptOneDynamic turns "|Item:option|" or "|@Category:option|" into a concrete
// requirement whose count is the option's value clamped to the number of
// copies in the pool. Without ":option" the count is 1. Non-numeric option
// values pass through unclamped; blank input yields "".
func OptOneDynamic(env Env, args ...string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", nil
	}
	arg := strings.TrimSpace(args[0])

	category := strings.Contains(prefix(arg, 2), "@")
	name := strings.TrimRight(strings.TrimLeft(arg, "|@$"), "|")

	count := "1"
	if item, opt, found := strings.Cut(name, ":"); found {
		name = item
		raw, ok := lookupOption(env.Options, opt)
		if !ok {
			return "", fmt.Errorf("OptOneDynamic: %w: %s", options.ErrUnknownOption, opt)
		}
		count = raw
	}

	counts := env.World.ItemCounts
	if counts == nil {
		counts = poolCounts(env.World)
	}

	sigil := ""
	available := 0
	if category {
		sigil = "@"
		for i := range env.World.Tables.Items {
			def := &env.World.Tables.Items[i]
			if def.HasCategory(name) {
				available += counts[def.Name]
			}
		}
	} else {
		available = counts[name]
	}

	if isNumeric(count) {
		n, _ := strconv.Atoi(count)
		count = strconv.Itoa(Clamp(n, 1, available))
	}
	return fmt.Sprintf("|%s%s:%s|", sigil, name, count), nil
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func lookupOption(v *options.Values, key string) (string, bool) {
	if v == nil {
		return "", false
	}
	raw, ok := v.Lookup(key)
	if !ok {
		return "", false
	}
	return fmt.Sprint(raw), true
}

func poolCounts(w *world.World) map[string]int {
	counts := make(map[string]int)
	for _, it := range w.Pool {
		counts[it.Name]++
	}
	return counts
}
