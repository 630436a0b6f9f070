// Package rules provides access-rule composition and the named helper
// functions referenced from requires strings as {name(args)}.
package rules

import "github.com/samdwyer/skymanual/internal/world"

// Always is the rule of a location with no requirement.
func Always(*world.CollectionState) bool { return true }

// And returns a rule that passes when every rule passes. Nil rules pass.
func And(rules ...world.AccessRule) world.AccessRule {
	return func(state *world.CollectionState) bool {
		for _, r := range rules {
			if r != nil && !r(state) {
				return false
			}
		}
		return true
	}
}

// Or returns a rule that passes when any rule passes. A nil rule passes, as
// does an empty list.
func Or(rules ...world.AccessRule) world.AccessRule {
	return func(state *world.CollectionState) bool {
		if len(rules) == 0 {
			return true
		}
		for _, r := range rules {
			if r == nil || r(state) {
				return true
			}
		}
		return false
	}
}

// HasCount requires player to hold at least n copies of the item.
func HasCount(item string, player, n int) world.AccessRule {
	return func(state *world.CollectionState) bool {
		return state.Has(item, player, n)
	}
}

// Restrict conjoins extra with the location's current rule.
func Restrict(loc *world.Location, extra world.AccessRule) {
	loc.Access = And(loc.Access, extra)
}

// Relax disjoins extra with the location's current rule.
func Relax(loc *world.Location, extra world.AccessRule) {
	old := loc.Access
	if old == nil {
		// Already always reachable.
		return
	}
	loc.Access = Or(old, extra)
}
