package gamedata

import (
	"math/rand"
	"slices"
)

// WeightedName pairs an item name with its draw weight.
type WeightedName struct {
	Name   string
	Weight int
}

// TrapRegistry draws trap names by weighted probability.
type TrapRegistry struct {
	entries     []WeightedName
	totalWeight int
	fellBack    bool
}

// NewTrapRegistry creates a registry from trap weights. Negative weights count
// as zero. When every weight is zero the last entry's weight becomes 1 so a
// draw is still possible; FellBack reports that this happened.
func NewTrapRegistry(entries []WeightedName) *TrapRegistry {
	r := &TrapRegistry{entries: slices.Clone(entries)}
	for i := range r.entries {
		if r.entries[i].Weight < 0 {
			r.entries[i].Weight = 0
		}
		r.totalWeight += r.entries[i].Weight
	}
	if r.totalWeight == 0 && len(r.entries) > 0 {
		r.entries[len(r.entries)-1].Weight = 1
		r.totalWeight = 1
		r.fellBack = true
	}
	return r
}

// Pick selects a trap name using weighted probability.
// Returns "" when the registry is empty.
func (r *TrapRegistry) Pick(rng *rand.Rand) string {
	if r.totalWeight <= 0 || len(r.entries) == 0 {
		return ""
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.entries {
		cumulative += r.entries[i].Weight
		if roll < cumulative {
			return r.entries[i].Name
		}
	}

	// Unreachable while totalWeight matches the entries.
	return r.entries[len(r.entries)-1].Name
}

// Weights returns the effective weights after the zero-sum fallback.
func (r *TrapRegistry) Weights() []WeightedName {
	return slices.Clone(r.entries)
}

// FellBack reports whether all configured weights were zero.
func (r *TrapRegistry) FellBack() bool {
	return r.fellBack
}

// Count returns the number of trap kinds in the registry.
func (r *TrapRegistry) Count() int {
	return len(r.entries)
}

// =============================================================================
// FillerRegistry
// =============================================================================

// FillerRegistry draws filler names uniformly.
type FillerRegistry struct {
	names []string
}

// NewFillerRegistry creates a registry from filler item names.
func NewFillerRegistry(names []string) *FillerRegistry {
	return &FillerRegistry{names: slices.Clone(names)}
}

// Pick selects a filler name uniformly. Returns "" when the registry is empty.
func (r *FillerRegistry) Pick(rng *rand.Rand) string {
	if len(r.names) == 0 {
		return ""
	}
	return r.names[rng.Intn(len(r.names))]
}

// Count returns the number of filler kinds in the registry.
func (r *FillerRegistry) Count() int {
	return len(r.names)
}
