// Package options defines player-facing option tables and resolves player
// settings against them.
package options

import (
	"strconv"
	"strings"
)

// Kind is the value shape of an option.
type Kind int

const (
	KindToggle Kind = iota
	KindRange
	KindChoice
	KindItemSet
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindToggle:
		return "toggle"
	case KindRange:
		return "range"
	case KindChoice:
		return "choice"
	case KindItemSet:
		return "item set"
	default:
		return "unknown"
	}
}

// Choice is one named value of a choice option.
type Choice struct {
	Name  string
	Value int
}

// Def describes one option. Defs are values; copying one never aliases another
// table's state except for the Choices and DefaultSet slices, which are never
// mutated after construction.
type Def struct {
	Key         string
	Kind        Kind
	DisplayName string
	Description string

	// Range bounds, inclusive.
	Min int
	Max int

	// Default for toggle (0/1), range and choice options.
	Default int
	// DefaultSet is the default for item set options.
	DefaultSet []string

	Choices []Choice

	// VerifyItemName requires every entry of an item set to name a known item.
	VerifyItemName bool
}

// Toggle builds an on/off option.
func Toggle(key, displayName, description string, def bool) Def {
	d := Def{Key: key, Kind: KindToggle, DisplayName: displayName, Description: description, Min: 0, Max: 1}
	if def {
		d.Default = 1
	}
	return d
}

// Range builds an integer option bounded by min and max.
func Range(key, displayName, description string, min, max, def int) Def {
	return Def{Key: key, Kind: KindRange, DisplayName: displayName, Description: description, Min: min, Max: max, Default: def}
}

// OneOf builds a choice option. The default is a choice value.
func OneOf(key, displayName, description string, def int, choices ...Choice) Def {
	return Def{Key: key, Kind: KindChoice, DisplayName: displayName, Description: description, Default: def, Choices: choices}
}

// ItemSet builds an option holding a set of item names.
func ItemSet(key, displayName, description string, verifyItemName bool) Def {
	return Def{Key: key, Kind: KindItemSet, DisplayName: displayName, Description: description, VerifyItemName: verifyItemName}
}

// ChoiceName returns the name of the choice with the given value.
func (d Def) ChoiceName(value int) (string, bool) {
	for _, c := range d.Choices {
		if c.Value == value {
			return c.Name, true
		}
	}
	return "", false
}

// DefaultString renders the default for listings.
func (d Def) DefaultString() string {
	switch d.Kind {
	case KindToggle:
		if d.Default != 0 {
			return "true"
		}
		return "false"
	case KindChoice:
		if name, ok := d.ChoiceName(d.Default); ok {
			return name
		}
	case KindItemSet:
		if len(d.DefaultSet) == 0 {
			return "[]"
		}
		return "[" + strings.Join(d.DefaultSet, ", ") + "]"
	}
	return strconv.Itoa(d.Default)
}
