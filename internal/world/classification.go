// Package world models the prepared state of each player's world: regions
// with exits, locations with access rules and locked items, the item pool, and
// collection state.
package world

import "github.com/samdwyer/skymanual/internal/gamedata"

// Classification marks how important an item is to progression.
type Classification rune

const (
	// ClassFiller is an item nothing depends on.
	ClassFiller Classification = '.'
	// ClassProgression may be required to reach locations.
	ClassProgression Classification = '!'
	// ClassUseful is helpful but never required.
	ClassUseful Classification = '+'
	// ClassTrap hinders the receiving player.
	ClassTrap Classification = 'x'
)

// Classify derives the classification from an item definition's flags.
// Progression wins over useful, useful over trap.
func Classify(def *gamedata.ItemDef) Classification {
	switch {
	case def.Progression:
		return ClassProgression
	case def.Useful:
		return ClassUseful
	case def.Trap:
		return ClassTrap
	default:
		return ClassFiller
	}
}

// IsProgression returns true if the item can gate access.
func (c Classification) IsProgression() bool {
	return c == ClassProgression
}

// Rune returns the classification's display character.
func (c Classification) Rune() rune {
	return rune(c)
}

// String returns the classification name used by game.json colours.
func (c Classification) String() string {
	switch c {
	case ClassProgression:
		return "progression"
	case ClassUseful:
		return "useful"
	case ClassTrap:
		return "trap"
	default:
		return "filler"
	}
}

// ParseClassification is the inverse of String. Unknown names are filler.
func ParseClassification(name string) Classification {
	switch name {
	case "progression":
		return ClassProgression
	case "useful":
		return ClassUseful
	case "trap":
		return ClassTrap
	default:
		return ClassFiller
	}
}
