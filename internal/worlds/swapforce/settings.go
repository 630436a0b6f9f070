package swapforce

import (
	"github.com/samdwyer/skymanual/internal/hooks"
	"github.com/samdwyer/skymanual/internal/options"
)

// Goal is the victory condition.
type Goal int

const (
	GoalDefeatKaos Goal = iota
	GoalAllLevelsPerfected
)

// String returns the goal's option name.
func (g Goal) String() string {
	switch g {
	case GoalDefeatKaos:
		return "defeat_kaos"
	case GoalAllLevelsPerfected:
		return "all_levels_perfected"
	default:
		return "unknown"
	}
}

// Settings is one player's resolved Swap Force options.
type Settings struct {
	Goal                  Goal
	LinearMode            bool
	ChaptersToBeat        int
	CharactersAsItems     bool
	ChallengesAsLocations bool
	ArenasAsLocations     bool
	Shopsanity            bool
	IncludeEmpire         bool
	IncludeShip           bool
	IncludeCrypt          bool
	IncludePeak           bool
	ActiveItems           bool
	BattlePacks           bool
	CharactersToExclude   []string
	WhitelistCharacters   bool
	OldGenSkylanders      bool
	FillerTraps           int
	DeathLink             bool
}

// NewSettings reads the typed settings from resolved values.
func NewSettings(v *options.Values) Settings {
	return Settings{
		Goal:                  Goal(v.Int(OptGoal)),
		LinearMode:            v.Bool(OptLinearMode),
		ChaptersToBeat:        v.Int(OptChaptersToBeat),
		CharactersAsItems:     v.Bool(OptCharactersAsItems),
		ChallengesAsLocations: v.Bool(OptChallengesAsLocations),
		ArenasAsLocations:     v.Bool(OptArenasAsLocations),
		Shopsanity:            v.Bool(OptShopsanity),
		IncludeEmpire:         v.Bool(OptIncludeEmpire),
		IncludeShip:           v.Bool(OptIncludeShip),
		IncludeCrypt:          v.Bool(OptIncludeCrypt),
		IncludePeak:           v.Bool(OptIncludePeak),
		ActiveItems:           v.Bool(OptActiveItems),
		BattlePacks:           v.Bool(OptBattlePacks),
		CharactersToExclude:   v.Set(OptCharactersToExclude),
		WhitelistCharacters:   v.Bool(OptWhitelistCharacters),
		OldGenSkylanders:      v.Bool(OptOldGenSkylanders),
		FillerTraps:           v.Int(options.KeyFillerTraps),
		DeathLink:             v.Bool(options.KeyDeathLink),
	}
}

// EnabledPacks counts the adventure packs switched on.
func (s Settings) EnabledPacks() int {
	n := 0
	for _, on := range []bool{s.IncludeEmpire, s.IncludeShip, s.IncludeCrypt, s.IncludePeak} {
		if on {
			n++
		}
	}
	return n
}

// CharacterFilter returns the character pool filter for these settings.
func (s Settings) CharacterFilter() hooks.CharacterFilter {
	return hooks.CharacterFilter{
		Enabled:    s.CharactersAsItems,
		Names:      s.CharactersToExclude,
		Whitelist:  s.WhitelistCharacters,
		Challenges: s.ChallengesAsLocations,
	}
}
