package giants

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

// Settings is one player's resolved Giants options.
type Settings struct {
	Goal                  Goal
	CharactersAsItems     bool
	ChallengesAsLocations bool
	PerElementUpgrades    bool
	IncludeEmpire         bool
	IncludeShip           bool
	IncludeCrypt          bool
	IncludePeak           bool
	ActiveItems           bool
	CharactersToExclude   []string
	WhitelistCharacters   bool
	FillerTraps           int
	DeathLink             bool
}

// NewSettings reads the typed settings from resolved values.
func NewSettings(v *options.Values) Settings {
	return Settings{
		Goal:                  Goal(v.Int(OptGoal)),
		CharactersAsItems:     v.Bool(OptCharactersAsItems),
		ChallengesAsLocations: v.Bool(OptChallengesAsLocations),
		PerElementUpgrades:    v.Bool(OptPerElementUpgrades),
		IncludeEmpire:         v.Bool(OptIncludeEmpire),
		IncludeShip:           v.Bool(OptIncludeShip),
		IncludeCrypt:          v.Bool(OptIncludeCrypt),
		IncludePeak:           v.Bool(OptIncludePeak),
		ActiveItems:           v.Bool(OptActiveItems),
		CharactersToExclude:   v.Set(OptCharactersToExclude),
		WhitelistCharacters:   v.Bool(OptWhitelistCharacters),
		FillerTraps:           v.Int(options.KeyFillerTraps),
		DeathLink:             v.Bool(options.KeyDeathLink),
	}
}

func (s Settings) characterFilter() hooks.CharacterFilter {
	return hooks.CharacterFilter{
		Enabled:    s.CharactersAsItems,
		Names:      s.CharactersToExclude,
		Whitelist:  s.WhitelistCharacters,
		Challenges: s.ChallengesAsLocations,
	}
}
