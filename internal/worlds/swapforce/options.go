package swapforce

import "github.com/samdwyer/skymanual/internal/options"

// Option keys.
const (
	OptGoal                  = "goal"
	OptLinearMode            = "linear_mode"
	OptChaptersToBeat        = "chapters_to_beat"
	OptCharactersAsItems     = "characters_as_items"
	OptChallengesAsLocations = "challenges_as_locations"
	OptArenasAsLocations     = "arenas_as_locations"
	OptShopsanity            = "shopsanity"
	OptIncludeEmpire         = "include_empire"
	OptIncludeShip           = "include_ship"
	OptIncludeCrypt          = "include_crypt"
	OptIncludePeak           = "include_peak"
	OptActiveItems           = "active_items"
	OptBattlePacks           = "battle_packs"
	OptCharactersToExclude   = "characters_to_exclude"
	OptWhitelistCharacters   = "whitelist_characters"
	OptOldGenSkylanders      = "old_gen_skylanders"
)

const trapWeightHelp = "Set to 0 to disable. Don't set all trap weights to 0."

// OptionDefs are the Swap Force options in registration order.
func OptionDefs() []options.Def {
	return []options.Def{
		options.OneOf(OptGoal, "Goal",
			"Choose your victory condition. Defeat Kaos: defeat Kaos. All Levels Perfected: finish every level with full completion.",
			int(GoalDefeatKaos),
			options.Choice{Name: "defeat_kaos", Value: int(GoalDefeatKaos)},
			options.Choice{Name: "all_levels_perfected", Value: int(GoalAllLevelsPerfected)}),
		options.Toggle(OptLinearMode, "Linear Mode",
			"Receive chapters sequentially instead of in a random order. If false, you will need an existing save with minimal progress.", true),
		options.Range(OptChaptersToBeat, "Chapters to Beat",
			"Number of chapter completions required to challenge Kaos. Set this low for synchronous multiworlds.", 1, 20, 16),
		options.Toggle(OptCharactersAsItems, "Characters as Items",
			"Unlock skylanders individually instead of by element.", true),
		options.Toggle(OptChallengesAsLocations, "Challenges as Locations",
			"Add locations for Cali's heroic challenges.", false),
		options.Toggle(OptArenasAsLocations, "Arenas as Locations",
			"Add locations for Brock's arena battles.", true),
		options.Toggle(OptShopsanity, "Shopsanity",
			"Adds shop items as locations.", false),
		options.Toggle(OptIncludeEmpire, "Empire of Ice Pack",
			"Adds checks for the Empire of Ice adventure pack.", false),
		options.Toggle(OptIncludeShip, "Pirate Ship Pack",
			"Adds checks for the Pirate Ship adventure pack.", false),
		options.Toggle(OptIncludeCrypt, "Darklight Crypt Pack",
			"Adds checks for the Darklight Crypt adventure pack.", false),
		options.Toggle(OptIncludePeak, "Dragon's Peak Pack",
			"Adds checks for the Dragon's Peak adventure pack.", false),
		options.Toggle(OptActiveItems, "Active Items",
			"Adds active items to generation logic. Only items from enabled adventure packs are added.", false),
		options.Toggle(OptBattlePacks, "Battle Pack Items",
			"Adds battle pack items to generation logic (there are only 2).", false),
		options.ItemSet(OptCharactersToExclude, "Characters to Exclude",
			"Skylanders that will not be included in generation. Does nothing if Characters as Items is false. "+
				"With fewer than eight skylanders (and at least one per element) some locations become unreachable.", true),
		options.Toggle(OptWhitelistCharacters, "Whitelist Characters",
			"Treat Characters to Exclude as a whitelist instead of a blacklist.", false),
		options.Toggle(OptOldGenSkylanders, "Old-gen Skylanders",
			"Allow skylanders from the previous game that did not get an update.", false),
		options.Range("element_lock_trap_weight", "Element Lock trap Weight",
			"Weight of Element Lock traps. "+trapWeightHelp, 0, 100, 35),
		options.Range("rename_skylander_trap_weight", "Rename Skylander trap Weight",
			"Weight of Rename Skylander traps. "+trapWeightHelp, 0, 100, 20),
		options.Range("solo_trap_weight", "Solo trap Weight",
			"Weight of Solo traps. "+trapWeightHelp, 0, 100, 15),
		options.Range("heavy_hitter_trap_weight", "Heavy Hitter trap Weight",
			"Weight of Heavy Hitter traps. "+trapWeightHelp, 0, 100, 20),
		options.Range("reset_last_skylander_trap_weight", "Reset Last Skylander trap Weight",
			"Weight of Reset Last Skylander traps. "+trapWeightHelp, 0, 100, 10),
	}
}

// optionHooks registers the Swap Force options.
type optionHooks struct{}

func (optionHooks) BeforeOptionsDefined(t *options.Table) *options.Table {
	return t.Add(OptionDefs()...)
}

// AfterOptionsDefined raises the filler_traps default so traps appear unless
// the player opts out.
func (optionHooks) AfterOptionsDefined(t *options.Table) *options.Table {
	t.Set(options.FillerTraps(50))
	return t
}
