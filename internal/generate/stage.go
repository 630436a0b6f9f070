// Package generate runs the generation pipeline: it plays the host's part,
// calling each world's hooks at fixed stages and recording the prepared
// worlds as a Result.
package generate

// Stage is one step of the pipeline. Stages run in declaration order.
type Stage int

const (
	StageOptions Stage = iota
	StageSettings
	StageBeforeCreateRegions
	StageCreateRegions
	StageAfterCreateRegions
	StageCreateItems
	StageItemsStarting
	StageItemsFiller
	StageAfterCreateItems
	StageSetRules
	StageGenerateBasic
	StagePreFill
	StageSlotData
	StageHints
	StageSpoiler
)

// Stages lists every stage in execution order.
var Stages = []Stage{
	StageOptions,
	StageSettings,
	StageBeforeCreateRegions,
	StageCreateRegions,
	StageAfterCreateRegions,
	StageCreateItems,
	StageItemsStarting,
	StageItemsFiller,
	StageAfterCreateItems,
	StageSetRules,
	StageGenerateBasic,
	StagePreFill,
	StageSlotData,
	StageHints,
	StageSpoiler,
}

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageOptions:
		return "options"
	case StageSettings:
		return "settings"
	case StageBeforeCreateRegions:
		return "before_create_regions"
	case StageCreateRegions:
		return "create_regions"
	case StageAfterCreateRegions:
		return "after_create_regions"
	case StageCreateItems:
		return "create_items"
	case StageItemsStarting:
		return "before_create_items_starting"
	case StageItemsFiller:
		return "before_create_items_filler"
	case StageAfterCreateItems:
		return "after_create_items"
	case StageSetRules:
		return "set_rules"
	case StageGenerateBasic:
		return "generate_basic"
	case StagePreFill:
		return "pre_fill"
	case StageSlotData:
		return "fill_slot_data"
	case StageHints:
		return "extend_hint_information"
	case StageSpoiler:
		return "write_spoiler"
	default:
		return "unknown"
	}
}
