package domain

// Stage identifies one discrete phase of the guided estimation conversation.
type Stage string

const (
	StageGreeting           Stage = "GREETING"
	StageRoomSelection      Stage = "ROOM_SELECTION"
	StageRoomDimensions     Stage = "ROOM_DIMENSIONS"
	StageBudget             Stage = "BUDGET"
	StageDesignPreferences  Stage = "DESIGN_PREFERENCES"
	StageProductSuggestions Stage = "PRODUCT_SUGGESTIONS"
	StageSummary            Stage = "SUMMARY"
)

var knownStages = map[Stage]struct{}{
	StageGreeting:           {},
	StageRoomSelection:      {},
	StageRoomDimensions:     {},
	StageBudget:             {},
	StageDesignPreferences:  {},
	StageProductSuggestions: {},
	StageSummary:            {},
}

// IsKnownStage reports whether stage is one of the defined conversation stages.
// Unknown stages come from corrupted or foreign-origin state and are recovered
// by resetting the conversation, never by failing the turn.
func IsKnownStage(stage Stage) bool {
	_, ok := knownStages[stage]
	return ok
}

// Stages returns the forward stage order. The two permitted loops (summary
// back to product suggestions, and a full reset to greeting) are handled by
// the stage handlers, not by this ordering.
func Stages() []Stage {
	return []Stage{
		StageGreeting,
		StageRoomSelection,
		StageRoomDimensions,
		StageBudget,
		StageDesignPreferences,
		StageProductSuggestions,
		StageSummary,
	}
}
