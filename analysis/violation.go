// Package analysis judges a replayed game against layered expert-play
// conventions. Each convention is an independent, pure checker over a
// shared per-action context; the analyzer selects the checker set for a
// configured level and aggregates every finding into a violation list.
package analysis

import "github.com/Jaholl/hanab-analytics/engine"

// Severity classifies how damaging a violation is.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityCritical
)

var severityNames = [...]string{"Info", "Warning", "Critical"}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "Unknown"
}

// ViolationType identifies which convention was broken.
type ViolationType string

const (
	ViolationMisplay            ViolationType = "misplay"
	ViolationBadDiscard5        ViolationType = "bad_discard_five"
	ViolationBadDiscardCritical ViolationType = "bad_discard_critical"
	ViolationIllegalDiscard     ViolationType = "illegal_discard"
	ViolationIllegalClue        ViolationType = "illegal_clue"
	ViolationMinClueValue       ViolationType = "min_clue_value"
	ViolationBadTouch           ViolationType = "bad_touch"
	ViolationMissedSave         ViolationType = "missed_save"
	ViolationMissedPrompt       ViolationType = "missed_prompt"
	ViolationMissedFinesse      ViolationType = "missed_finesse"
	ViolationBrokenFinesse      ViolationType = "broken_finesse"
	ViolationDoubleDiscard      ViolationType = "double_discard"
	ViolationWrongPrompt        ViolationType = "wrong_prompt"
	ViolationStompedFinesse     ViolationType = "stomped_finesse"
	ViolationMissedFixClue      ViolationType = "missed_fix_clue"
	ViolationMissedSarcastic    ViolationType = "missed_sarcastic_discard"
	ViolationInformationLock    ViolationType = "information_lock"
	ViolationWrongOnesOrder     ViolationType = "wrong_ones_order"
	ViolationMisplayCost        ViolationType = "misplay_cost"
)

// Violation is one convention breach. Turn is 1-indexed and matches the
// action that triggered detection — which is not always the action that
// caused the setup: a clue giver's earlier clue can be blamed on a later
// turn.
type Violation struct {
	Type        ViolationType `json:"type"`
	Severity    Severity      `json:"severity"`
	Turn        int           `json:"turn"`
	Player      string        `json:"player"`
	Card        *engine.Card  `json:"card,omitempty"`
	Description string        `json:"description"`
}

// Summary aggregates a violation list into by-type and by-severity counts.
type Summary struct {
	ByType     map[ViolationType]int `json:"byType"`
	BySeverity map[Severity]int      `json:"bySeverity"`
}

// Summarize builds the count maps for a violation list.
func Summarize(violations []Violation) Summary {
	sum := Summary{
		ByType:     make(map[ViolationType]int),
		BySeverity: make(map[Severity]int),
	}
	for _, v := range violations {
		sum.ByType[v.Type]++
		sum.BySeverity[v.Severity]++
	}
	return sum
}
