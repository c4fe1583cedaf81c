package engine

import "fmt"

// ActionType discriminates the four legal move shapes.
type ActionType uint8

const (
	ActionPlay ActionType = iota
	ActionDiscard
	ActionColorClue
	ActionRankClue
)

var actionTypeNames = [...]string{"Play", "Discard", "ColorClue", "RankClue"}

func (t ActionType) String() string {
	if int(t) < len(actionTypeNames) {
		return actionTypeNames[t]
	}
	return fmt.Sprintf("ActionType(%d)", uint8(t))
}

// Action is one immutable entry of a recorded game log. For Play and
// Discard, Target is the acting player's hand slot. For clues, Target is
// the receiving player index and Value the suit index or rank. The acting
// player for action i is i mod playerCount.
type Action struct {
	Type   ActionType `json:"type"`
	Target int        `json:"target"`
	Value  int        `json:"value"`
}

// IsClue reports whether the action spends a clue token.
func (a Action) IsClue() bool {
	return a.Type == ActionColorClue || a.Type == ActionRankClue
}

// IllegalActionError marks a structurally impossible action in the input
// log: a caller bug, not a rule violation. Index identifies the offending
// action.
type IllegalActionError struct {
	Index  int
	Action Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("action %d (%s): %s", e.Index, e.Action.Type, e.Reason)
}

func illegalAction(index int, a Action, format string, args ...interface{}) error {
	return &IllegalActionError{Index: index, Action: a, Reason: fmt.Sprintf(format, args...)}
}
