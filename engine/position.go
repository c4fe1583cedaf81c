package engine

// ChopIndex returns the lowest index with no direct clue on either axis,
// or -1 if every card is clued. The chop is the default discard.
func (h Hand) ChopIndex() int {
	for i, hc := range h {
		if !hc.Know.Touched() {
			return i
		}
	}
	return -1
}

// FinessePosition returns the highest index with no direct clue on either
// axis, or -1 if every card is clued. On a one-card hand it coincides with
// the chop.
func (h Hand) FinessePosition() int {
	for i := len(h) - 1; i >= 0; i-- {
		if !h[i].Know.Touched() {
			return i
		}
	}
	return -1
}

// ColorMatches returns the slot indices a color clue of the given suit
// would touch.
func (h Hand) ColorMatches(suit uint8) []int {
	var out []int
	for i, hc := range h {
		if hc.Card.Suit == suit {
			out = append(out, i)
		}
	}
	return out
}

// RankMatches returns the slot indices a rank clue of the given rank would
// touch.
func (h Hand) RankMatches(rank uint8) []int {
	var out []int
	for i, hc := range h {
		if hc.Card.Rank == rank {
			out = append(out, i)
		}
	}
	return out
}

// FocusIndex resolves which touched slot carries a clue's primary meaning,
// evaluated against the hand as it was before the clue landed:
//
//   - chop touched → the chop is the focus
//   - otherwise the lowest newly touched slot
//   - pure re-touch → the lowest touched slot
//
// Returns -1 for a clue that touches nothing.
func (h Hand) FocusIndex(touched []int) int {
	if len(touched) == 0 {
		return -1
	}
	chop := h.ChopIndex()
	for _, i := range touched {
		if i == chop {
			return chop
		}
	}
	for _, i := range touched {
		if !h[i].Know.Touched() {
			return i
		}
	}
	return touched[0]
}
