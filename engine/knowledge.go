package engine

import "math/bits"

// Knowledge accumulates everything clues have told a player about one card
// in their own hand. Each axis is a 5-bit possibility set: bit s of
// ColorPossible means suit s is still possible, bit r-1 of RankPossible
// means rank r is still possible. A matching clue collapses the axis to a
// single bit; a non-matching clue clears one bit (negative information).
//
// The touched flags record direct touches only. Negative information
// narrows the possibility sets but does not make a card "clued" for
// chop/finesse purposes.
type Knowledge struct {
	ColorPossible uint8
	RankPossible  uint8
	ColorTouched  bool
	RankTouched   bool
}

const allBits = (1 << NumSuits) - 1

// NewKnowledge returns the blank slate for a freshly drawn card: every suit
// and rank possible, nothing touched.
func NewKnowledge() Knowledge {
	return Knowledge{ColorPossible: allBits, RankPossible: allBits}
}

// Touched reports whether any clue has directly touched this card.
func (k Knowledge) Touched() bool { return k.ColorTouched || k.RankTouched }

// FullyKnown reports whether exactly one color and one rank remain possible.
func (k Knowledge) FullyKnown() bool {
	return bits.OnesCount8(k.ColorPossible) == 1 && bits.OnesCount8(k.RankPossible) == 1
}

// KnownSuit returns the single remaining suit, if the color axis is down to
// one possibility.
func (k Knowledge) KnownSuit() (uint8, bool) {
	if bits.OnesCount8(k.ColorPossible) != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros8(k.ColorPossible)), true
}

// KnownRank returns the single remaining rank, if the rank axis is down to
// one possibility.
func (k Knowledge) KnownRank() (uint8, bool) {
	if bits.OnesCount8(k.RankPossible) != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros8(k.RankPossible)) + 1, true
}

// SuitPossible reports whether suit s is still in the possibility set.
func (k Knowledge) SuitPossible(s uint8) bool { return k.ColorPossible&(1<<s) != 0 }

// RankIsPossible reports whether rank r is still in the possibility set.
func (k Knowledge) RankIsPossible(r uint8) bool { return k.RankPossible&(1<<(r-1)) != 0 }

// applyColorClue updates the knowledge for a color clue of the given suit.
// match is whether this card's actual suit equals the clue suit.
func (k *Knowledge) applyColorClue(suit uint8, match bool) {
	if match {
		k.ColorPossible = 1 << suit
		k.ColorTouched = true
	} else {
		k.ColorPossible &^= 1 << suit
	}
}

// applyRankClue updates the knowledge for a rank clue of the given rank.
func (k *Knowledge) applyRankClue(rank uint8, match bool) {
	if match {
		k.RankPossible = 1 << (rank - 1)
		k.RankTouched = true
	} else {
		k.RankPossible &^= 1 << (rank - 1)
	}
}
