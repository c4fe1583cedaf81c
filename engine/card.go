// Package engine implements a rules-accurate Hanabi replay simulator.
//
// The package turns a recorded deck order and action list into an exact
// sequence of immutable game snapshots. It enforces every mechanical rule
// (token economy, strikes, stack advancement, draws, end-game countdown)
// but never rejects rule violations — those are data for the analysis
// layer, not errors.
package engine

import "fmt"

const (
	NumSuits   = 5
	MaxRank    = 5
	DeckSize   = 50 // 10 cards per suit: three 1s, two each of 2-4, one 5
	MaxClues   = 8
	MaxStrikes = 3
)

// Card is an immutable description of a single physical card. Identity is
// positional: DeckIndex is the card's position in the original deck order
// and stays stable for the whole game, so duplicates of the same suit/rank
// remain distinguishable.
type Card struct {
	Suit      uint8 // 0..4
	Rank      uint8 // 1..5
	DeckIndex uint8
}

var suitNames = [NumSuits]string{"Red", "Yellow", "Green", "Blue", "Purple"}

// SuitName returns the display name for a suit index ("Red", "Yellow", ...).
func SuitName(suit uint8) string {
	if suit >= NumSuits {
		return "Unknown"
	}
	return suitNames[suit]
}

// SuitLetters holds the one-letter suit codes used in deck strings.
const SuitLetters = "RYGBP"

// String renders the card the way violation descriptions expect it,
// e.g. "Red 5".
func (c Card) String() string {
	return fmt.Sprintf("%s %d", SuitName(c.Suit), c.Rank)
}

// CopyCount returns how many physical copies of the given rank exist per
// suit in the standard deck.
func CopyCount(rank uint8) int {
	switch rank {
	case 1:
		return 3
	case 2, 3, 4:
		return 2
	case 5:
		return 1
	}
	return 0
}

// StandardDeck builds the 50-card deck in canonical suit-major order:
// for each suit, 1,1,1,2,2,3,3,4,4,5. Real game exports carry their own
// shuffled order; this is the reference composition.
func StandardDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	idx := uint8(0)
	for suit := uint8(0); suit < NumSuits; suit++ {
		for rank := uint8(1); rank <= MaxRank; rank++ {
			for n := 0; n < CopyCount(rank); n++ {
				deck = append(deck, Card{Suit: suit, Rank: rank, DeckIndex: idx})
				idx++
			}
		}
	}
	return deck
}
