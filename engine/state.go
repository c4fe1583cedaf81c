package engine

// HandCard pairs a physical card with the knowledge its holder has
// accumulated about it.
type HandCard struct {
	Card Card
	Know Knowledge
}

// Hand is an ordered card sequence, oldest first: index 0 is the chop
// candidate, the highest index is the finesse-position candidate. Draws
// append at the newest end.
type Hand []HandCard

// GameState is one per-turn snapshot. The simulator creates each state
// once and never mutates it afterwards; downstream consumers treat every
// field as read-only.
type GameState struct {
	Hands         []Hand
	PlayStacks    [NumSuits]uint8 // top rank played per suit, 0 = none
	DiscardPile   []Card
	ClueTokens    uint8 // 0..8
	Strikes       uint8 // 0..3
	TurnNumber    int   // 0 = initial deal, then 1..N
	CurrentPlayer int
	DeckDrawn     int // cards drawn from the deck so far
	DeckExhausted bool
	FinalTurns    int // turns remaining in the final round once exhausted
}

// Clone deep-copies the snapshot so the next state can be derived without
// touching this one.
func (s *GameState) Clone() *GameState {
	next := *s
	next.Hands = make([]Hand, len(s.Hands))
	for i, h := range s.Hands {
		next.Hands[i] = append(Hand(nil), h...)
	}
	next.DiscardPile = append([]Card(nil), s.DiscardPile...)
	return &next
}

// IsOver reports whether the game has mechanically ended: three strikes or
// the final-round countdown ran out. The simulator keeps producing states
// past this point; checkers decide what "over" implies.
func (s *GameState) IsOver() bool {
	return s.Strikes >= MaxStrikes || (s.DeckExhausted && s.FinalTurns <= 0)
}

// Score is the number of cards successfully played across all stacks.
func (s *GameState) Score() int {
	total := 0
	for _, top := range s.PlayStacks {
		total += int(top)
	}
	return total
}

// IsPlayable reports whether the card would advance its stack right now.
func (s *GameState) IsPlayable(c Card) bool {
	return c.Rank == s.PlayStacks[c.Suit]+1
}

// IsTrash reports whether the card can never score: its rank is already on
// the stack, or the suit can no longer reach it.
func (s *GameState) IsTrash(c Card) bool {
	if s.PlayStacks[c.Suit] >= c.Rank {
		return true
	}
	return s.suitDeadBelow(c.Suit, c.Rank)
}

// DiscardedCount counts discarded copies of the given identity.
func (s *GameState) DiscardedCount(suit, rank uint8) int {
	n := 0
	for _, c := range s.DiscardPile {
		if c.Suit == suit && c.Rank == rank {
			n++
		}
	}
	return n
}

// IsSuitDead reports whether the suit can never advance again: every copy
// of the lowest unplayed rank is in the discard pile.
func (s *GameState) IsSuitDead(suit uint8) bool {
	next := s.PlayStacks[suit] + 1
	if next > MaxRank {
		return false // complete, not dead
	}
	return s.DiscardedCount(suit, next) >= CopyCount(next)
}

// suitDeadBelow reports whether some rank in (stack, rank) is fully
// discarded, making every copy of rank and above future trash.
func (s *GameState) suitDeadBelow(suit, rank uint8) bool {
	for r := s.PlayStacks[suit] + 1; r < rank; r++ {
		if s.DiscardedCount(suit, r) >= CopyCount(r) {
			return true
		}
	}
	return false
}

// IsCritical reports whether c is the last remaining copy of a card that
// is still needed: not yet played, suit not dead below it, and every other
// copy discarded.
func (s *GameState) IsCritical(c Card) bool {
	if s.IsTrash(c) {
		return false
	}
	return s.DiscardedCount(c.Suit, c.Rank) >= CopyCount(c.Rank)-1
}

// CopyVisibleTo reports whether a copy of (suit, rank) other than the card
// at excludeDeckIndex sits in a hand the viewer can see. A player never
// sees their own hand.
func (s *GameState) CopyVisibleTo(viewer int, suit, rank uint8, excludeDeckIndex uint8) bool {
	for p, hand := range s.Hands {
		if p == viewer {
			continue
		}
		for _, hc := range hand {
			if hc.Card.Suit == suit && hc.Card.Rank == rank && hc.Card.DeckIndex != excludeDeckIndex {
				return true
			}
		}
	}
	return false
}

// TouchedElsewhere reports whether a clued copy of (suit, rank) other than
// excludeDeckIndex sits in any hand except the excluded player's. Pass
// exceptPlayer = -1 to scan every hand.
func (s *GameState) TouchedElsewhere(exceptPlayer int, suit, rank uint8, excludeDeckIndex uint8) bool {
	for p, hand := range s.Hands {
		if p == exceptPlayer {
			continue
		}
		for _, hc := range hand {
			if hc.Card.Suit == suit && hc.Card.Rank == rank &&
				hc.Card.DeckIndex != excludeDeckIndex && hc.Know.Touched() {
				return true
			}
		}
	}
	return false
}

// FindDeckIndex locates a card by its stable deck index. Returns the
// holding player and slot, or (-1, -1) if it is not in any hand.
func (s *GameState) FindDeckIndex(deckIndex uint8) (player, slot int) {
	for p, hand := range s.Hands {
		for i, hc := range hand {
			if hc.Card.DeckIndex == deckIndex {
				return p, i
			}
		}
	}
	return -1, -1
}
