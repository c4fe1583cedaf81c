package engine

// SimOptions carries the implementation-defined rule toggles.
type SimOptions struct {
	// BonusClueOnFive awards a clue token when a stack is completed with a
	// rank-5 play. Off by default.
	BonusClueOnFive bool
}

// DefaultSimOptions returns the standard ruleset toggles.
func DefaultSimOptions() SimOptions {
	return SimOptions{BonusClueOnFive: false}
}

// HandSize returns the dealt hand size for a player count: 5 for 2-3
// players, 4 for 4-5.
func HandSize(numPlayers int) int {
	if numPlayers <= 3 {
		return 5
	}
	return 4
}

// Simulate replays the action list with default options. See
// SimulateWithOptions.
func Simulate(deck []Card, players []string, actions []Action) ([]GameState, error) {
	return SimulateWithOptions(deck, players, actions, DefaultSimOptions())
}

// SimulateWithOptions deals the deck and replays every action in order,
// returning len(actions)+1 immutable snapshots: the initial deal plus one
// per action. Structurally impossible actions (slot or player out of
// range, bad clue value, unknown type) fail fast with IllegalActionError.
// Rule violations — misplays, discarding at 8 tokens, clueing at 0 — are
// simulated mechanically and left to the analysis layer.
func SimulateWithOptions(deck []Card, players []string, actions []Action, opts SimOptions) ([]GameState, error) {
	numPlayers := len(players)
	if numPlayers < 2 || numPlayers > 5 {
		return nil, illegalAction(-1, Action{}, "need 2-5 players, got %d", numPlayers)
	}
	handSize := HandSize(numPlayers)
	if len(deck) < numPlayers*handSize {
		return nil, illegalAction(-1, Action{}, "deck of %d cards cannot deal %d players %d cards each",
			len(deck), numPlayers, handSize)
	}

	states := make([]GameState, 0, len(actions)+1)
	states = append(states, *deal(deck, numPlayers, handSize))

	for i, a := range actions {
		prev := &states[len(states)-1]
		next, err := step(prev, deck, i, a, i%numPlayers, opts)
		if err != nil {
			return nil, err
		}
		states = append(states, *next)
	}
	return states, nil
}

// deal builds the turn-0 snapshot: handSize consecutive cards to each seat
// in order, oldest card first.
func deal(deck []Card, numPlayers, handSize int) *GameState {
	s := &GameState{
		Hands:      make([]Hand, numPlayers),
		ClueTokens: MaxClues,
	}
	for p := 0; p < numPlayers; p++ {
		hand := make(Hand, 0, handSize)
		for c := 0; c < handSize; c++ {
			hand = append(hand, HandCard{Card: deck[p*handSize+c], Know: NewKnowledge()})
		}
		s.Hands[p] = hand
	}
	s.DeckDrawn = numPlayers * handSize
	if s.DeckDrawn >= len(deck) {
		s.DeckExhausted = true
		s.FinalTurns = numPlayers
	}
	return s
}

// step derives the snapshot after one action.
func step(prev *GameState, deck []Card, index int, a Action, actor int, opts SimOptions) (*GameState, error) {
	s := prev.Clone()
	wasExhausted := prev.DeckExhausted

	switch a.Type {
	case ActionPlay, ActionDiscard:
		hand := s.Hands[actor]
		if a.Target < 0 || a.Target >= len(hand) {
			return nil, illegalAction(index, a, "slot %d out of range for hand of %d", a.Target, len(hand))
		}
		card := hand[a.Target].Card
		s.Hands[actor] = append(hand[:a.Target:a.Target], hand[a.Target+1:]...)

		if a.Type == ActionDiscard {
			s.DiscardPile = append(s.DiscardPile, card)
			if s.ClueTokens < MaxClues {
				s.ClueTokens++
			}
		} else if s.IsPlayable(card) {
			s.PlayStacks[card.Suit] = card.Rank
			if card.Rank == MaxRank && opts.BonusClueOnFive && s.ClueTokens < MaxClues {
				s.ClueTokens++
			}
		} else {
			if s.Strikes < MaxStrikes {
				s.Strikes++
			}
			s.DiscardPile = append(s.DiscardPile, card)
		}
		s.drawInto(actor, deck)

	case ActionColorClue, ActionRankClue:
		if a.Target < 0 || a.Target >= len(s.Hands) {
			return nil, illegalAction(index, a, "clue target %d out of range for %d players", a.Target, len(s.Hands))
		}
		if a.Type == ActionColorClue && (a.Value < 0 || a.Value >= NumSuits) {
			return nil, illegalAction(index, a, "clue suit %d out of range", a.Value)
		}
		if a.Type == ActionRankClue && (a.Value < 1 || a.Value > MaxRank) {
			return nil, illegalAction(index, a, "clue rank %d out of range", a.Value)
		}
		// Clueing at 0 tokens is a convention-layer violation, not a
		// structural one; the counter just stays pinned at 0.
		if s.ClueTokens > 0 {
			s.ClueTokens--
		}
		hand := s.Hands[a.Target]
		for i := range hand {
			if a.Type == ActionColorClue {
				hand[i].Know.applyColorClue(uint8(a.Value), hand[i].Card.Suit == uint8(a.Value))
			} else {
				hand[i].Know.applyRankClue(uint8(a.Value), hand[i].Card.Rank == uint8(a.Value))
			}
		}

	default:
		return nil, illegalAction(index, a, "unknown action type %d", a.Type)
	}

	if wasExhausted && s.FinalTurns > 0 {
		s.FinalTurns--
	}
	s.TurnNumber = index + 1
	s.CurrentPlayer = (actor + 1) % len(s.Hands)
	return s, nil
}

// drawInto appends the next deck card to the player's hand, flagging
// exhaustion and starting the final-round countdown when the pile empties.
func (s *GameState) drawInto(player int, deck []Card) {
	if s.DeckDrawn < len(deck) {
		s.Hands[player] = append(s.Hands[player], HandCard{Card: deck[s.DeckDrawn], Know: NewKnowledge()})
		s.DeckDrawn++
	}
	if s.DeckDrawn >= len(deck) && !s.DeckExhausted {
		s.DeckExhausted = true
		s.FinalTurns = len(s.Hands)
	}
}
