package analysis

import "github.com/Jaholl/hanab-analytics/engine"

// Context is the shared, read-only input every checker receives for one
// action. It carries the adjacent before/after snapshots plus the entire
// history, so multi-turn conventions (deferred finesses, post-strike
// resets, sarcastic discards) are answered by rolling-window queries
// instead of mutable running state.
type Context struct {
	Before  *engine.GameState
	After   *engine.GameState
	Action  engine.Action
	Index   int // 0-based action index
	Actor   int
	Players []string
	Actions []engine.Action
	States  []engine.GameState
	Level   Level
}

// Turn is the 1-indexed turn number of the action under examination.
func (c *Context) Turn() int { return c.Index + 1 }

// NumPlayers returns the seat count.
func (c *Context) NumPlayers() int { return len(c.Players) }

// Name returns a player's display name.
func (c *Context) Name(player int) string { return c.Players[player] }

// ActorName returns the acting player's display name.
func (c *Context) ActorName() string { return c.Players[c.Actor] }

// actorOf returns the acting player for any action index.
func (c *Context) actorOf(index int) int { return index % len(c.Players) }

// stateBefore returns the snapshot in effect before the given action.
func (c *Context) stateBefore(index int) *engine.GameState { return &c.States[index] }

// removedCard returns the card a Play or Discard action removed from the
// acting player's hand, read from the pre-action snapshot.
func (c *Context) removedCard(index int) (engine.Card, bool) {
	a := c.Actions[index]
	if a.Type != engine.ActionPlay && a.Type != engine.ActionDiscard {
		return engine.Card{}, false
	}
	hand := c.States[index].Hands[c.actorOf(index)]
	if a.Target < 0 || a.Target >= len(hand) {
		return engine.Card{}, false
	}
	return hand[a.Target].Card, true
}

// clueTouched returns the slot indices the clue at the given action index
// touched in its target hand, evaluated against the pre-clue snapshot.
// Returns nil for non-clue actions.
func (c *Context) clueTouched(index int) []int {
	a := c.Actions[index]
	if !a.IsClue() {
		return nil
	}
	hand := c.States[index].Hands[a.Target]
	if a.Type == engine.ActionColorClue {
		return hand.ColorMatches(uint8(a.Value))
	}
	return hand.RankMatches(uint8(a.Value))
}

// nextActionOf returns the index of the player's first action after the
// given index, or -1 if they never act again.
func (c *Context) nextActionOf(player, after int) int {
	for i := after + 1; i < len(c.Actions); i++ {
		if c.actorOf(i) == player {
			return i
		}
	}
	return -1
}

// isMisplay reports whether the action at index is a play that did not
// advance a stack.
func (c *Context) isMisplay(index int) bool {
	if c.Actions[index].Type != engine.ActionPlay {
		return false
	}
	card, ok := c.removedCard(index)
	return ok && !c.States[index].IsPlayable(card)
}

// strikeBetween reports whether any strike landed in the half-open action
// range [from, to). Deduced (finesse/prompt) information does not survive
// a strike; explicit clue knowledge does.
func (c *Context) strikeBetween(from, to int) bool {
	return c.States[to].Strikes > c.States[from].Strikes
}

// earlyGame reports whether no deliberate discard has happened before the
// given action — the window in which off-chop 5 clues read as stalls.
func (c *Context) earlyGame(index int) bool {
	for i := 0; i < index; i++ {
		if c.Actions[i].Type == engine.ActionDiscard {
			return false
		}
	}
	return true
}

// knownPlayable reports whether a card's accumulated clue knowledge makes
// it unambiguously playable: it has been touched, and every identity still
// possible would advance a stack right now.
func knownPlayable(k engine.Knowledge, s *engine.GameState) bool {
	if !k.Touched() {
		return false
	}
	any := false
	for suit := uint8(0); suit < engine.NumSuits; suit++ {
		if !k.SuitPossible(suit) {
			continue
		}
		for rank := uint8(1); rank <= engine.MaxRank; rank++ {
			if !k.RankIsPossible(rank) {
				continue
			}
			any = true
			if s.PlayStacks[suit]+1 != rank {
				return false
			}
		}
	}
	return any
}
