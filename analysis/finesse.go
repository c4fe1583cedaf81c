package analysis

import (
	"fmt"

	"github.com/Jaholl/hanab-analytics/engine"
)

// finesseRead is the interpretation of one clue as a finesse attempt: the
// clue's focus needs exactly one more card of its suit, and the next player
// holding an unclued slot is expected to blind-play it from finesse
// position.
type finesseRead struct {
	clueIndex   int
	giver       int
	target      int
	holder      int
	holderSlot  int         // holder's finesse position at clue time
	connectSuit uint8       // identity the blind-play must supply
	connectRank uint8
	actual      engine.Card // card actually sitting in finesse position
	valid       bool        // actual matches the connecting identity
	bluffable   bool        // actual is independently playable (bluff)
}

// readFinesse interprets the clue at the given action index as a finesse.
// Returns nil when the clue does not set one up: not one-away, an
// early-game 5 stall, a prompt (the connecting card is already clued
// somewhere), or no candidate holder.
func (c *Context) readFinesse(index int) *finesseRead {
	a := c.Actions[index]
	if !a.IsClue() {
		return nil
	}
	giver := c.actorOf(index)
	before := &c.States[index]
	touched := c.clueTouched(index)
	if len(touched) == 0 {
		return nil
	}

	hand := before.Hands[a.Target]
	focus := hand.FocusIndex(touched)
	if focus < 0 {
		return nil
	}
	focusCard := hand[focus].Card
	if focusCard.Rank != before.PlayStacks[focusCard.Suit]+2 {
		return nil // not one-away
	}

	// Off-chop 5s in the early game are stalls, never play signals.
	if a.Type == engine.ActionRankClue && a.Value == engine.MaxRank &&
		focus != hand.ChopIndex() && c.earlyGame(index) {
		return nil
	}

	connectSuit, connectRank := focusCard.Suit, focusCard.Rank-1

	// If a clued copy of the connecting card exists anywhere, the clue is a
	// prompt on that copy, not a finesse.
	if before.TouchedElsewhere(-1, connectSuit, connectRank, focusCard.DeckIndex) {
		return nil
	}

	// Candidate holder: first player after the giver, skipping the clue
	// target, with an unclued finesse position.
	n := c.NumPlayers()
	for k := 1; k < n; k++ {
		p := (giver + k) % n
		if p == a.Target {
			continue
		}
		slot := before.Hands[p].FinessePosition()
		if slot < 0 {
			continue
		}
		actual := before.Hands[p][slot].Card
		return &finesseRead{
			clueIndex:   index,
			giver:       giver,
			target:      a.Target,
			holder:      p,
			holderSlot:  slot,
			connectSuit: connectSuit,
			connectRank: connectRank,
			actual:      actual,
			valid:       actual.Suit == connectSuit && actual.Rank == connectRank,
			bluffable:   before.IsPlayable(actual),
		}
	}
	return nil
}

// pendingFinesseOn returns the most recent valid finesse read whose holder
// is the given player, set up after the holder's previous action and still
// unanswered at action index limit. Deduced information does not survive a
// strike.
func (c *Context) pendingFinesseOn(holder, limit int) *finesseRead {
	for j := limit - 1; j >= 0; j-- {
		if c.actorOf(j) == holder {
			return nil // holder already acted since; nothing pending
		}
		f := c.readFinesse(j)
		if f == nil || f.holder != holder || !f.valid {
			continue
		}
		if c.strikeBetween(j, limit) {
			return nil
		}
		return f
	}
	return nil
}

// checkMissedFinesse fires on the holder's first action after a valid
// finesse when they fail to blind-play the connecting card. Suppressed if
// the connecting card was directly clued in the meantime (see
// checkStompedFinesse) or a strike reset deduced information.
func checkMissedFinesse(ctx *Context) []Violation {
	f := ctx.pendingFinesseOn(ctx.Actor, ctx.Index)
	if f == nil {
		return nil
	}
	// Stomped in the meantime: the blind-play obligation is void.
	if cluedBetween(ctx, f.clueIndex, ctx.Index, f.holder, f.actual.DeckIndex) {
		return nil
	}
	if ctx.Action.Type == engine.ActionPlay {
		if card, ok := ctx.removedCard(ctx.Index); ok && card.DeckIndex == f.actual.DeckIndex {
			return nil // finesse answered
		}
	}
	return []Violation{{
		Type:     ViolationMissedFinesse,
		Severity: SeverityWarning,
		Turn:     ctx.Turn(),
		Player:   ctx.ActorName(),
		Card:     &f.actual,
		Description: fmt.Sprintf("%s did not blind-play %s from finesse position after %s's finesse on turn %d",
			ctx.ActorName(), f.actual, ctx.Name(f.giver), f.clueIndex+1),
	}}
}

// checkBrokenFinesse fires at the clue itself when the setup is invalid:
// the card actually in the expected finesse position is not the connecting
// card. A bluff — the occupant is independently playable — is a legitimate
// signal and suppresses the violation.
func checkBrokenFinesse(ctx *Context) []Violation {
	f := ctx.readFinesse(ctx.Index)
	if f == nil || f.valid || f.bluffable {
		return nil
	}
	need := engine.Card{Suit: f.connectSuit, Rank: f.connectRank}
	return []Violation{{
		Type:     ViolationBrokenFinesse,
		Severity: SeverityWarning,
		Turn:     ctx.Turn(),
		Player:   ctx.Name(f.giver),
		Card:     &f.actual,
		Description: fmt.Sprintf("%s's clue promised %s in %s's finesse position, which holds %s",
			ctx.Name(f.giver), need, ctx.Name(f.holder), f.actual),
	}}
}

// checkStompedFinesse fires on a clue that directly touches a card an
// active finesse was already going to get blind-played, wasting a token.
func checkStompedFinesse(ctx *Context) []Violation {
	if !ctx.Action.IsClue() {
		return nil
	}
	target := ctx.Action.Target
	f := ctx.pendingFinesseOn(target, ctx.Index)
	if f == nil {
		return nil
	}
	for _, slot := range ctx.clueTouched(ctx.Index) {
		if ctx.Before.Hands[target][slot].Card.DeckIndex == f.actual.DeckIndex {
			return []Violation{{
				Type:     ViolationStompedFinesse,
				Severity: SeverityInfo,
				Turn:     ctx.Turn(),
				Player:   ctx.ActorName(),
				Card:     &f.actual,
				Description: fmt.Sprintf("%s clued %s directly although %s's finesse on turn %d already reached it",
					ctx.ActorName(), f.actual, ctx.Name(f.giver), f.clueIndex+1),
			}}
		}
	}
	return nil
}

// cluedBetween reports whether the card with the given deck index, held by
// player, was directly touched by a clue in the action range (from, to).
func cluedBetween(ctx *Context, from, to, player int, deckIndex uint8) bool {
	for j := from + 1; j < to; j++ {
		if !ctx.Actions[j].IsClue() || ctx.Actions[j].Target != player {
			continue
		}
		for _, slot := range ctx.clueTouched(j) {
			if ctx.States[j].Hands[player][slot].Card.DeckIndex == deckIndex {
				return true
			}
		}
	}
	return false
}
