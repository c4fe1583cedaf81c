package analysis

import (
	"fmt"

	"github.com/Jaholl/hanab-analytics/engine"
)

// clueFocusCard resolves the focus card of the clue at the given action
// index, evaluated against the pre-clue snapshot.
func (c *Context) clueFocusCard(index int) (engine.Card, bool) {
	touched := c.clueTouched(index)
	if len(touched) == 0 {
		return engine.Card{}, false
	}
	hand := c.States[index].Hands[c.Actions[index].Target]
	focus := hand.FocusIndex(touched)
	if focus < 0 {
		return engine.Card{}, false
	}
	return hand[focus].Card, true
}

// checkMissedPrompt fires when a player discards while holding another
// clued card their own knowledge already proves playable. The case where
// the provably playable card is the one being discarded belongs to
// checkInformationLock.
func checkMissedPrompt(ctx *Context) []Violation {
	if ctx.Action.Type != engine.ActionDiscard {
		return nil
	}
	hand := ctx.Before.Hands[ctx.Actor]
	for slot, hc := range hand {
		if slot == ctx.Action.Target {
			continue
		}
		if !knownPlayable(hc.Know, ctx.Before) {
			continue
		}
		card := hc.Card
		return []Violation{{
			Type:     ViolationMissedPrompt,
			Severity: SeverityWarning,
			Turn:     ctx.Turn(),
			Player:   ctx.ActorName(),
			Card:     &card,
			Description: fmt.Sprintf("%s discarded while holding %s, which their clues prove playable",
				ctx.ActorName(), card),
		}}
	}
	return nil
}

// checkInformationLock fires when the discarded card itself was fully
// known — single color and rank remaining — and currently playable.
func checkInformationLock(ctx *Context) []Violation {
	if ctx.Action.Type != engine.ActionDiscard {
		return nil
	}
	hc := ctx.Before.Hands[ctx.Actor][ctx.Action.Target]
	if !hc.Know.FullyKnown() || !ctx.Before.IsPlayable(hc.Card) {
		return nil
	}
	card := hc.Card
	return []Violation{{
		Type:     ViolationInformationLock,
		Severity: SeverityWarning,
		Turn:     ctx.Turn(),
		Player:   ctx.ActorName(),
		Card:     &card,
		Description: fmt.Sprintf("%s discarded %s, a fully known playable card",
			ctx.ActorName(), card),
	}}
}

// checkWrongPrompt fires when a clued card its holder had every reason to
// think playable misplays: either the card's own clue knowledge proved it
// playable and the clues were misleading, or a recent one-away clue
// prompted the holder's clued cards and the wrong copy answered. Such a
// misplay converts the prompt into a finesse signal for the rest of the
// table; the misplaying player carries the violation.
func checkWrongPrompt(ctx *Context) []Violation {
	if !ctx.isMisplay(ctx.Index) {
		return nil
	}
	card, _ := ctx.removedCard(ctx.Index)
	know := ctx.Before.Hands[ctx.Actor][ctx.Action.Target].Know
	if !know.Touched() {
		return nil
	}

	reason := ""
	if knownPlayable(know, ctx.Before) {
		reason = "its clues proved it playable"
	} else if giver, clueTurn, ok := ctx.promptedInto(card, know); ok {
		reason = fmt.Sprintf("%s's clue on turn %d prompted it", ctx.Name(giver), clueTurn)
	} else {
		return nil
	}

	return []Violation{{
		Type:     ViolationWrongPrompt,
		Severity: SeverityWarning,
		Turn:     ctx.Turn(),
		Player:   ctx.ActorName(),
		Card:     &card,
		Description: fmt.Sprintf("%s misplayed %s although %s",
			ctx.ActorName(), card, reason),
	}}
}

// promptedInto reports whether a one-away clue since the actor's previous
// action made the misplayed card look like the connecting card. Deduced
// prompts do not survive a strike.
func (c *Context) promptedInto(card engine.Card, know engine.Knowledge) (giver, clueTurn int, ok bool) {
	for j := c.Index - 1; j >= 0; j-- {
		if c.actorOf(j) == c.Actor {
			return 0, 0, false
		}
		if !c.Actions[j].IsClue() || c.strikeBetween(j, c.Index) {
			continue
		}
		focus, found := c.clueFocusCard(j)
		if !found {
			continue
		}
		before := &c.States[j]
		if focus.Rank != before.PlayStacks[focus.Suit]+2 {
			continue
		}
		suit, rank := focus.Suit, focus.Rank-1
		if know.SuitPossible(suit) && know.RankIsPossible(rank) {
			return c.actorOf(j), j + 1, true
		}
	}
	return 0, 0, false
}
