package analysis

import (
	"fmt"

	"github.com/Jaholl/hanab-analytics/engine"
)

// checkDoubleDiscard fires when a player discards their chop immediately
// after the previous player discarded theirs, while the new chop card is
// not trash and an alternative (a clue token, or a provably playable card)
// was available. Back-to-back chop discards risk burning both copies of
// the same card.
func checkDoubleDiscard(ctx *Context) []Violation {
	if ctx.Action.Type != engine.ActionDiscard || ctx.Index == 0 {
		return nil
	}
	hand := ctx.Before.Hands[ctx.Actor]
	if ctx.Action.Target != hand.ChopIndex() {
		return nil
	}

	prev := ctx.Actions[ctx.Index-1]
	if prev.Type != engine.ActionDiscard {
		return nil
	}
	prevActor := ctx.actorOf(ctx.Index - 1)
	if prev.Target != ctx.States[ctx.Index-1].Hands[prevActor].ChopIndex() {
		return nil
	}

	card := hand[ctx.Action.Target].Card
	if ctx.Before.IsTrash(card) {
		return nil
	}

	alternative := ctx.Before.ClueTokens > 0
	if !alternative {
		for _, hc := range hand {
			if knownPlayable(hc.Know, ctx.Before) {
				alternative = true
				break
			}
		}
	}
	if !alternative {
		return nil
	}

	return []Violation{{
		Type:     ViolationDoubleDiscard,
		Severity: SeverityWarning,
		Turn:     ctx.Turn(),
		Player:   ctx.ActorName(),
		Card:     &card,
		Description: fmt.Sprintf("%s chop-discarded %s right after %s's chop discard with alternatives available",
			ctx.ActorName(), card, ctx.Name(prevActor)),
	}}
}

// checkMissedSarcastic fires when a player holds a fully known, unplayable
// duplicate of a card clued in a teammate's hand and discards something
// else. Discarding the duplicate would have transferred its information.
func checkMissedSarcastic(ctx *Context) []Violation {
	if ctx.Action.Type != engine.ActionDiscard {
		return nil
	}
	hand := ctx.Before.Hands[ctx.Actor]
	for slot, hc := range hand {
		if slot == ctx.Action.Target || !hc.Know.FullyKnown() {
			continue
		}
		card := hc.Card
		if ctx.Before.IsPlayable(card) {
			continue
		}
		if !ctx.Before.TouchedElsewhere(ctx.Actor, card.Suit, card.Rank, card.DeckIndex) {
			continue
		}
		return []Violation{{
			Type:     ViolationMissedSarcastic,
			Severity: SeverityInfo,
			Turn:     ctx.Turn(),
			Player:   ctx.ActorName(),
			Card:     &card,
			Description: fmt.Sprintf("%s discarded a different card while holding %s, a known duplicate to give away sarcastically",
				ctx.ActorName(), card),
		}}
	}
	return nil
}

// checkWrongOnesOrder fires when a hand holds several playable cards clued
// as ones and a newer one is played before an older one. Ones are played
// oldest first so teammates can read the order.
func checkWrongOnesOrder(ctx *Context) []Violation {
	if ctx.Action.Type != engine.ActionPlay {
		return nil
	}
	hand := ctx.Before.Hands[ctx.Actor]
	played := hand[ctx.Action.Target]
	if !cluedAsOne(played.Know) || !ctx.Before.IsPlayable(played.Card) {
		return nil
	}
	for slot := 0; slot < ctx.Action.Target; slot++ {
		if cluedAsOne(hand[slot].Know) && ctx.Before.IsPlayable(hand[slot].Card) {
			card := played.Card
			return []Violation{{
				Type:     ViolationWrongOnesOrder,
				Severity: SeverityInfo,
				Turn:     ctx.Turn(),
				Player:   ctx.ActorName(),
				Card:     &card,
				Description: fmt.Sprintf("%s played %s before the older clued one at slot %d",
					ctx.ActorName(), card, slot),
			}}
		}
	}
	return nil
}

// cluedAsOne reports whether a card was rank-clued down to rank 1.
func cluedAsOne(k engine.Knowledge) bool {
	rank, ok := k.KnownRank()
	return ok && k.RankTouched && rank == 1
}
