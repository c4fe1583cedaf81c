package analysis

import (
	"fmt"

	"github.com/Jaholl/hanab-analytics/engine"
)

// checkMinClueValue fires on clues that teach nothing new: every touched
// card was already clued (or the clue touched nothing at all). Two
// recognized signals are exempt: a tempo re-touch of a currently playable
// card, and an early-game off-chop 5 stall.
func checkMinClueValue(ctx *Context) []Violation {
	if !ctx.Action.IsClue() {
		return nil
	}
	touched := ctx.clueTouched(ctx.Index)
	target := ctx.Action.Target
	if len(touched) == 0 {
		return []Violation{{
			Type:        ViolationMinClueValue,
			Severity:    SeverityWarning,
			Turn:        ctx.Turn(),
			Player:      ctx.ActorName(),
			Description: fmt.Sprintf("%s gave %s a clue touching no cards", ctx.ActorName(), ctx.Name(target)),
		}}
	}

	hand := ctx.Before.Hands[target]
	for _, i := range touched {
		if !hand[i].Know.Touched() {
			return nil // taught something new
		}
	}

	// Pure re-touch. A tempo clue — re-touching a card that is playable
	// right now — is a legitimate signal.
	for _, i := range touched {
		if ctx.Before.IsPlayable(hand[i].Card) {
			return nil
		}
	}

	// An off-chop 5 clue before the first discard is a stall, not waste.
	if ctx.Action.Type == engine.ActionRankClue && ctx.Action.Value == engine.MaxRank && ctx.earlyGame(ctx.Index) {
		return nil
	}

	focus := hand[touched[0]].Card
	return []Violation{{
		Type:     ViolationMinClueValue,
		Severity: SeverityWarning,
		Turn:     ctx.Turn(),
		Player:   ctx.ActorName(),
		Card:     &focus,
		Description: fmt.Sprintf("%s re-clued %s in %s's hand without teaching anything new",
			ctx.ActorName(), focus, ctx.Name(target)),
	}}
}

// checkGoodTouch enforces the good-touch principle: clues should only
// touch cards that will eventually be played. Touching trash, future trash
// in a dead suit, or a duplicate of a card already clued in a hand the
// giver can see all violate it.
func checkGoodTouch(ctx *Context) []Violation {
	if !ctx.Action.IsClue() {
		return nil
	}
	target := ctx.Action.Target
	touched := ctx.clueTouched(ctx.Index)
	hand := ctx.Before.Hands[target]

	var out []Violation
	for n, i := range touched {
		if hand[i].Know.Touched() {
			continue // re-touches are MCVP's concern
		}
		card := hand[i].Card

		if ctx.Before.IsTrash(card) {
			// A color clue sweeping a finished suit cannot avoid its
			// leftovers; that touch is tolerated.
			if ctx.Action.Type == engine.ActionColorClue && ctx.Before.PlayStacks[card.Suit] == engine.MaxRank {
				continue
			}
			reason := "is already played"
			if ctx.Before.PlayStacks[card.Suit] < card.Rank {
				reason = fmt.Sprintf("can never be played; the %s suit is dead below it", engine.SuitName(card.Suit))
			}
			out = append(out, Violation{
				Type:        ViolationBadTouch,
				Severity:    SeverityWarning,
				Turn:        ctx.Turn(),
				Player:      ctx.ActorName(),
				Card:        &card,
				Description: fmt.Sprintf("%s clued %s in %s's hand, which %s", ctx.ActorName(), card, ctx.Name(target), reason),
			})
			continue
		}

		dup := ctx.Before.TouchedElsewhere(ctx.Actor, card.Suit, card.Rank, card.DeckIndex)
		if !dup {
			// Two copies swept by the same clue duplicate each other;
			// report only the later slot.
			for _, j := range touched[:n] {
				if hand[j].Card.Suit == card.Suit && hand[j].Card.Rank == card.Rank {
					dup = true
					break
				}
			}
		}
		if dup && !ctx.duplicateResolved(card.Suit, card.Rank) {
			out = append(out, Violation{
				Type:        ViolationBadTouch,
				Severity:    SeverityWarning,
				Turn:        ctx.Turn(),
				Player:      ctx.ActorName(),
				Card:        &card,
				Description: fmt.Sprintf("%s clued %s in %s's hand, duplicating an already clued copy", ctx.ActorName(), card, ctx.Name(target)),
			})
		}
	}
	return out
}

// duplicateResolved reports whether a touched duplicate later became
// harmless: one copy got discarded, or the identity was played and turned
// the rest to trash.
func (c *Context) duplicateResolved(suit, rank uint8) bool {
	for j := c.Index + 1; j < len(c.Actions); j++ {
		if c.Actions[j].Type != engine.ActionDiscard {
			continue
		}
		if card, ok := c.removedCard(j); ok && card.Suit == suit && card.Rank == rank {
			return true
		}
	}
	return c.States[len(c.States)-1].PlayStacks[suit] >= rank
}
