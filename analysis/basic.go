package analysis

import (
	"fmt"

	"github.com/Jaholl/hanab-analytics/engine"
)

// checkMisplay fires on any play that did not advance a stack. Purely
// mechanical: a blind-play that happens to be playable never reaches here,
// and an unplayable one is a misplay no matter what signal motivated it.
func checkMisplay(ctx *Context) []Violation {
	if !ctx.isMisplay(ctx.Index) {
		return nil
	}
	card, _ := ctx.removedCard(ctx.Index)
	return []Violation{{
		Type:     ViolationMisplay,
		Severity: SeverityCritical,
		Turn:     ctx.Turn(),
		Player:   ctx.ActorName(),
		Card:     &card,
		Description: fmt.Sprintf("%s played %s, but the %s stack was at %d",
			ctx.ActorName(), card, engine.SuitName(card.Suit), ctx.Before.PlayStacks[card.Suit]),
	}}
}

// checkBadDiscardFive fires when a rank-5 card is discarded. Fives are
// unique, so this always throws away a stack.
func checkBadDiscardFive(ctx *Context) []Violation {
	if ctx.Action.Type != engine.ActionDiscard {
		return nil
	}
	card, ok := ctx.removedCard(ctx.Index)
	if !ok || card.Rank != engine.MaxRank {
		return nil
	}
	return []Violation{{
		Type:        ViolationBadDiscard5,
		Severity:    SeverityCritical,
		Turn:        ctx.Turn(),
		Player:      ctx.ActorName(),
		Card:        &card,
		Description: fmt.Sprintf("%s discarded %s, the only copy of a five", ctx.ActorName(), card),
	}}
}

// checkBadDiscardCritical fires when the discarded card was the last
// remaining copy of a card a live suit still needs. Fives are excluded
// here — checkBadDiscardFive owns them.
func checkBadDiscardCritical(ctx *Context) []Violation {
	if ctx.Action.Type != engine.ActionDiscard {
		return nil
	}
	card, ok := ctx.removedCard(ctx.Index)
	if !ok || card.Rank == engine.MaxRank || !ctx.Before.IsCritical(card) {
		return nil
	}
	return []Violation{{
		Type:        ViolationBadDiscardCritical,
		Severity:    SeverityCritical,
		Turn:        ctx.Turn(),
		Player:      ctx.ActorName(),
		Card:        &card,
		Description: fmt.Sprintf("%s discarded %s, the last remaining copy", ctx.ActorName(), card),
	}}
}

// checkIllegalDiscard fires when a player discards at 8 clue tokens, which
// the rules forbid. The simulator applies the discard mechanically and
// caps the counter; the violation lives here.
func checkIllegalDiscard(ctx *Context) []Violation {
	if ctx.Action.Type != engine.ActionDiscard || ctx.Before.ClueTokens < engine.MaxClues {
		return nil
	}
	card, _ := ctx.removedCard(ctx.Index)
	return []Violation{{
		Type:        ViolationIllegalDiscard,
		Severity:    SeverityCritical,
		Turn:        ctx.Turn(),
		Player:      ctx.ActorName(),
		Card:        &card,
		Description: fmt.Sprintf("%s discarded %s at %d clue tokens; discarding at the token cap is illegal", ctx.ActorName(), card, engine.MaxClues),
	}}
}

// checkIllegalClue fires when a clue is given with no clue tokens left.
func checkIllegalClue(ctx *Context) []Violation {
	if !ctx.Action.IsClue() || ctx.Before.ClueTokens > 0 {
		return nil
	}
	return []Violation{{
		Type:        ViolationIllegalClue,
		Severity:    SeverityCritical,
		Turn:        ctx.Turn(),
		Player:      ctx.ActorName(),
		Description: fmt.Sprintf("%s gave a clue to %s with 0 clue tokens", ctx.ActorName(), ctx.Name(ctx.Action.Target)),
	}}
}
