package analysis

import (
	"fmt"

	"github.com/Jaholl/hanab-analytics/engine"
)

// checkMissedFixClue fires at a misplay of a clued-but-wrong card (trash,
// or a duplicate of an already clued copy) when the immediately preceding
// player spent their turn on a clue that did not fix it. Blame goes to
// that player: they saw the misread coming and clued past it.
func checkMissedFixClue(ctx *Context) []Violation {
	prev, card, ok := preventableMisplay(ctx)
	if !ok {
		return nil
	}
	prevAction := ctx.Actions[ctx.Index-1]
	if !prevAction.IsClue() {
		return nil
	}
	if !ctx.Before.Hands[ctx.Actor][ctx.Action.Target].Know.Touched() {
		return nil
	}
	misread := ctx.States[ctx.Index-1].IsTrash(card) ||
		ctx.States[ctx.Index-1].TouchedElsewhere(ctx.Actor, card.Suit, card.Rank, card.DeckIndex)
	if !misread {
		return nil
	}
	// Did the preceding clue touch the doomed card? Then it was a fix
	// attempt, however it was read.
	if prevAction.Target == ctx.Actor {
		for _, slot := range ctx.clueTouched(ctx.Index - 1) {
			if ctx.States[ctx.Index-1].Hands[ctx.Actor][slot].Card.DeckIndex == card.DeckIndex {
				return nil
			}
		}
	}
	return []Violation{{
		Type:     ViolationMissedFixClue,
		Severity: SeverityWarning,
		Turn:     ctx.Turn(),
		Player:   ctx.Name(prev),
		Card:     &card,
		Description: fmt.Sprintf("%s clued elsewhere instead of fixing %s, which %s then misplayed",
			ctx.Name(prev), card, ctx.ActorName()),
	}}
}

// checkMisplayCost fires at a misplay when the immediately preceding
// player had a clue token available and chose a non-clue action, passing
// up the clue that would have prevented it.
func checkMisplayCost(ctx *Context) []Violation {
	prev, card, ok := preventableMisplay(ctx)
	if !ok {
		return nil
	}
	prevAction := ctx.Actions[ctx.Index-1]
	if prevAction.IsClue() {
		return nil // fix-clue territory
	}
	if ctx.States[ctx.Index-1].ClueTokens == 0 {
		return nil
	}
	return []Violation{{
		Type:     ViolationMisplayCost,
		Severity: SeverityWarning,
		Turn:     ctx.Turn(),
		Player:   ctx.Name(prev),
		Card:     &card,
		Description: fmt.Sprintf("%s had a clue available but let %s misplay %s",
			ctx.Name(prev), ctx.ActorName(), card),
	}}
}

// preventableMisplay reports whether the current action is a misplay the
// immediately preceding player could have seen coming: it exists, it was
// taken by a different player, and the misplayed card was visible to them.
func preventableMisplay(ctx *Context) (prevActor int, card engine.Card, ok bool) {
	if ctx.Index == 0 || !ctx.isMisplay(ctx.Index) {
		return 0, engine.Card{}, false
	}
	prevActor = ctx.actorOf(ctx.Index - 1)
	if prevActor == ctx.Actor {
		return 0, engine.Card{}, false
	}
	card, _ = ctx.removedCard(ctx.Index)
	return prevActor, card, true
}
