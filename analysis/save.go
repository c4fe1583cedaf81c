package analysis

import (
	"fmt"

	"github.com/Jaholl/hanab-analytics/engine"
)

// checkMissedSave fires when a player spends their turn playing or
// discarding while a teammate has a save-worthy card sitting on chop: a 5,
// the last remaining copy of a needed card, or a 2 whose other copy the
// acting player cannot see. Suppressed at 0 clue tokens, when the acting
// player is playing or discarding a clued card of their own (answering a
// signal), when somebody saves the card within the following round, and
// when an earlier teammate in the current round already passed up the same
// save — blame lands on the first player who could have acted.
func checkMissedSave(ctx *Context) []Violation {
	a := ctx.Action
	if a.Type != engine.ActionPlay && a.Type != engine.ActionDiscard {
		return nil
	}
	if ctx.Before.ClueTokens == 0 {
		return nil
	}
	if hc := ctx.Before.Hands[ctx.Actor][a.Target]; hc.Know.Touched() {
		return nil
	}

	var out []Violation
	for p := range ctx.Players {
		if p == ctx.Actor {
			continue
		}
		hand := ctx.Before.Hands[p]
		chop := hand.ChopIndex()
		if chop < 0 {
			continue
		}
		card := hand[chop].Card
		if !saveWorthy(ctx, card) {
			continue
		}
		if savedSoon(ctx, p, card.DeckIndex) {
			continue
		}
		if earlierSkipper(ctx, p, card.DeckIndex) {
			continue
		}
		out = append(out, Violation{
			Type:     ViolationMissedSave,
			Severity: SeverityWarning,
			Turn:     ctx.Turn(),
			Player:   ctx.ActorName(),
			Card:     &card,
			Description: fmt.Sprintf("%s had a turn while %s's %s sat on chop needing a save",
				ctx.ActorName(), ctx.Name(p), card),
		})
	}
	return out
}

// saveWorthy reports whether a chop card demands a save clue from the
// acting player's perspective.
func saveWorthy(ctx *Context, card engine.Card) bool {
	if ctx.Before.IsTrash(card) {
		return false
	}
	if card.Rank == engine.MaxRank || ctx.Before.IsCritical(card) {
		return true
	}
	return card.Rank == 2 && !ctx.Before.CopyVisibleTo(ctx.Actor, card.Suit, card.Rank, card.DeckIndex)
}

// savedSoon reports whether some teammate clues the endangered card within
// one full round after this action.
func savedSoon(ctx *Context, holder int, deckIndex uint8) bool {
	limit := ctx.Index + ctx.NumPlayers()
	for j := ctx.Index + 1; j <= limit && j < len(ctx.Actions); j++ {
		if !ctx.Actions[j].IsClue() || ctx.Actions[j].Target != holder {
			continue
		}
		for _, slot := range ctx.clueTouched(j) {
			if ctx.States[j].Hands[holder][slot].Card.DeckIndex == deckIndex {
				return true
			}
		}
	}
	return false
}

// earlierSkipper reports whether another teammate already had the same save
// opportunity earlier in the current round; the violation belongs to the
// first player in turn order who could have saved.
func earlierSkipper(ctx *Context, holder int, deckIndex uint8) bool {
	for j := ctx.Index - 1; j >= 0 && j > ctx.Index-ctx.NumPlayers(); j-- {
		actor := ctx.actorOf(j)
		if actor == holder || actor == ctx.Actor {
			continue
		}
		t := ctx.Actions[j].Type
		if t != engine.ActionPlay && t != engine.ActionDiscard {
			continue
		}
		s := &ctx.States[j]
		if s.ClueTokens == 0 {
			continue
		}
		hand := s.Hands[holder]
		chop := hand.ChopIndex()
		if chop >= 0 && hand[chop].Card.DeckIndex == deckIndex {
			return true
		}
	}
	return false
}
