package analysis

import (
	"strings"
	"testing"

	"github.com/Jaholl/hanab-analytics/engine"
)

func TestMissedPrompt(t *testing.T) {
	// Bob's rank-1 clue proves Alice's Yellow 1 playable; she discards an
	// unrelated card anyway.
	deck := "G2,Y1,R3,B3,P3,R2,Y2,G3,B3,P2,Y4,G4"
	actions := []engine.Action{rankClue(1, 4), rankClue(0, 1), discard(0)}
	ctx := ctxAt(t, deck, twoPlayers, actions, 2)
	v := one(t, checkMissedPrompt(ctx), ViolationMissedPrompt)
	if v.Card == nil || v.Card.Suit != 1 || v.Card.Rank != 1 {
		t.Errorf("unexpected card: %+v", v.Card)
	}
}

func TestInformationLock(t *testing.T) {
	// Color plus rank clues pin Alice's Red 1 exactly, and she throws it
	// away.
	deck := "R1,Y2,G2,B2,P2,Y1,G1,B1,Y3,G3,P3,P4"
	actions := []engine.Action{
		rankClue(1, 4),
		colorClue(0, 0),
		rankClue(1, 5),
		rankClue(0, 1),
		discard(0),
	}
	ctx := ctxAt(t, deck, twoPlayers, actions, 4)
	v := one(t, checkInformationLock(ctx), ViolationInformationLock)
	if v.Card == nil || v.Card.Suit != 0 || v.Card.Rank != 1 {
		t.Errorf("unexpected card: %+v", v.Card)
	}
	// Discarding the provably playable card itself is this checker's
	// territory, not the prompt checker's.
	none(t, checkMissedPrompt(ctx))
}

func TestWrongPrompt(t *testing.T) {
	// Bob's red clue focuses the one-away Red 2; Alice answers with the
	// wrong red card.
	deck := "R2,R3,Y4,B4,P4,Y1,G1,B1,P1,G4,Y2"
	actions := []engine.Action{discard(4), colorClue(0, 0), play(1)}
	ctx := ctxAt(t, deck, twoPlayers, actions, 2)
	v := one(t, checkWrongPrompt(ctx), ViolationWrongPrompt)
	if v.Player != "Alice" || v.Card == nil || v.Card.Rank != 3 {
		t.Errorf("unexpected violation: %+v", v)
	}
	if !strings.Contains(v.Description, "Bob") {
		t.Errorf("description %q should name the prompting clue giver", v.Description)
	}
}

// TestWrongPromptUntouched: misplaying an unclued card is an ordinary
// misplay with no prompt to blame.
func TestWrongPromptUntouched(t *testing.T) {
	deck := "R2,R3,Y4,B4,P4,Y1,G1,B1,P1,G4,Y2"
	actions := []engine.Action{discard(4), colorClue(0, 0), play(2)}
	ctx := ctxAt(t, deck, twoPlayers, actions, 2)
	none(t, checkWrongPrompt(ctx))
	one(t, checkMisplay(ctx), ViolationMisplay)
}

// TestWrongPromptExpires: a prompt only excuses the holder's next action;
// once they acted on it the signal is spent.
func TestWrongPromptExpires(t *testing.T) {
	deck := "R2,R3,Y4,B4,P4,Y1,G1,B1,P1,G4,Y2"
	actions := []engine.Action{
		discard(4),
		colorClue(0, 0),
		play(2), // strikes, and uses up Alice's response
		discard(0),
		play(0),
	}
	none(t, checkWrongPrompt(ctxAt(t, deck, twoPlayers, actions, 4)))
}
