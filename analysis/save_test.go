package analysis

import (
	"strings"
	"testing"

	"github.com/Jaholl/hanab-analytics/engine"
)

func TestMissedSaveFires(t *testing.T) {
	// Bob's chop is the Red 5 and Alice discards anyway.
	deck := "R1,R2,Y1,B1,G1,R5,Y2,B2,G2,P1,R3,Y3"
	ctx := ctxAt(t, deck, twoPlayers, []engine.Action{discard(0)}, 0)
	v := one(t, checkMissedSave(ctx), ViolationMissedSave)
	if v.Player != "Alice" || v.Card == nil || v.Card.Rank != 5 {
		t.Errorf("unexpected violation: %+v", v)
	}
	if !strings.Contains(v.Description, "Bob") {
		t.Errorf("description %q should name the chop holder", v.Description)
	}
}

// TestMissedSaveZeroTokens: with no token to spend there was no save to
// miss.
func TestMissedSaveZeroTokens(t *testing.T) {
	deck := "R1,R2,Y1,B1,G1,R5,Y2,B2,G2,P1,R3,Y3"
	var actions []engine.Action
	for i := 0; i < 8; i++ {
		actions = append(actions, rankClue((i+1)%2, 4))
	}
	actions = append(actions, discard(0))
	none(t, checkMissedSave(ctxAt(t, deck, twoPlayers, actions, 8)))
}

// TestMissedSaveSavedSoon: the card gets its save clue within the next
// round, so nothing was lost.
func TestMissedSaveSavedSoon(t *testing.T) {
	deck := "R1,R2,Y1,B1,G1,R5,Y2,B2,G2,P1,R3,Y3"
	actions := []engine.Action{discard(4), discard(4), rankClue(1, 5)}
	none(t, checkMissedSave(ctxAt(t, deck, twoPlayers, actions, 0)))
}

// TestMissedSaveEarlierSkipper: blame lands on the first player in the
// round who passed up the save, not on everyone after them.
func TestMissedSaveEarlierSkipper(t *testing.T) {
	deck := "R1,Y1,G1,B1,P1,Y1,Y3,G3,B3,P3,R5,R3,Y4,B4,G4,P4,P1"
	actions := []engine.Action{discard(4), discard(4)}

	v := one(t, checkMissedSave(ctxAt(t, deck, threePlayers, actions, 0)), ViolationMissedSave)
	if v.Player != "Alice" {
		t.Errorf("player = %q, want Alice", v.Player)
	}
	none(t, checkMissedSave(ctxAt(t, deck, threePlayers, actions, 1)))
}

// TestMissedSaveSarcasticSuppression: discarding a clued card of your own
// is a deliberate signal, not a skipped save.
func TestMissedSaveSarcasticSuppression(t *testing.T) {
	deck := "R1,R2,Y1,B1,G1,R5,Y2,B2,G2,P1,R3,Y3"

	touchedDiscard := []engine.Action{rankClue(1, 4), rankClue(0, 1), discard(0)}
	none(t, checkMissedSave(ctxAt(t, deck, twoPlayers, touchedDiscard, 2)))

	untouchedDiscard := []engine.Action{rankClue(1, 4), rankClue(0, 1), discard(1)}
	one(t, checkMissedSave(ctxAt(t, deck, twoPlayers, untouchedDiscard, 2)), ViolationMissedSave)
}

// TestMissedSavePlayingCluedCard: playing your own clued card answers a
// play signal; an unclued play still counts as a skipped save.
func TestMissedSavePlayingCluedCard(t *testing.T) {
	deck := "R1,R2,Y1,B1,G1,R5,Y2,B2,G2,P1,R3,Y3"

	clued := []engine.Action{rankClue(1, 4), rankClue(0, 1), play(0)}
	none(t, checkMissedSave(ctxAt(t, deck, twoPlayers, clued, 2)))

	unclued := []engine.Action{play(0)}
	one(t, checkMissedSave(ctxAt(t, deck, twoPlayers, unclued, 0)), ViolationMissedSave)
}

// TestMissedSaveTwoVisibility: a chop 2 only needs saving when the acting
// player cannot see its other copy.
func TestMissedSaveTwoVisibility(t *testing.T) {
	// Bob holds the other Yellow 2, so Alice can see it.
	visible := "R1,G1,B1,P1,R3,Y2,R4,G4,B4,P4,Y2,Y3,B3,G3,P3,R2"
	none(t, checkMissedSave(ctxAt(t, visible, threePlayers, []engine.Action{discard(4)}, 0)))

	// The other copy is still in the draw pile: Charlie's chop 2 needs a
	// save.
	hidden := "R1,G1,B1,P1,R3,R4,G4,B4,P4,Y4,Y2,Y3,B3,G3,P3,R2"
	ctx := ctxAt(t, hidden, threePlayers, []engine.Action{discard(4)}, 0)
	v := one(t, checkMissedSave(ctx), ViolationMissedSave)
	if v.Card == nil || v.Card.Suit != 1 || v.Card.Rank != 2 {
		t.Errorf("unexpected card: %+v", v.Card)
	}
}
