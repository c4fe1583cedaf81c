package analysis

import (
	"strings"
	"testing"

	"github.com/Jaholl/hanab-analytics/engine"
)

var (
	twoPlayers   = []string{"Alice", "Bob"}
	threePlayers = []string{"Alice", "Bob", "Charlie"}
)

// mustParseDeck builds a deck from compact "R1,Y2,..." entries; letters
// follow engine.SuitLetters. Test decks are partial on purpose: only the
// cards a scenario reaches need to exist.
func mustParseDeck(t *testing.T, s string) []engine.Card {
	t.Helper()
	parts := strings.Split(s, ",")
	deck := make([]engine.Card, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		suit := strings.IndexByte(engine.SuitLetters, p[0])
		if suit < 0 || len(p) != 2 {
			t.Fatalf("bad deck entry %q", p)
		}
		deck = append(deck, engine.Card{Suit: uint8(suit), Rank: p[1] - '0', DeckIndex: uint8(i)})
	}
	return deck
}

func mustStates(t *testing.T, deck string, players []string, actions []engine.Action) []engine.GameState {
	t.Helper()
	states, err := engine.Simulate(mustParseDeck(t, deck), players, actions)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	return states
}

// ctxAt simulates the scenario and builds the checker context for action
// index, the same way Analyze does.
func ctxAt(t *testing.T, deck string, players []string, actions []engine.Action, index int) *Context {
	t.Helper()
	states := mustStates(t, deck, players, actions)
	return &Context{
		Before:  &states[index],
		After:   &states[index+1],
		Action:  actions[index],
		Index:   index,
		Actor:   index % len(players),
		Players: players,
		Actions: actions,
		States:  states,
		Level:   LevelAdvanced,
	}
}

// one asserts a checker produced exactly one violation and returns it.
func one(t *testing.T, vs []Violation, typ ViolationType) Violation {
	t.Helper()
	if len(vs) != 1 {
		t.Fatalf("got %d violations, want 1: %+v", len(vs), vs)
	}
	if vs[0].Type != typ {
		t.Fatalf("violation type = %q, want %q", vs[0].Type, typ)
	}
	return vs[0]
}

// none asserts a checker stayed silent.
func none(t *testing.T, vs []Violation) {
	t.Helper()
	if len(vs) != 0 {
		t.Fatalf("got %d violations, want none: %+v", len(vs), vs)
	}
}

func play(slot int) engine.Action {
	return engine.Action{Type: engine.ActionPlay, Target: slot}
}

func discard(slot int) engine.Action {
	return engine.Action{Type: engine.ActionDiscard, Target: slot}
}

func colorClue(target int, suit uint8) engine.Action {
	return engine.Action{Type: engine.ActionColorClue, Target: target, Value: int(suit)}
}

func rankClue(target, rank int) engine.Action {
	return engine.Action{Type: engine.ActionRankClue, Target: target, Value: rank}
}
