package analysis

import (
	"reflect"
	"testing"

	"github.com/Jaholl/hanab-analytics/engine"
)

func TestCheckersForLevel(t *testing.T) {
	counts := map[Level]int{
		LevelBasic:        5,
		LevelBeginner:     10,
		LevelIntermediate: 14,
		LevelAdvanced:     19,
	}
	for level, want := range counts {
		got := CheckersForLevel(level)
		if len(got) != want {
			t.Errorf("CheckersForLevel(%s) = %d checkers, want %d", level, len(got), want)
		}
		for _, c := range got {
			if c.MinLevel > level {
				t.Errorf("%s checker %q leaked into level %s", c.MinLevel, c.Name, level)
			}
		}
	}
}

// TestAnalyzeCleanGame: two legal opening plays produce no violations even
// with every checker active.
func TestAnalyzeCleanGame(t *testing.T) {
	deck := "R1,Y1,G1,B1,P1,G1,Y2,G2,B2,P2,R2,Y3"
	actions := []engine.Action{play(0), play(0)}
	states := mustStates(t, deck, twoPlayers, actions)
	vs := Analyze(twoPlayers, actions, states, Options{Level: LevelAdvanced})
	if len(vs) != 0 {
		t.Fatalf("clean game produced %d violations: %+v", len(vs), vs)
	}
}

func TestAnalyzeFindsMisplay(t *testing.T) {
	deck := "R2,Y1,G1,B1,P1,R1,Y2,G2,B2,P2"
	actions := []engine.Action{play(0)}
	states := mustStates(t, deck, twoPlayers, actions)
	vs := Analyze(twoPlayers, actions, states, Options{Level: LevelBasic})
	sum := Summarize(vs)
	if sum.ByType[ViolationMisplay] != 1 {
		t.Errorf("misplay count = %d, want 1", sum.ByType[ViolationMisplay])
	}
	if sum.BySeverity[SeverityCritical] == 0 {
		t.Error("a misplay should register as critical")
	}
}

// TestAnalyzeLevelMonotone: raising the level never hides a violation a
// lower level reported.
func TestAnalyzeLevelMonotone(t *testing.T) {
	deck := "R1,R2,Y1,B1,G1,R5,Y2,B2,G2,P1,R3,Y3"
	actions := []engine.Action{discard(0), discard(0)}
	states := mustStates(t, deck, twoPlayers, actions)

	prev := -1
	for _, level := range []Level{LevelBasic, LevelBeginner, LevelIntermediate, LevelAdvanced} {
		vs := Analyze(twoPlayers, actions, states, Options{Level: level})
		if len(vs) < prev {
			t.Errorf("level %s reported %d violations, fewer than the level below (%d)", level, len(vs), prev)
		}
		prev = len(vs)
	}
}

// TestAnalyzeChaoticGame: a full-deck log that strikes out, clues at zero
// tokens, and drains the draw pile still analyzes cleanly at every level.
func TestAnalyzeChaoticGame(t *testing.T) {
	deck := engine.StandardDeck()

	// Three opening misplays burn all strikes.
	actions := []engine.Action{play(4), play(4), play(3)}
	// Nine clues: eight legal ones empty the token bank, the ninth is
	// given at zero.
	for len(actions) < 12 {
		actions = append(actions, rankClue((len(actions)+1)%2, 1))
	}
	// Alternate plays and discards until the deck is gone.
	for len(actions) < 49 {
		if len(actions)%2 == 0 {
			actions = append(actions, play(0))
		} else {
			actions = append(actions, discard(0))
		}
	}

	states, err := engine.Simulate(deck, twoPlayers, actions)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	last := states[len(states)-1]
	if last.Strikes != engine.MaxStrikes {
		t.Fatalf("strikes = %d, want %d", last.Strikes, engine.MaxStrikes)
	}
	if !last.DeckExhausted {
		t.Fatal("scripted log should drain the deck")
	}

	prev := -1
	for _, level := range []Level{LevelBasic, LevelBeginner, LevelIntermediate, LevelAdvanced} {
		vs := Analyze(twoPlayers, actions, states, Options{Level: level})
		if len(vs) < prev {
			t.Errorf("level %s reported %d violations, fewer than the level below (%d)", level, len(vs), prev)
		}
		prev = len(vs)
		if level == LevelBasic {
			sum := Summarize(vs)
			if sum.ByType[ViolationIllegalClue] == 0 {
				t.Error("clue at zero tokens went undetected")
			}
			if sum.ByType[ViolationMisplay] < 3 {
				t.Errorf("misplay count = %d, want at least the three strikes", sum.ByType[ViolationMisplay])
			}
		}
	}
}

func TestAnalyzeDeterminism(t *testing.T) {
	deck := "R1,R2,Y1,B1,G1,R5,Y2,B2,G2,P1,R3,Y3"
	actions := []engine.Action{discard(0), discard(0)}
	states := mustStates(t, deck, twoPlayers, actions)

	a := Analyze(twoPlayers, actions, states, Options{Level: LevelAdvanced})
	b := Analyze(twoPlayers, actions, states, Options{Level: LevelAdvanced})
	if !reflect.DeepEqual(a, b) {
		t.Error("two analysis runs over the same game differ")
	}
}

func TestSummarize(t *testing.T) {
	vs := []Violation{
		{Type: ViolationMisplay, Severity: SeverityCritical},
		{Type: ViolationMisplay, Severity: SeverityCritical},
		{Type: ViolationBadTouch, Severity: SeverityWarning},
		{Type: ViolationStompedFinesse, Severity: SeverityInfo},
	}
	sum := Summarize(vs)
	if sum.ByType[ViolationMisplay] != 2 || sum.ByType[ViolationBadTouch] != 1 {
		t.Errorf("unexpected type counts: %v", sum.ByType)
	}
	if sum.BySeverity[SeverityCritical] != 2 || sum.BySeverity[SeverityWarning] != 1 || sum.BySeverity[SeverityInfo] != 1 {
		t.Errorf("unexpected severity counts: %v", sum.BySeverity)
	}
}
