// Package gameio defines the in-process boundary contract of the engine:
// the GameExport input shape, deck-string parsing, and structural
// validation. Network ingestion and persistence live with external
// collaborators; this package only guarantees that what reaches the
// simulator is well formed.
package gameio

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Jaholl/hanab-analytics/analysis"
	"github.com/Jaholl/hanab-analytics/engine"
)

// VariantStandard is the only ruleset this engine understands. Other
// variants are rejected before reaching the simulator.
const VariantStandard = "No Variant"

// ExportOptions carries the per-game ruleset options of an export.
type ExportOptions struct {
	Variant string `json:"variant"`
}

// GameExport is one recorded game as handed to the engine: the fixed deck
// order, the seat list, and the full action log.
type GameExport struct {
	ID      uuid.UUID       `json:"id"`
	Players []string        `json:"players"`
	Deck    []engine.Card   `json:"deck"`
	Actions []engine.Action `json:"actions"`
	Options ExportOptions   `json:"options"`
}

// ParseDeck converts a compact deck string such as "R1,R2,Y1,B1,G1" into
// cards with stable deck indices. Letters follow engine.SuitLetters.
func ParseDeck(s string) ([]engine.Card, error) {
	parts := strings.Split(s, ",")
	deck := make([]engine.Card, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) != 2 {
			return nil, errors.Errorf("deck entry %d: %q is not a letter-digit pair", i, part)
		}
		suit := strings.IndexByte(engine.SuitLetters, part[0])
		if suit < 0 {
			return nil, errors.Errorf("deck entry %d: unknown suit letter %q", i, part[0])
		}
		rank, err := strconv.Atoi(part[1:])
		if err != nil || rank < 1 || rank > engine.MaxRank {
			return nil, errors.Errorf("deck entry %d: bad rank %q", i, part[1:])
		}
		deck = append(deck, engine.Card{Suit: uint8(suit), Rank: uint8(rank), DeckIndex: uint8(i)})
	}
	return deck, nil
}

// Load parses and validates a JSON game export.
func Load(data []byte) (*GameExport, error) {
	var g GameExport
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrap(err, "decoding game export")
	}
	if err := g.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validating game export %s", g.ID)
	}
	return &g, nil
}

// Validate enforces the structural contract of a full export: standard
// variant, 2-5 players, and the complete 50-card deck.
func (g *GameExport) Validate() error {
	if g.Options.Variant != VariantStandard {
		return errors.Errorf("unsupported variant %q, want %q", g.Options.Variant, VariantStandard)
	}
	if len(g.Players) < 2 || len(g.Players) > 5 {
		return errors.Errorf("need 2-5 players, got %d", len(g.Players))
	}
	if len(g.Deck) != engine.DeckSize {
		return errors.Errorf("deck has %d cards, want %d", len(g.Deck), engine.DeckSize)
	}
	counts := make(map[[2]uint8]int)
	for i, c := range g.Deck {
		if int(c.DeckIndex) != i {
			return errors.Errorf("deck entry %d carries deck index %d", i, c.DeckIndex)
		}
		if c.Suit >= engine.NumSuits || c.Rank < 1 || c.Rank > engine.MaxRank {
			return errors.Errorf("deck entry %d: no such card (suit %d, rank %d)", i, c.Suit, c.Rank)
		}
		counts[[2]uint8{c.Suit, c.Rank}]++
	}
	for suit := uint8(0); suit < engine.NumSuits; suit++ {
		for rank := uint8(1); rank <= engine.MaxRank; rank++ {
			if got, want := counts[[2]uint8{suit, rank}], engine.CopyCount(rank); got != want {
				return errors.Errorf("deck holds %d copies of %s, want %d",
					got, engine.Card{Suit: suit, Rank: rank}, want)
			}
		}
	}
	return nil
}

// Result bundles everything one replay produces.
type Result struct {
	States     []engine.GameState
	Violations []analysis.Violation
	Summary    analysis.Summary
}

// Replay runs the full pipeline on an export: simulate every action, then
// analyze at the requested convention level.
func Replay(g *GameExport, level analysis.Level) (*Result, error) {
	states, err := engine.Simulate(g.Deck, g.Players, g.Actions)
	if err != nil {
		return nil, errors.Wrapf(err, "simulating game %s", g.ID)
	}
	violations := analysis.Analyze(g.Players, g.Actions, states, analysis.Options{Level: level})
	return &Result{
		States:     states,
		Violations: violations,
		Summary:    analysis.Summarize(violations),
	}, nil
}
