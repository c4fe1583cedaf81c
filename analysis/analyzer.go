package analysis

import (
	"github.com/sirupsen/logrus"

	"github.com/Jaholl/hanab-analytics/engine"
)

// Options configures one analysis run. Level is the only knob that affects
// engine behavior; the checker set is resolved from it once per run.
type Options struct {
	Level Level
}

// Analyze judges every action of a simulated game against the convention
// checkers active at the configured level and returns the concatenated
// violation list. states must be the simulator's output for actions:
// len(states) == len(actions)+1. Analyze never fails on a well-formed
// state sequence; an empty result is a clean game.
func Analyze(players []string, actions []engine.Action, states []engine.GameState, opts Options) []Violation {
	checkers := CheckersForLevel(opts.Level)
	log := logrus.WithFields(logrus.Fields{
		"level":    opts.Level.String(),
		"actions":  len(actions),
		"checkers": len(checkers),
	})
	log.Debug("analyzing game")

	var violations []Violation
	for i := range actions {
		ctx := &Context{
			Before:  &states[i],
			After:   &states[i+1],
			Action:  actions[i],
			Index:   i,
			Actor:   i % len(players),
			Players: players,
			Actions: actions,
			States:  states,
			Level:   opts.Level,
		}
		for _, checker := range checkers {
			found := checker.Check(ctx)
			for _, v := range found {
				logrus.WithFields(logrus.Fields{
					"turn":     v.Turn,
					"player":   v.Player,
					"type":     v.Type,
					"severity": v.Severity.String(),
				}).Debug(v.Description)
			}
			violations = append(violations, found...)
		}
	}

	log.WithField("violations", len(violations)).Debug("analysis complete")
	return violations
}
