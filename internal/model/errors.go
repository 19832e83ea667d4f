// Package model implements the Aircraft Landing Problem as a dynamic-
// programming state machine: states, decisions, transitions, and the
// per-decision cost the solver maximizes (negated schedule deviation).
package model

import "errors"

var (
	// ErrNoRunways indicates a problem was built from an instance with zero runways.
	ErrNoRunways = errors.New("model: instance has no runways")

	// ErrTerminalState indicates a decision was requested from a state with no remaining aircraft.
	ErrTerminalState = errors.New("model: state is terminal")

	// ErrUnknownDecision indicates a decision integer does not decode to a valid (class, runway) pair.
	ErrUnknownDecision = errors.New("model: unknown decision")
)
