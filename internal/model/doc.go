// Package model documents the ALP state machine's public surface.
//
// # What
//
// Alp turns a validated instance.Instance into the four primitives a
// branch-and-bound search needs:
//
//	InitialState()                     -- the empty-runways starting node
//	NextVariable(depth)                -- variable = depth (one per aircraft)
//	ForEachInDomain(state, emit)        -- admissible (class, runway) decisions
//	Transition / TransitionCost         -- successor state and its reward
//
// # Determinism
//
// ForEachInDomain always emits decisions in ascending (class, runway)
// order, so replaying the same decision sequence twice reproduces the
// same state sequence.
package model
