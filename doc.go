// Package alp solves the Aircraft Landing Problem: schedule N aircraft
// across R runways, minimizing total deviation from each aircraft's
// target landing time, subject to per-runway class-to-class separation
// and a latest-landing deadline per aircraft.
//
// The solver is a multi-valued decision diagram (MDD) branch-and-bound
// search over instance.Instance problems:
//
//	instance/          — problem definition, loading, validation
//	internal/model     — state, decisions, and transitions (the Alp state machine)
//	internal/relax     — admissible relaxation and state merging
//	internal/rank      — state ordering for width-limited layers
//	internal/dominance — Pareto-dominance filtering of equivalent states
//	internal/compress  — k-means class clustering and the meta-problem bound
//	internal/bound     — composition of the trivial and compressed bounds
//	internal/heuristic — decision ordering derived from the compressed dictionary
//	internal/mdd       — the Classic (layer-barrier) and Hybrid (shared
//	                     best-first fringe) search engines
//	internal/generate  — random instance generation for benchmarking
//	internal/solve     — the driver tying the above into one run
//	internal/clilog    — leveled logging for the CLI
//	cmd/alp            — the "generate" and "solve" command-line subcommands
//
// Both search variants share the same Problem/Relaxation/Ranking/
// Dominance contract (internal/mdd), so a new relaxation or dominance
// rule plugs into either without touching the search loop.
package alp
