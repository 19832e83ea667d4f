// Capability interfaces Engine is built against (spec §4.9, §5). The
// generic relaxed/restricted multi-valued-decision-diagram framework
// these were written against is an external collaborator outside this
// module's scope; Engine satisfies the same contract against the ALP
// components (internal/model, internal/relax, internal/rank,
// internal/dominance, internal/heuristic).
package mdd

import (
	"time"

	"github.com/alpsolve/alp/internal/model"
)

// Problem is everything Engine needs to expand one search node into its
// children. internal/model.Alp implements it directly.
type Problem interface {
	InitialState() *model.AlpState
	NbVariables() int
	NextVariable(depth int) int
	ForEachInDomain(state *model.AlpState, emit func(model.Decision))
	Transition(state *model.AlpState, d model.Decision) *model.AlpState
	TransitionCost(state *model.AlpState, d model.Decision) int
}

// Relaxation supplies the admissible bound and state-merge operator a
// relaxed layer needs. internal/relax.AlpRelax implements it directly.
type Relaxation interface {
	Merge(states []*model.AlpState) *model.AlpState
	FastUpperBound(state *model.AlpState) int
}

// Ranking totally orders states for a width-limited layer cut.
// internal/rank.AlpRanking implements it directly.
type Ranking interface {
	Compare(a, b *model.AlpState) int
}

// Dominance filters states that cannot possibly beat an already-admitted
// one. internal/dominance.Filter implements it directly.
type Dominance interface {
	Admit(state *model.AlpState) bool
}

// WidthHeuristic returns the maximum number of states a restricted layer
// may keep at a given search depth. A nil WidthHeuristic disables
// width limiting (the classic variant then degenerates to exact search).
type WidthHeuristic func(depth int) int

// Cutoff reports whether the search should stop now, given how many
// nodes have been expanded and how long the search has run.
type Cutoff func(nodesExpanded int, elapsed time.Duration) bool

// DecisionHeuristicBuilder optionally reorders the decisions
// ForEachInDomain emitted for state, most-preferred first (spec §4.8).
// A nil builder leaves the model's natural ordering untouched.
type DecisionHeuristicBuilder func(state *model.AlpState, decisions []model.Decision) []model.Decision
