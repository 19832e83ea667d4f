// Package relax implements AlpRelax (spec §4.2): the state-merging
// operator that turns a bag of states sharing a search layer into one
// relaxed state, plus the fast admissible upper bound the solver prunes
// with.
//
// Rationale (mirrors lvlath/tsp/bound_onetree.go's bound-composition
// style): a bound is only useful if it is cheap and admissible. merge
// produces a lower-bound envelope (it admits at least every decision its
// constituents admit); fastUpperBound never overestimates remaining
// reward. The trivial-vs-compressed composition itself lives in
// internal/bound, which AlpRelax delegates to rather than duplicating.
package relax

import (
	"github.com/alpsolve/alp/internal/bound"
	"github.com/alpsolve/alp/internal/model"
)

// CompressionBound is an alias of internal/bound's capability interface,
// re-exported here so callers that only import relax still have a name
// for it.
type CompressionBound = bound.CompressionBound

// AlpRelax implements the relaxation described in spec §4.2. It is
// read-only after construction and safe to share across goroutines.
type AlpRelax struct {
	problem    *model.Alp
	admissible *bound.Admissible
}

// New builds a relaxation over problem. cb may be nil to disable
// compression-bound composition.
func New(problem *model.Alp, cb CompressionBound) *AlpRelax {
	rx := &AlpRelax{problem: problem}
	rx.admissible = bound.New(rx.trivialBound, cb)

	return rx
}

// Merge combines a bag of states into a single relaxed state (spec
// §4.2): Rem is taken component-wise max (so the merged state still
// admits every decision any constituent admitted); each runway's
// PrevTime is the minimum across states sharing that runway position
// (more time is always more restrictive, so the minimum is the most
// permissive — hence a valid relaxation); PrevClass is kept only if
// every constituent agrees on it, else reset to NoClass (losing
// separation information is safe, it only loosens constraints further).
//
// Callers are expected to have canonicalized every state first (spec
// §4.2: "if implementations canonicalize by sorting info, merge after
// canonicalization") so that runway position i consistently refers to
// the same equivalence slot across all constituents.
func (rx *AlpRelax) Merge(states []*model.AlpState) *model.AlpState {
	if len(states) == 0 {
		return rx.problem.InitialState()
	}
	nbClasses := len(states[0].Rem)
	nbRunways := len(states[0].Info)

	rem := make([]int, nbClasses)
	for c := 0; c < nbClasses; c++ {
		max := states[0].Rem[c]
		for _, s := range states[1:] {
			if s.Rem[c] > max {
				max = s.Rem[c]
			}
		}
		rem[c] = max
	}

	info := make([]model.RunwayState, nbRunways)
	for r := 0; r < nbRunways; r++ {
		minTime := states[0].Info[r].PrevTime
		class := states[0].Info[r].PrevClass
		agree := true
		for _, s := range states[1:] {
			if s.Info[r].PrevTime < minTime {
				minTime = s.Info[r].PrevTime
			}
			if s.Info[r].PrevClass != class {
				agree = false
			}
		}
		if !agree {
			class = model.NoClass
		}
		info[r] = model.RunwayState{PrevTime: minTime, PrevClass: class}
	}

	return &model.AlpState{Rem: rem, Info: info}
}

// RelaxEdge returns cost unchanged: the relaxation lives entirely in the
// state merge, not in per-edge cost adjustment (spec §4.2).
func (rx *AlpRelax) RelaxEdge(cost int) int { return cost }

// FastUpperBound returns the cheap admissible estimator of spec §4.2:
// for every remaining aircraft, the only cost counted is a
// target-past-latest infeasibility margin, which no schedule can avoid;
// everything else (separation delay) is assumed free. This is always <= 0 and is a valid upper bound
// on remaining reward. When a CompressionBound was attached at
// construction, internal/bound.Admissible composes it with the trivial
// estimate and the tighter of the two is returned.
func (rx *AlpRelax) FastUpperBound(state *model.AlpState) int {
	return rx.admissible.Value(state)
}

func (rx *AlpRelax) trivialBound(state *model.AlpState) int {
	total := 0
	for c, rem := range state.Rem {
		for k := 1; k <= rem; k++ {
			aircraft := rx.problem.NextAircraft(c, k)
			margin := rx.problem.Target(aircraft) - rx.problem.Latest(aircraft)
			if margin > 0 {
				total -= margin
			}
		}
	}

	return total
}
