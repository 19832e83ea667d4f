// Package heuristic derives a decision preference order for a state
// from the compression dictionary (spec §4.8): when the dictionary has
// an entry for the state's projection, its BestOrder (precomputed by
// the meta-problem's backward DP) is translated back into decisions over
// the original classes and used to order ForEachInDomain's emission.
// When no entry matches, callers fall back to the model's natural
// class-major ascending order.
package heuristic

import "github.com/alpsolve/alp/internal/model"

// Entry mirrors compress.Entry's fields the heuristic consumes, kept
// narrow so this package does not import internal/compress's full type.
type Entry struct {
	Info      []model.RunwayState
	Sum       int
	BestOrder []model.Decision
}

// Projector projects an original state into the compression dictionary's
// meta-space (compress.CompressedBound.Project, adapted by the caller).
type Projector func(*model.AlpState) *model.AlpState

// Lookup returns the dictionary entries sharing a projected Rem
// (compress.Dictionary.Lookup, adapted by the caller to Entry).
type Lookup func(rem []int) []Entry

// Order returns the meta-class decision preference for state, most
// preferred first, or nil if the dictionary has no matching entry. Each
// returned Decision's Class is a *meta*-class index: callers must
// translate back to an original class via the same membership used to
// build the dictionary (see internal/solve's heuristic wiring) before
// using it to bias ForEachInDomain's traversal order.
func Order(project Projector, lookup Lookup, state *model.AlpState) []model.Decision {
	projected := project(state)
	for _, e := range lookup(projected.Rem) {
		if e.Sum > projected.RunwaySum() {
			continue
		}
		if dominates(e.Info, projected.Info) {
			return e.BestOrder
		}
	}

	return nil
}

func dominates(entry, actual []model.RunwayState) bool {
	for i := range entry {
		if entry[i].PrevTime > actual[i].PrevTime {
			return false
		}
	}

	return true
}

// Bias reorders decisions (the admissible (class, runway) pairs
// ForEachInDomain already emitted for an original-class state) so that
// any decision whose class maps (via membership) to a meta-class
// appearing earlier in preferred comes first. Decisions absent from
// preferred keep their relative order, appended after every biased one
// (a stable partition, not a full sort).
func Bias(decisions []model.Decision, preferred []model.Decision, membership []int) []model.Decision {
	if len(preferred) == 0 {
		return decisions
	}
	rank := make(map[int]int, len(preferred))
	for i, d := range preferred {
		if _, ok := rank[d.Class]; !ok {
			rank[d.Class] = i
		}
	}

	type keyed struct {
		d      model.Decision
		rank   int
		ranked bool
		orig   int
	}
	tmp := make([]keyed, len(decisions))
	for i, d := range decisions {
		r, ok := rank[membership[d.Class]]
		tmp[i] = keyed{d: d, rank: r, ranked: ok, orig: i}
	}

	// Insertion sort keeps this stable and avoids importing sort for a
	// handful of elements per call (ForEachInDomain emits at most
	// NbClasses*NbRunways decisions). Ranked decisions sort by rank;
	// unranked ones sort after every ranked one; ties keep original order.
	less := func(a, b keyed) bool {
		switch {
		case a.ranked && b.ranked:
			return a.rank < b.rank
		case a.ranked != b.ranked:
			return a.ranked
		default:
			return a.orig < b.orig
		}
	}
	for i := 1; i < len(tmp); i++ {
		j := i
		for j > 0 && less(tmp[j], tmp[j-1]) {
			tmp[j], tmp[j-1] = tmp[j-1], tmp[j]
			j--
		}
	}

	out := make([]model.Decision, len(tmp))
	for i, k := range tmp {
		out[i] = k.d
	}

	return out
}
