package model

import "sort"

// NoClass marks a runway that has not yet received an aircraft.
const NoClass = -1

// RunwayState is the per-runway slice of an AlpState: the landing time
// and class of the last aircraft scheduled on that runway, or
// {PrevTime: -1, PrevClass: NoClass} if the runway is still empty.
type RunwayState struct {
	PrevTime  int
	PrevClass int
}

// AlpState is a node of the ALP dynamic-programming state space.
//
// Invariants (spec §3):
//   - 0 <= Rem[c] <= class count of c, for every class c.
//   - Terminal iff sum(Rem) == 0.
//   - Runways are symmetric: two states with equal Rem and an equal
//     multiset of Info entries are the same state for caching purposes.
//     Canonicalize() sorts Info into a fixed order to make that equality
//     structural (element-wise equality of Rem and Info).
type AlpState struct {
	Rem  []int
	Info []RunwayState
}

// Clone returns a deep copy of s.
func (s *AlpState) Clone() *AlpState {
	out := &AlpState{
		Rem:  make([]int, len(s.Rem)),
		Info: make([]RunwayState, len(s.Info)),
	}
	copy(out.Rem, s.Rem)
	copy(out.Info, s.Info)

	return out
}

// Terminal reports whether every class has been fully scheduled.
func (s *AlpState) Terminal() bool {
	for _, r := range s.Rem {
		if r > 0 {
			return false
		}
	}

	return true
}

// Canonicalize sorts Info in place into a fixed order (ascending
// PrevClass, then ascending PrevTime) so that runway-symmetric states
// compare structurally equal. Runways carry no identity beyond their
// (PrevTime, PrevClass) pair, so this reordering never changes which
// decisions remain admissible from s.
func (s *AlpState) Canonicalize() {
	sort.Slice(s.Info, func(i, j int) bool {
		if s.Info[i].PrevClass != s.Info[j].PrevClass {
			return s.Info[i].PrevClass < s.Info[j].PrevClass
		}

		return s.Info[i].PrevTime < s.Info[j].PrevTime
	})
}

// runwaySum returns the sum of PrevTime across all runways, used by
// AlpRanking (spec §4.3) and by the compression dictionary's per-entry
// Sum, which orders and filters dictionary lookups (spec §4.6).
func (s *AlpState) runwaySum() int {
	sum := 0
	for _, r := range s.Info {
		sum += r.PrevTime
	}

	return sum
}

// RunwaySum is the exported form of runwaySum, used outside the package
// (relaxation, ranking, compression all need it).
func (s *AlpState) RunwaySum() int { return s.runwaySum() }
