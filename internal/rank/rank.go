// Package rank implements AlpRanking (spec §4.3): the total order a
// width-limited search uses to decide which states survive a layer cut.
// States ranked "better" sort first, so a width cut can simply keep a
// prefix.
package rank

import "github.com/alpsolve/alp/internal/model"

// Less reports whether a should be preferred over b when a layer must be
// narrowed: ascending total elapsed time first (less congestion banked
// is better), then ascending lexicographic Rem, then lexicographic canonicalized runway info as a final tiebreaker
// (spec §4.3). The ordering is a strict weak order: Less(a,b) &&
// Less(b,a) never both hold.
func Less(a, b *model.AlpState) bool {
	sa, sb := a.RunwaySum(), b.RunwaySum()
	if sa != sb {
		return sa < sb
	}
	if c := compareInts(a.Rem, b.Rem); c != 0 {
		return c < 0
	}

	return compareInfo(a.Info, b.Info) < 0
}

// AlpRanking adapts Less to the three-way Compare that mdd.Ranking
// requires; the Classic variant's width cut sorts a layer with it (the
// Hybrid fringe orders nodes by Bound instead).
type AlpRanking struct{}

// Compare returns -1, 0, or 1 following the same order as Less. 0 means
// neither state is preferred (they agree on every ranking coordinate,
// though they need not be equal states).
func (AlpRanking) Compare(a, b *model.AlpState) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}

func compareInts(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

func compareInfo(a, b []model.RunwayState) int {
	for i := range a {
		if a[i].PrevClass != b[i].PrevClass {
			if a[i].PrevClass < b[i].PrevClass {
				return -1
			}

			return 1
		}
		if a[i].PrevTime != b[i].PrevTime {
			if a[i].PrevTime < b[i].PrevTime {
				return -1
			}

			return 1
		}
	}

	return 0
}
