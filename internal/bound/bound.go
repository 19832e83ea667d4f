// Package bound assembles the admissible upper bound the search prunes
// with (spec §4.7): a cheap per-state estimate, tightened by an
// internal/compress.CompressedBound when one is attached. internal/relax
// delegates its FastUpperBound to this package rather than duplicating
// the composition logic, so this is the one seam that decides how a
// trivial bound and a compressed bound combine.
package bound

import "github.com/alpsolve/alp/internal/model"

// CompressionBound is the subset of internal/compress.CompressedBound
// this package needs. Kept as a narrow interface so bound has no hard
// dependency on how the bound is computed — only on "give me an
// admissible bound for this state, or tell me you have none."
type CompressionBound interface {
	// Bound returns the admissible remaining-reward upper bound for
	// state, and ok=false if the compression has no matching meta-state
	// (spec §4.6 projection sentinel).
	Bound(state *model.AlpState) (value int, ok bool)
}

// Admissible composes a trivial per-state bound with an optional
// compressed one.
type Admissible struct {
	trivial    func(*model.AlpState) int
	compressed CompressionBound
}

// New builds an Admissible bound. trivial must never be nil; compressed
// may be nil to disable composition.
func New(trivial func(*model.AlpState) int, compressed CompressionBound) *Admissible {
	return &Admissible{trivial: trivial, compressed: compressed}
}

// Value returns the tightest admissible upper bound available: the
// smaller (both values bound the remaining reward from above, so the
// smaller one is closer to the true optimum) of the trivial estimate and
// the compressed dictionary lookup, when the latter has an entry.
func (a *Admissible) Value(state *model.AlpState) int {
	v := a.trivial(state)
	if a.compressed == nil {
		return v
	}
	if cv, ok := a.compressed.Bound(state); ok && cv < v {
		return cv
	}

	return v
}
