package compress

import "github.com/alpsolve/alp/internal/model"

// CompressedBound adapts a Dictionary (built over a meta-problem) into
// relax.CompressionBound by projecting original states into meta-space
// before lookup (spec §4.7).
type CompressedBound struct {
	dict       *Dictionary
	membership []int
	nbMeta     int
}

// NewCompressedBound ties a prebuilt Dictionary to the class->meta-class
// membership used to build it.
func NewCompressedBound(dict *Dictionary, membership []int, nbMeta int) *CompressedBound {
	return &CompressedBound{dict: dict, membership: membership, nbMeta: nbMeta}
}

// Project maps an original AlpState into the meta-problem's state space:
// Rem is summed per meta-class, each runway's PrevClass is remapped
// through membership (PrevTime passes through unchanged, since
// separation constraints live purely in elapsed time), and the result is
// canonicalized so it aligns with dictionary entries built the same way.
func (b *CompressedBound) Project(s *model.AlpState) *model.AlpState {
	rem := make([]int, b.nbMeta)
	for c, r := range s.Rem {
		rem[b.membership[c]] += r
	}
	info := make([]model.RunwayState, len(s.Info))
	for i, rw := range s.Info {
		class := rw.PrevClass
		if class != model.NoClass {
			class = b.membership[class]
		}
		info[i] = model.RunwayState{PrevTime: rw.PrevTime, PrevClass: class}
	}
	out := &model.AlpState{Rem: rem, Info: info}
	out.Canonicalize()

	return out
}

// Bound implements relax.CompressionBound: it projects s into meta-space
// and scans the matching Rem bucket, descending by (Sum, Times-lex), for
// the first entry whose per-runway elapsed times are all <= the
// projected state's — i.e. an entry that is weakly more permissive, so
// its tabulated Value is a valid upper bound on what s can still
// achieve. The first hit is the dominating entry with the largest
// runway-time sum; later dominating entries, whose Value may be smaller,
// are not consulted.
//
// The dominance check compares only elapsed times, not PrevClass
// identity, within a shared Rem bucket: a deliberate simplification
// (the dictionary is an admissible-bound cache, not an exact replay) that
// trades a small amount of bound tightness for a single coordinate-wise
// scan instead of a class-matching search.
func (b *CompressedBound) Bound(s *model.AlpState) (int, bool) {
	projected := b.Project(s)
	for _, e := range b.dict.Lookup(projected.Rem) {
		if e.Sum > projected.RunwaySum() {
			continue
		}
		if dominatesTimes(e.Info, projected.Info) {
			return e.Value, true
		}
	}

	return 0, false
}

func dominatesTimes(entry, actual []model.RunwayState) bool {
	for i := range entry {
		if entry[i].PrevTime > actual[i].PrevTime {
			return false
		}
	}

	return true
}
