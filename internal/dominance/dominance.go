// Package dominance implements the keyed Pareto-frontier filter of spec
// §4.4: two states are comparable only if they share a dominance key
// (Rem plus the multiset of PrevClass per runway), and within a key one
// state dominates another if every runway's elapsed time is no worse
// and at least one is strictly better.
//
// Rationale (mirrors lvlath/core's split-lock pattern, see
// core/graph_concurrent.go): the frontier is sharded by key under its
// own mutex so unrelated keys never contend, matching how the teacher
// isolates vertex-set and edge-set locks.
package dominance

import (
	"sort"
	"sync"

	"github.com/alpsolve/alp/internal/model"
)

// Key identifies a dominance-comparability class: two states compare
// only if their keys are equal (spec §4.4).
type Key struct {
	rem    string
	prevCl string
}

// KeyOf computes the dominance key for s: Rem verbatim, plus the sorted
// multiset of per-runway PrevClass (so runway-symmetric states collide
// onto the same key regardless of Canonicalize order).
func KeyOf(s *model.AlpState) Key {
	rem := make([]byte, 0, 4*len(s.Rem))
	for _, r := range s.Rem {
		rem = appendInt(rem, r)
	}

	classes := make([]int, len(s.Info))
	for i, info := range s.Info {
		classes[i] = info.PrevClass
	}
	sort.Ints(classes)
	cl := make([]byte, 0, 4*len(classes))
	for _, c := range classes {
		cl = appendInt(cl, c)
	}

	return Key{rem: string(rem), prevCl: string(cl)}
}

func appendInt(b []byte, v int) []byte {
	// Comma-terminated decimal encoding avoids collisions
	// between e.g. Rem=[1,23] and Rem=[12,3].
	b = append(b, []byte(itoa(v))...)
	b = append(b, ',')

	return b
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}

	return string(buf[i:])
}

// Dominates reports whether a dominates b: every runway slot's elapsed
// time is no greater and at least one is strictly so. Callers must only
// compare states sharing a Key, but a shared Key permits the two
// states' runway slots to be permuted relative to one another (KeyOf
// ignores runway order); comparing a.Info[i] against b.Info[i]
// positionally would then compare unrelated runways. Both states are
// canonicalized (class-aligned order, per AlpState.Canonicalize) on
// clones before the coordinate-wise comparison so slot i always refers
// to the same (PrevClass, PrevTime) runway on both sides.
func Dominates(a, b *model.AlpState) bool {
	ca, cb := a.Clone(), b.Clone()
	ca.Canonicalize()
	cb.Canonicalize()

	strictlyBetter := false
	for i := range ca.Info {
		if ca.Info[i].PrevTime > cb.Info[i].PrevTime {
			return false
		}
		if ca.Info[i].PrevTime < cb.Info[i].PrevTime {
			strictlyBetter = true
		}
	}

	return strictlyBetter
}

type shard struct {
	mu    sync.RWMutex
	front []*model.AlpState // the current Pareto frontier for this key
}

// Filter is a concurrent, keyed dominance filter. Its zero value is not
// usable; construct with New.
type Filter struct {
	mu     sync.RWMutex
	shards map[Key]*shard
}

// New returns an empty dominance filter.
func New() *Filter {
	return &Filter{shards: make(map[Key]*shard)}
}

// Admit reports whether s survives insertion: if some existing frontier
// member dominates s, s is rejected (false) and the frontier is left
// unchanged; otherwise s is added and any frontier members it dominates
// are evicted.
func (f *Filter) Admit(s *model.AlpState) bool {
	key := KeyOf(s)

	f.mu.RLock()
	sh, ok := f.shards[key]
	f.mu.RUnlock()
	if !ok {
		f.mu.Lock()
		sh, ok = f.shards[key]
		if !ok {
			sh = &shard{}
			f.shards[key] = sh
		}
		f.mu.Unlock()
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()

	for _, existing := range sh.front {
		if Dominates(existing, s) {
			return false
		}
	}

	kept := sh.front[:0:0]
	for _, existing := range sh.front {
		if !Dominates(s, existing) {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, s)
	sh.front = kept

	return true
}

// Len returns the total number of states currently held across all
// shards, for diagnostics and tests.
func (f *Filter) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	total := 0
	for _, sh := range f.shards {
		sh.mu.RLock()
		total += len(sh.front)
		sh.mu.RUnlock()
	}

	return total
}
