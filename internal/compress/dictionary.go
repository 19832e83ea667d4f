package compress

import (
	"sort"
	"strconv"
	"strings"

	"github.com/alpsolve/alp/internal/heuristic"
	"github.com/alpsolve/alp/internal/model"
)

// DefaultMaxEntries bounds how many meta-states BuildDictionary will
// tabulate before giving up on further expansion (spec §4.6: cap
// dictionary size, degrade to "no bound" on a miss rather than blow up
// memory on a dense meta-problem).
const DefaultMaxEntries = 200_000

// Entry is one reachable meta-state row (spec §4.6): its canonicalized
// runway snapshot, the best achievable remaining reward from it (Value),
// and the decision preference order that achieves it (BestOrder, used
// by internal/heuristic).
type Entry struct {
	Rem       []int
	Info      []model.RunwayState
	Sum       int
	Value     int
	BestOrder []model.Decision
}

// Dictionary is the reachable meta-state table built once per instance
// by BuildDictionary. It is read-only afterward and safe to share across
// goroutines.
type Dictionary struct {
	byRem map[string][]*Entry
}

// Lookup returns the entries sharing rem, sorted descending by (Sum,
// Times-lex) — the order Bound and heuristic.Order scan in.
func (d *Dictionary) Lookup(rem []int) []*Entry {
	return d.byRem[remKey(rem)]
}

// AsHeuristicLookup adapts Lookup to heuristic.Lookup's signature, so
// internal/heuristic never needs to import this package's concrete Entry
// type.
func (d *Dictionary) AsHeuristicLookup() func(rem []int) []heuristic.Entry {
	return func(rem []int) []heuristic.Entry {
		entries := d.Lookup(rem)
		out := make([]heuristic.Entry, len(entries))
		for i, e := range entries {
			out[i] = heuristic.Entry{Info: e.Info, Sum: e.Sum, BestOrder: e.BestOrder}
		}

		return out
	}
}

// BuildDictionary enumerates the meta-states reachable from meta's
// initial state, layer by layer (forward BFS over search depth), until
// maxEntries states have been tabulated (states found after that are not
// added), then runs a backward dynamic program from the terminal layer
// to compute each tabulated state's best remaining reward over the
// tabulated successors (spec §4.6). maxEntries <= 0 uses
// DefaultMaxEntries.
//
// Because the meta-problem is a relaxation of the original (coarser
// classes, a meta-separation lower bound), values computed here are
// admissible upper bounds when looked up against a projected original
// state — see CompressedBound.
func BuildDictionary(meta *model.Alp, maxEntries int) *Dictionary {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	n := meta.NbAircrafts()
	layers := make([]map[string]*model.AlpState, n+1)
	init := meta.InitialState()
	init.Canonicalize()
	layers[0] = map[string]*model.AlpState{stateKey(init): init}

	total := 1
	for depth := 0; depth < n; depth++ {
		next := make(map[string]*model.AlpState)
		capped := false
		for _, s := range layers[depth] {
			meta.ForEachInDomain(s, func(dec model.Decision) {
				if capped || dec.Encoded == model.SentinelDecision {
					return
				}
				ns := meta.Transition(s, dec)
				ns.Canonicalize()
				key := stateKey(ns)
				if _, seen := next[key]; seen {
					return
				}
				if total >= maxEntries {
					capped = true

					return
				}
				next[key] = ns
				total++
			})
		}
		layers[depth+1] = next
	}

	values, orders := backwardDP(meta, layers)

	dict := &Dictionary{byRem: make(map[string][]*Entry)}
	for depth, layer := range layers {
		for key, s := range layer {
			v, ok := values[depth][key]
			if !ok {
				continue
			}
			dict.byRem[remKey(s.Rem)] = append(dict.byRem[remKey(s.Rem)], &Entry{
				Rem:       append([]int(nil), s.Rem...),
				Info:      append([]model.RunwayState(nil), s.Info...),
				Sum:       s.RunwaySum(),
				Value:     v,
				BestOrder: orders[depth][key],
			})
		}
	}
	for key, entries := range dict.byRem {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Sum != entries[j].Sum {
				return entries[i].Sum > entries[j].Sum
			}

			return timesLess(entries[j].Info, entries[i].Info)
		})
		dict.byRem[key] = entries
	}

	return dict
}

// backwardDP computes, for every tabulated state, the exact best
// remaining reward to a terminal state reachable within the same
// dictionary (states whose continuation was capped out are left
// untabulated, not assigned a pessimistic value).
func backwardDP(meta *model.Alp, layers []map[string]*model.AlpState) ([]map[string]int, []map[string][]model.Decision) {
	depthCount := len(layers)
	values := make([]map[string]int, depthCount)
	orders := make([]map[string][]model.Decision, depthCount)
	last := depthCount - 1

	values[last] = map[string]int{}
	orders[last] = map[string][]model.Decision{}
	for key, s := range layers[last] {
		if s.Terminal() {
			values[last][key] = 0
		}
	}

	type candidate struct {
		d model.Decision
		v int
	}
	for depth := last - 1; depth >= 0; depth-- {
		values[depth] = map[string]int{}
		orders[depth] = map[string][]model.Decision{}
		for key, s := range layers[depth] {
			var cands []candidate
			meta.ForEachInDomain(s, func(dec model.Decision) {
				if dec.Encoded == model.SentinelDecision {
					return
				}
				ns := meta.Transition(s, dec)
				ns.Canonicalize()
				succ, ok := values[depth+1][stateKey(ns)]
				if !ok {
					return
				}
				cands = append(cands, candidate{d: dec, v: meta.TransitionCost(s, dec) + succ})
			})
			if len(cands) == 0 {
				continue
			}
			sort.Slice(cands, func(i, j int) bool { return cands[i].v > cands[j].v })
			order := make([]model.Decision, len(cands))
			for i, c := range cands {
				order[i] = c.d
			}
			values[depth][key] = cands[0].v
			orders[depth][key] = order
		}
	}

	return values, orders
}

func stateKey(s *model.AlpState) string {
	var b strings.Builder
	for _, r := range s.Rem {
		b.WriteString(strconv.Itoa(r))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, rw := range s.Info {
		b.WriteString(strconv.Itoa(rw.PrevClass))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(rw.PrevTime))
		b.WriteByte(',')
	}

	return b.String()
}

func remKey(rem []int) string {
	var b strings.Builder
	for _, r := range rem {
		b.WriteString(strconv.Itoa(r))
		b.WriteByte(',')
	}

	return b.String()
}

// timesLess compares two canonicalized Info slices by ascending
// lexicographic PrevTime, used only to give the dictionary's per-Rem
// bucket a deterministic secondary sort order.
func timesLess(a, b []model.RunwayState) bool {
	for i := range a {
		if a[i].PrevTime != b[i].PrevTime {
			return a[i].PrevTime < b[i].PrevTime
		}
	}

	return false
}
