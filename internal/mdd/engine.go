// Package mdd's Engine: a best-first branch-and-bound search over
// Problem/Relaxation/Ranking/Dominance, in two variants (spec §4.9, §9).
//
//   - Hybrid (default): a single shared fringe, ordered by admissible
//     bound; Workers goroutines pull whatever node looks most promising
//     next, with no synchronization between search depths. This is the
//     variant to use when the relaxation bound is tight and width
//     limiting is unnecessary.
//   - Classic: search proceeds one depth layer at a time behind a
//     barrier; each layer's nodes are expanded in parallel, then (if a
//     WidthHeuristic and Ranking are configured) narrowed to a
//     *restricted* layer of the top-ranked survivors, with the
//     discarded nodes folded into one *relaxed* node via
//     Relaxation.Merge so the bound still accounts for them even though
//     they are no longer individually explored. This mirrors the
//     restricted/relaxed layer pair a diagram-based MDD solver keeps.
package mdd

import (
	"context"
	"math"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alpsolve/alp/internal/model"
)

// Variant selects which search discipline Engine.Solve runs.
type Variant int

const (
	// Hybrid runs the unsynchronized shared-fringe best-first search.
	Hybrid Variant = iota
	// Classic runs the layer-barrier restricted/relaxed search.
	Classic
)

// Config wires an Engine to the ALP-specific components. Problem and
// Relax must not be nil; every other field is optional.
type Config struct {
	Problem Problem
	Relax   Relaxation
	Rank    Ranking                  // required only if Width is set
	Dom     Dominance                // optional: prunes dominated children before they enter the fringe/layer
	Width   WidthHeuristic           // optional: Classic-only layer narrowing
	Cutoff  Cutoff                   // optional: time/node budget
	Bias    DecisionHeuristicBuilder // optional: spec §4.8 decision ordering
	Workers int                      // degree of parallelism; < 1 normalizes to 1
	Variant Variant
	Ctx     context.Context // optional; defaults to context.Background()
}

func (c *Config) normalize() {
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Ctx == nil {
		c.Ctx = context.Background()
	}
}

// Result is the outcome of a completed or cut-off search.
type Result struct {
	Value         int
	Decisions     []model.Decision
	NodesExpanded int
	TimedOut      bool
}

// Engine runs one search per instance; it is not reusable across calls
// to Solve (construct a new Engine for each search).
type Engine struct {
	cfg Config

	mu        sync.Mutex
	bestValue int
	bestPath  []model.Decision

	nodes int64
	start time.Time
}

// NewEngine builds an Engine from cfg. cfg is copied and normalized
// (Workers and Ctx defaulted) before use.
func NewEngine(cfg Config) *Engine {
	cfg.normalize()

	return &Engine{cfg: cfg, bestValue: math.MinInt}
}

// Solve runs the configured search variant to completion or cutoff.
func (e *Engine) Solve() Result {
	e.start = time.Now()
	if e.cfg.Variant == Classic {
		return e.solveClassic()
	}

	return e.solveHybrid()
}

func (e *Engine) makeRoot() *Node {
	state := e.cfg.Problem.InitialState()
	bound := e.cfg.Relax.FastUpperBound(state)

	return &Node{State: state, Depth: 0, Cost: 0, Bound: bound}
}

// cutoffHit reports whether the context was cancelled or the configured
// Cutoff fired.
func (e *Engine) cutoffHit() bool {
	if e.cfg.Ctx.Err() != nil {
		return true
	}
	if e.cfg.Cutoff == nil {
		return false
	}

	return e.cfg.Cutoff(int(atomic.LoadInt64(&e.nodes)), time.Since(e.start))
}

func (e *Engine) currentBest() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.bestValue
}

// considerSolution records n as the new incumbent if it beats the
// current best. Relaxed nodes (see Node.Relaxed) are never authoritative
// solutions and must not reach here as a candidate.
func (e *Engine) considerSolution(n *Node) {
	if n.Relaxed {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if n.Cost > e.bestValue {
		e.bestValue = n.Cost
		e.bestPath = n.Path
	}
}

func (e *Engine) result(timedOut bool) Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.bestValue == math.MinInt {
		// No terminal state was ever reached (e.g. infeasible instance
		// or cutoff before the first solution): Decisions is left nil
		// and Value at 0, which is not a reward; a nil Decisions marks
		// the no-solution case.
		return Result{NodesExpanded: int(atomic.LoadInt64(&e.nodes)), TimedOut: timedOut}
	}

	return Result{
		Value:         e.bestValue,
		Decisions:     e.bestPath,
		NodesExpanded: int(atomic.LoadInt64(&e.nodes)),
		TimedOut:      timedOut,
	}
}

// expand produces n's admissible, bound-surviving, dominance-surviving
// children, or records n as a candidate solution if it is terminal.
func (e *Engine) expand(n *Node) []*Node {
	atomic.AddInt64(&e.nodes, 1)

	if n.State.Terminal() {
		e.considerSolution(n)

		return nil
	}
	if n.Bound <= e.currentBest() {
		return nil
	}

	var decs []model.Decision
	e.cfg.Problem.ForEachInDomain(n.State, func(d model.Decision) { decs = append(decs, d) })
	if len(decs) == 1 && decs[0].Encoded == model.SentinelDecision {
		return nil
	}
	if e.cfg.Bias != nil {
		decs = e.cfg.Bias(n.State, decs)
	}

	children := make([]*Node, 0, len(decs))
	for _, d := range decs {
		next := e.cfg.Problem.Transition(n.State, d)
		cost := e.cfg.Problem.TransitionCost(n.State, d)
		if e.cfg.Dom != nil && !e.cfg.Dom.Admit(next) {
			continue
		}
		bound := n.Cost + cost + e.cfg.Relax.FastUpperBound(next)
		if bound <= e.currentBest() {
			continue
		}
		children = append(children, n.child(next, d, cost, bound))
	}

	return children
}

// solveHybrid runs the shared-fringe variant (see package doc).
func (e *Engine) solveHybrid() Result {
	f := newFringe()
	f.push(e.makeRoot())

	var pending int64 = 1
	var timedOut int32

	var wg sync.WaitGroup
	for i := 0; i < e.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for atomic.LoadInt64(&pending) > 0 {
				if atomic.LoadInt32(&timedOut) == 1 {
					return
				}
				n, ok := f.pop()
				if !ok {
					runtime.Gosched()

					continue
				}
				if e.cutoffHit() {
					atomic.StoreInt32(&timedOut, 1)
					atomic.AddInt64(&pending, -1)

					continue
				}
				children := e.expand(n)
				atomic.AddInt64(&pending, int64(len(children))-1)
				for _, c := range children {
					f.push(c)
				}
			}
		}()
	}
	wg.Wait()

	return e.result(atomic.LoadInt32(&timedOut) == 1)
}

// solveClassic runs the layer-barrier restricted/relaxed variant (see
// package doc).
func (e *Engine) solveClassic() Result {
	layer := []*Node{e.makeRoot()}
	timedOut := false

	for depth := 0; depth < e.cfg.Problem.NbVariables() && len(layer) > 0; depth++ {
		if e.cutoffHit() {
			timedOut = true

			break
		}

		jobs := make(chan *Node, len(layer))
		for _, n := range layer {
			jobs <- n
		}
		close(jobs)

		results := make(chan []*Node, len(layer))
		var wg sync.WaitGroup
		for w := 0; w < e.cfg.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for n := range jobs {
					results <- e.expand(n)
				}
			}()
		}
		wg.Wait()
		close(results)

		var next []*Node
		for cs := range results {
			next = append(next, cs...)
		}

		layer = e.applyWidth(depth+1, next)
	}

	for _, n := range layer {
		if n.State.Terminal() {
			e.considerSolution(n)
		}
	}

	return e.result(timedOut)
}

// applyWidth narrows nodes to at most Width(depth) survivors, ranked by
// Rank ascending (best first). Discarded nodes are folded into a single
// relaxed node via Relax.Merge so the search bound still reflects their
// optimistic contribution; that relaxed node's Path is not a real
// decision sequence and must never be read as a solution.
func (e *Engine) applyWidth(depth int, nodes []*Node) []*Node {
	if e.cfg.Width == nil || e.cfg.Rank == nil {
		return nodes
	}
	limit := e.cfg.Width(depth)
	if limit <= 0 || len(nodes) <= limit {
		return nodes
	}

	sort.Slice(nodes, func(i, j int) bool {
		return e.cfg.Rank.Compare(nodes[i].State, nodes[j].State) < 0
	})
	kept := append([]*Node(nil), nodes[:limit]...)
	dropped := nodes[limit:]

	states := make([]*model.AlpState, len(dropped))
	bestCost := dropped[0].Cost
	for i, n := range dropped {
		states[i] = n.State
		if n.Cost > bestCost {
			bestCost = n.Cost
		}
	}
	merged := e.cfg.Relax.Merge(states)
	relaxedNode := &Node{
		State:   merged,
		Depth:   depth,
		Cost:    bestCost,
		Bound:   bestCost + e.cfg.Relax.FastUpperBound(merged),
		Path:    dropped[0].Path,
		Relaxed: true,
	}

	return append(kept, relaxedNode)
}
