// Alp is the ALP dynamic-programming problem: it owns the precomputed
// per-class aircraft order and answers the four questions a
// branch-and-bound search needs — what variable comes next, what
// decisions are admissible, what state and cost a decision produces.
//
// Rationale (mirrors lvlath/tsp/bb.go's bbEngine): precompute everything
// that depends only on the (immutable) Instance once, up front, so the
// search's hot loop (for_each_in_domain / transition) touches only dense
// slices and no interface dispatch.
//
// Complexity: construction O(N + K). for_each_in_domain is O(K*R) per
// call; transition/transition_cost are O(1).
package model

import (
	"fmt"

	"github.com/alpsolve/alp/instance"
)

// Alp is the problem model described in spec §4.1. It is read-only after
// New and safe to share across goroutines.
type Alp struct {
	inst *instance.Instance

	nbClasses   int
	nbAircrafts int
	nbRunways   int

	classes    []int
	target     []int
	latest     []int
	separation [][]int

	// next[c] lists the aircraft of class c in *reverse* index order, so
	// that when rem[c]==k the next aircraft to schedule is next[c][k-1]
	// (spec §4.1).
	next [][]int

	// classCounts[c] is the total number of aircraft of class c.
	classCounts []int
}

// New builds an Alp problem from a validated Instance. inst must already
// satisfy instance.Instance.Validate (New does not re-validate).
func New(inst *instance.Instance) (*Alp, error) {
	if inst.NbRunways <= 0 {
		return nil, ErrNoRunways
	}

	p := &Alp{
		inst:        inst,
		nbClasses:   inst.NbClasses,
		nbAircrafts: inst.NbAircrafts,
		nbRunways:   inst.NbRunways,
		classes:     inst.Classes,
		target:      inst.Target,
		latest:      inst.Latest,
		separation:  inst.Separation,
		classCounts: inst.ClassCounts(),
	}
	p.precomputeNext()

	return p, nil
}

// precomputeNext builds next[c] = aircraft of class c in reverse index order.
func (p *Alp) precomputeNext() {
	p.next = make([][]int, p.nbClasses)
	ascending := make([][]int, p.nbClasses)
	for i, c := range p.classes {
		ascending[c] = append(ascending[c], i)
	}
	for c := 0; c < p.nbClasses; c++ {
		asc := ascending[c]
		rev := make([]int, len(asc))
		for j, a := range asc {
			rev[len(asc)-1-j] = a
		}
		p.next[c] = rev
	}
}

// NbClasses, NbAircrafts, NbRunways expose the instance shape.
func (p *Alp) NbClasses() int   { return p.nbClasses }
func (p *Alp) NbAircrafts() int { return p.nbAircrafts }
func (p *Alp) NbRunways() int   { return p.nbRunways }

// Separation returns sep[c][c'], treating an absent predecessor
// (class == NoClass) as zero separation, per spec §8 invariant 2.
func (p *Alp) Separation(prevClass, class int) int {
	if prevClass == NoClass {
		return 0
	}

	return p.separation[prevClass][class]
}

// Target and Latest expose per-aircraft time bounds.
func (p *Alp) Target(aircraft int) int { return p.target[aircraft] }
func (p *Alp) Latest(aircraft int) int { return p.latest[aircraft] }
func (p *Alp) Class(aircraft int) int  { return p.classes[aircraft] }

// NextAircraft returns the aircraft identity Alp would schedule next for
// class c given rem remaining aircraft of that class.
func (p *Alp) NextAircraft(class, rem int) int {
	return p.next[class][rem-1]
}

// InitialState returns the state defined in spec §3: every class fully
// remaining, every runway empty.
func (p *Alp) InitialState() *AlpState {
	rem := make([]int, p.nbClasses)
	copy(rem, p.classCounts)
	info := make([]RunwayState, p.nbRunways)
	for r := range info {
		info[r] = RunwayState{PrevTime: -1, PrevClass: NoClass}
	}

	return &AlpState{Rem: rem, Info: info}
}

// NbVariables returns N: the MDD assigns one variable per scheduled aircraft.
func (p *Alp) NbVariables() int { return p.nbAircrafts }

// NextVariable returns the variable index at a given search depth, or -1
// once every aircraft has been scheduled.
func (p *Alp) NextVariable(depth int) int {
	if depth < p.nbAircrafts {
		return depth
	}

	return -1
}

// arrival computes arrival(a, r) = max(target[a], earliest(a, r)) for the
// next aircraft a against runway r's current state.
func (p *Alp) arrival(aircraft int, rw RunwayState) int {
	if rw.PrevClass == NoClass {
		return p.target[aircraft]
	}
	earliest := rw.PrevTime + p.Separation(rw.PrevClass, p.classes[aircraft])
	if p.target[aircraft] > earliest {
		return p.target[aircraft]
	}

	return earliest
}

// ForEachInDomain emits every admissible decision from state (spec
// §4.1). It calls emit(decision) for each one, in increasing (class,
// runway) order, class-major. If no (class, runway) pair is admissible
// and the state is not terminal, it emits the sentinel decision.
func (p *Alp) ForEachInDomain(state *AlpState, emit func(Decision)) {
	any := false
	for c := 0; c < p.nbClasses; c++ {
		if state.Rem[c] <= 0 {
			continue
		}
		aircraft := p.NextAircraft(c, state.Rem[c])
		for r := 0; r < p.nbRunways; r++ {
			t := p.arrival(aircraft, state.Info[r])
			if t <= p.latest[aircraft] {
				any = true
				emit(Decision{Class: c, Runway: r, Encoded: Encode(c, r, p.nbRunways)})
			}
		}
	}
	if !any && !state.Terminal() {
		emit(Decision{Class: -1, Runway: -1, Encoded: SentinelDecision})
	}
}

// Transition applies decision to state and returns the successor state.
// Transitioning the sentinel decision is a programmer error: callers
// must treat the sentinel's continuation as infeasible (-infinity cost)
// without ever calling Transition on it.
func (p *Alp) Transition(state *AlpState, d Decision) *AlpState {
	if d.Encoded == SentinelDecision {
		panic("model: Transition called on sentinel decision")
	}
	aircraft := p.NextAircraft(d.Class, state.Rem[d.Class])
	t := p.arrival(aircraft, state.Info[d.Runway])

	next := state.Clone()
	next.Rem[d.Class]--
	next.Info[d.Runway] = RunwayState{PrevTime: t, PrevClass: p.classes[aircraft]}

	return next
}

// TransitionCost returns -(arrival - target) for decision d from state,
// i.e. the negated schedule deviation the solver accumulates toward a
// maximized total. The sentinel decision costs negative infinity and
// must never be passed here; the caller treats it as a dead branch
// (internal/mdd's Engine drops a node whose only decision is the
// sentinel).
func (p *Alp) TransitionCost(state *AlpState, d Decision) int {
	if d.Encoded == SentinelDecision {
		panic("model: TransitionCost called on sentinel decision")
	}
	aircraft := p.NextAircraft(d.Class, state.Rem[d.Class])
	t := p.arrival(aircraft, state.Info[d.Runway])

	return -(t - p.target[aircraft])
}

// AircraftFor returns the aircraft identity a decision implicitly names
// against state, for presentation (per-runway schedule reconstruction).
func (p *Alp) AircraftFor(state *AlpState, d Decision) int {
	return p.NextAircraft(d.Class, state.Rem[d.Class])
}

// DecodeDecision validates and decodes a raw decision integer, used when
// replaying a solution's decision trace.
func (p *Alp) DecodeDecision(encoded int) (Decision, error) {
	if encoded == SentinelDecision {
		return Decision{}, fmt.Errorf("%w: sentinel", ErrUnknownDecision)
	}
	class, runway := Decode(encoded, p.nbRunways)
	if class < 0 || class >= p.nbClasses || runway < 0 || runway >= p.nbRunways {
		return Decision{}, fmt.Errorf("%w: %d", ErrUnknownDecision, encoded)
	}

	return Decision{Class: class, Runway: runway, Encoded: encoded}, nil
}
