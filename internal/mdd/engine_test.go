package mdd_test

import (
	"testing"

	"github.com/alpsolve/alp/instance"
	"github.com/alpsolve/alp/internal/dominance"
	"github.com/alpsolve/alp/internal/mdd"
	"github.com/alpsolve/alp/internal/model"
	"github.com/alpsolve/alp/internal/rank"
	"github.com/alpsolve/alp/internal/relax"
	"github.com/stretchr/testify/require"
)

func buildProblem(t *testing.T, inst instance.Instance) *model.Alp {
	t.Helper()
	require.NoError(t, inst.Validate())
	p, err := model.New(&inst)
	require.NoError(t, err)

	return p
}

// The separation-forced-delay scenario (spec §8 S2) has exactly one
// optimal value, -7, regardless of search variant or worker count.
func TestEngine_HybridFindsOptimum_S2(t *testing.T) {
	p := buildProblem(t, instance.Instance{
		NbClasses: 2, NbAircrafts: 2, NbRunways: 1,
		Classes: []int{0, 1}, Target: []int{0, 0}, Latest: []int{100, 100},
		Separation: [][]int{{0, 7}, {7, 0}},
	})
	rx := relax.New(p, nil)

	e := mdd.NewEngine(mdd.Config{Problem: p, Relax: rx, Workers: 4, Variant: mdd.Hybrid})
	res := e.Solve()
	require.False(t, res.TimedOut)
	require.Equal(t, -7, res.Value)
	require.Len(t, res.Decisions, 2)
}

func TestEngine_ClassicFindsOptimum_S2(t *testing.T) {
	p := buildProblem(t, instance.Instance{
		NbClasses: 2, NbAircrafts: 2, NbRunways: 1,
		Classes: []int{0, 1}, Target: []int{0, 0}, Latest: []int{100, 100},
		Separation: [][]int{{0, 7}, {7, 0}},
	})
	rx := relax.New(p, nil)

	e := mdd.NewEngine(mdd.Config{Problem: p, Relax: rx, Workers: 2, Variant: mdd.Classic})
	res := e.Solve()
	require.False(t, res.TimedOut)
	require.Equal(t, -7, res.Value)
}

func TestEngine_TrivialInstance_ZeroDeviation(t *testing.T) {
	p := buildProblem(t, instance.Instance{
		NbClasses: 1, NbAircrafts: 2, NbRunways: 1,
		Classes: []int{0, 0}, Target: []int{0, 10}, Latest: []int{100, 100},
		Separation: [][]int{{5}},
	})
	rx := relax.New(p, nil)

	e := mdd.NewEngine(mdd.Config{Problem: p, Relax: rx, Workers: 1})
	res := e.Solve()
	require.Equal(t, 0, res.Value)
}

func TestEngine_DominanceFilterDoesNotChangeOptimum(t *testing.T) {
	inst := instance.Instance{
		NbClasses: 2, NbAircrafts: 4, NbRunways: 2,
		Classes: []int{0, 0, 1, 1}, Target: []int{0, 1, 2, 3}, Latest: []int{50, 50, 50, 50},
		Separation: [][]int{{0, 4}, {4, 0}},
	}
	p := buildProblem(t, inst)
	rx := relax.New(p, nil)

	without := mdd.NewEngine(mdd.Config{Problem: p, Relax: rx, Workers: 2})
	resWithout := without.Solve()

	withDom := mdd.NewEngine(mdd.Config{Problem: p, Relax: rx, Dom: dominance.New(), Workers: 2})
	resWith := withDom.Solve()

	require.Equal(t, resWithout.Value, resWith.Value)
}

func TestEngine_ClassicWidthHeuristicStaysAdmissible(t *testing.T) {
	inst := instance.Instance{
		NbClasses: 2, NbAircrafts: 4, NbRunways: 1,
		Classes: []int{0, 0, 1, 1}, Target: []int{0, 2, 4, 6}, Latest: []int{50, 50, 50, 50},
		Separation: [][]int{{0, 3}, {3, 0}},
	}
	p := buildProblem(t, inst)
	rx := relax.New(p, nil)

	exact := mdd.NewEngine(mdd.Config{Problem: p, Relax: rx, Variant: mdd.Classic})
	resExact := exact.Solve()

	narrowed := mdd.NewEngine(mdd.Config{
		Problem: p, Relax: rx, Variant: mdd.Classic,
		Rank:  rank.AlpRanking{},
		Width: func(depth int) int { return 1 },
	})
	resNarrowed := narrowed.Solve()

	// A width-1 restricted search can only find a value <= the exact
	// optimum (it explores a subset of the true search tree).
	require.LessOrEqual(t, resNarrowed.Value, resExact.Value)
}

func TestEngine_InfeasibleInstance_NoSolution(t *testing.T) {
	p := buildProblem(t, instance.Instance{
		NbClasses: 1, NbAircrafts: 2, NbRunways: 1,
		Classes: []int{0, 0}, Target: []int{0, 0}, Latest: []int{0, 0},
		Separation: [][]int{{10}},
	})
	rx := relax.New(p, nil)

	e := mdd.NewEngine(mdd.Config{Problem: p, Relax: rx})
	res := e.Solve()
	require.Nil(t, res.Decisions)
}
