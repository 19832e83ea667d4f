package relax_test

import (
	"testing"

	"github.com/alpsolve/alp/instance"
	"github.com/alpsolve/alp/internal/model"
	"github.com/alpsolve/alp/internal/relax"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T) *model.Alp {
	t.Helper()
	inst := instance.Instance{
		NbClasses: 2, NbAircrafts: 4, NbRunways: 2,
		Classes: []int{0, 0, 1, 1}, Target: []int{0, 1, 2, 3}, Latest: []int{50, 50, 50, 50},
		Separation: [][]int{{0, 5}, {5, 0}},
	}
	require.NoError(t, inst.Validate())
	p, err := model.New(&inst)
	require.NoError(t, err)

	return p
}

func TestMerge_RemTakesMax(t *testing.T) {
	p := build(t)
	rx := relax.New(p, nil)

	a := &model.AlpState{
		Rem:  []int{2, 1},
		Info: []model.RunwayState{{PrevTime: 3, PrevClass: 0}, {PrevTime: -1, PrevClass: model.NoClass}},
	}
	b := &model.AlpState{
		Rem:  []int{1, 2},
		Info: []model.RunwayState{{PrevTime: 1, PrevClass: 0}, {PrevTime: -1, PrevClass: model.NoClass}},
	}

	merged := rx.Merge([]*model.AlpState{a, b})
	require.Equal(t, []int{2, 2}, merged.Rem)
	require.Equal(t, 1, merged.Info[0].PrevTime) // min of {3, 1}
	require.Equal(t, 0, merged.Info[0].PrevClass) // both agree
	require.Equal(t, model.NoClass, merged.Info[1].PrevClass)
}

func TestMerge_DisagreeingPrevClassResetsToNoClass(t *testing.T) {
	p := build(t)
	rx := relax.New(p, nil)

	a := &model.AlpState{
		Rem:  []int{0, 0},
		Info: []model.RunwayState{{PrevTime: 5, PrevClass: 0}},
	}
	b := &model.AlpState{
		Rem:  []int{0, 0},
		Info: []model.RunwayState{{PrevTime: 5, PrevClass: 1}},
	}

	merged := rx.Merge([]*model.AlpState{a, b})
	require.Equal(t, model.NoClass, merged.Info[0].PrevClass)
}

func TestMerge_SingleState(t *testing.T) {
	p := build(t)
	rx := relax.New(p, nil)
	s := p.InitialState()
	merged := rx.Merge([]*model.AlpState{s})
	require.Equal(t, s.Rem, merged.Rem)
	require.Equal(t, s.Info, merged.Info)
}

func TestFastUpperBound_ZeroWhenLatestFarFromTarget(t *testing.T) {
	p := build(t)
	rx := relax.New(p, nil)
	s := p.InitialState()
	require.Equal(t, 0, rx.FastUpperBound(s)) // every margin target<=latest is non-positive
}

func TestFastUpperBound_NegativeWhenInfeasibleMargin(t *testing.T) {
	inst := instance.Instance{
		NbClasses: 1, NbAircrafts: 1, NbRunways: 1,
		Classes: []int{0}, Target: []int{10}, Latest: []int{4},
		Separation: [][]int{{0}},
	}
	p, err := model.New(&inst)
	require.NoError(t, err)
	rx := relax.New(p, nil)
	s := p.InitialState()
	require.Equal(t, -6, rx.FastUpperBound(s))
}

type fakeBound struct {
	value int
	ok    bool
}

func (f fakeBound) Bound(*model.AlpState) (int, bool) { return f.value, f.ok }

func TestFastUpperBound_ComposesWithCompressionBound(t *testing.T) {
	p := build(t)

	rxTighter := relax.New(p, fakeBound{value: -1, ok: true})
	require.Equal(t, -1, rxTighter.FastUpperBound(p.InitialState()))

	rxLooser := relax.New(p, fakeBound{value: 100, ok: true})
	require.Equal(t, 0, rxLooser.FastUpperBound(p.InitialState()))

	rxAbsent := relax.New(p, fakeBound{ok: false})
	require.Equal(t, 0, rxAbsent.FastUpperBound(p.InitialState()))
}

func TestRelaxEdge_Identity(t *testing.T) {
	p := build(t)
	rx := relax.New(p, nil)
	require.Equal(t, -7, rx.RelaxEdge(-7))
}
