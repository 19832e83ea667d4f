package dominance_test

import (
	"sync"
	"testing"

	"github.com/alpsolve/alp/internal/dominance"
	"github.com/alpsolve/alp/internal/model"
	"github.com/stretchr/testify/require"
)

func state(rem []int, times []int, classes []int) *model.AlpState {
	info := make([]model.RunwayState, len(times))
	for i := range times {
		info[i] = model.RunwayState{PrevTime: times[i], PrevClass: classes[i]}
	}

	return &model.AlpState{Rem: rem, Info: info}
}

func TestKeyOf_IgnoresRunwayOrder(t *testing.T) {
	a := state([]int{1}, []int{5, 2}, []int{1, 0})
	b := state([]int{1}, []int{2, 5}, []int{0, 1})
	require.Equal(t, dominance.KeyOf(a), dominance.KeyOf(b))
}

func TestKeyOf_DiffersOnRem(t *testing.T) {
	a := state([]int{1}, []int{5}, []int{0})
	b := state([]int{2}, []int{5}, []int{0})
	require.NotEqual(t, dominance.KeyOf(a), dominance.KeyOf(b))
}

func TestDominates_StrictlyBetterOnOneCoordinate(t *testing.T) {
	a := state([]int{0}, []int{2, 3}, []int{0, 0})
	b := state([]int{0}, []int{2, 5}, []int{0, 0})
	require.True(t, dominance.Dominates(a, b))
	require.False(t, dominance.Dominates(b, a))
}

func TestDominates_EqualStatesDominateNeither(t *testing.T) {
	a := state([]int{0}, []int{2}, []int{0})
	b := state([]int{0}, []int{2}, []int{0})
	require.False(t, dominance.Dominates(a, b))
	require.False(t, dominance.Dominates(b, a))
}

func TestFilter_AdmitRejectsDominated(t *testing.T) {
	f := dominance.New()
	better := state([]int{1}, []int{2}, []int{0})
	worse := state([]int{1}, []int{5}, []int{0})

	require.True(t, f.Admit(better))
	require.False(t, f.Admit(worse))
	require.Equal(t, 1, f.Len())
}

func TestFilter_AdmitEvictsDominated(t *testing.T) {
	f := dominance.New()
	worse := state([]int{1}, []int{5}, []int{0})
	better := state([]int{1}, []int{2}, []int{0})

	require.True(t, f.Admit(worse))
	require.True(t, f.Admit(better))
	require.Equal(t, 1, f.Len())
}

func TestDominates_AlignsByClassBeforeComparing(t *testing.T) {
	// Same Key (Rem equal, both runways carrying classes {0,1}), but the
	// runway slots are permuted relative to one another. Positional
	// comparison sees index 0: 3<5 and index 1: 90<100, and would wrongly
	// report s2 dominates s1. Aligned by PrevClass, class 0's elapsed
	// time is better on s2 (3 vs 100) but class 1's is worse (90 vs 5),
	// so neither dominates the other.
	s1 := state([]int{0}, []int{5, 100}, []int{1, 0})
	s2 := state([]int{0}, []int{3, 90}, []int{0, 1})
	require.Equal(t, dominance.KeyOf(s1), dominance.KeyOf(s2))
	require.False(t, dominance.Dominates(s2, s1))
	require.False(t, dominance.Dominates(s1, s2))
}

func TestFilter_IncomparableStatesBothSurvive(t *testing.T) {
	f := dominance.New()
	a := state([]int{1}, []int{2, 9}, []int{0, 0})
	b := state([]int{1}, []int{9, 2}, []int{0, 0})
	require.True(t, f.Admit(a))
	require.True(t, f.Admit(b))
	require.Equal(t, 2, f.Len())
}

func TestFilter_DifferentKeysDoNotInteract(t *testing.T) {
	f := dominance.New()
	a := state([]int{1}, []int{5}, []int{0})
	b := state([]int{2}, []int{1}, []int{0})
	require.True(t, f.Admit(a))
	require.True(t, f.Admit(b))
	require.Equal(t, 2, f.Len())
}

func TestFilter_ConcurrentAdmit(t *testing.T) {
	f := dominance.New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(t0 int) {
			defer wg.Done()
			f.Admit(state([]int{1}, []int{t0}, []int{0}))
		}(i)
	}
	wg.Wait()
	require.Equal(t, 1, f.Len()) // only the t0=0 state survives, all share one key
}
