package rank_test

import (
	"testing"

	"github.com/alpsolve/alp/internal/model"
	"github.com/alpsolve/alp/internal/rank"
	"github.com/stretchr/testify/require"
)

func state(rem []int, info []model.RunwayState) *model.AlpState {
	return &model.AlpState{Rem: rem, Info: info}
}

func TestLess_OrdersByRunwaySumFirst(t *testing.T) {
	a := state([]int{1}, []model.RunwayState{{PrevTime: 1, PrevClass: 0}})
	b := state([]int{1}, []model.RunwayState{{PrevTime: 5, PrevClass: 0}})
	require.True(t, rank.Less(a, b))
	require.False(t, rank.Less(b, a))
}

func TestLess_TiesBreakOnRem(t *testing.T) {
	a := state([]int{0, 1}, []model.RunwayState{{PrevTime: 3, PrevClass: 0}})
	b := state([]int{1, 0}, []model.RunwayState{{PrevTime: 3, PrevClass: 0}})
	require.True(t, rank.Less(a, b))
}

func TestLess_TiesBreakOnInfo(t *testing.T) {
	a := state([]int{0}, []model.RunwayState{{PrevTime: 3, PrevClass: 0}})
	b := state([]int{0}, []model.RunwayState{{PrevTime: 3, PrevClass: 1}})
	require.True(t, rank.Less(a, b))
}

func TestLess_IrreflexiveOnEqualStates(t *testing.T) {
	a := state([]int{1}, []model.RunwayState{{PrevTime: 3, PrevClass: 0}})
	b := state([]int{1}, []model.RunwayState{{PrevTime: 3, PrevClass: 0}})
	require.False(t, rank.Less(a, b))
	require.False(t, rank.Less(b, a))
}

func TestAlpRanking_Compare(t *testing.T) {
	var r rank.AlpRanking
	a := state([]int{1}, []model.RunwayState{{PrevTime: 1, PrevClass: 0}})
	b := state([]int{1}, []model.RunwayState{{PrevTime: 5, PrevClass: 0}})
	require.Equal(t, -1, r.Compare(a, b))
	require.Equal(t, 1, r.Compare(b, a))
	require.Equal(t, 0, r.Compare(a, a))
}
