package heuristic_test

import (
	"testing"

	"github.com/alpsolve/alp/internal/heuristic"
	"github.com/alpsolve/alp/internal/model"
	"github.com/stretchr/testify/require"
)

func TestOrder_ReturnsBestOrderOnDominatingMatch(t *testing.T) {
	want := []model.Decision{{Class: 1, Runway: 0, Encoded: model.Encode(1, 0, 1)}}
	entries := []heuristic.Entry{
		{Info: []model.RunwayState{{PrevTime: 2, PrevClass: 0}}, Sum: 2, BestOrder: want},
	}
	project := func(s *model.AlpState) *model.AlpState { return s }
	lookup := func(rem []int) []heuristic.Entry { return entries }

	state := &model.AlpState{Rem: []int{1}, Info: []model.RunwayState{{PrevTime: 5, PrevClass: 0}}}
	got := heuristic.Order(project, lookup, state)
	require.Equal(t, want, got)
}

func TestOrder_NilWhenNoEntryDominates(t *testing.T) {
	entries := []heuristic.Entry{
		{Info: []model.RunwayState{{PrevTime: 9, PrevClass: 0}}, Sum: 9, BestOrder: []model.Decision{{Class: 0}}},
	}
	project := func(s *model.AlpState) *model.AlpState { return s }
	lookup := func(rem []int) []heuristic.Entry { return entries }

	state := &model.AlpState{Rem: []int{1}, Info: []model.RunwayState{{PrevTime: 5, PrevClass: 0}}}
	got := heuristic.Order(project, lookup, state)
	require.Nil(t, got)
}

func TestBias_PromotesPreferredClassFirst(t *testing.T) {
	decisions := []model.Decision{
		{Class: 0, Runway: 0},
		{Class: 1, Runway: 0},
		{Class: 2, Runway: 0},
	}
	preferred := []model.Decision{{Class: 0 /* meta class */, Runway: 0}} // meta-class 0 preferred
	membership := []int{1, 0, 1}                                         // original class 1 maps to meta-class 0

	out := heuristic.Bias(decisions, preferred, membership)
	require.Equal(t, 1, out[0].Class)
}

func TestBias_NoPreferredReturnsUnchanged(t *testing.T) {
	decisions := []model.Decision{{Class: 0}, {Class: 1}}
	out := heuristic.Bias(decisions, nil, []int{0, 1})
	require.Equal(t, decisions, out)
}
