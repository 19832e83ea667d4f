package bound_test

import (
	"testing"

	"github.com/alpsolve/alp/internal/bound"
	"github.com/alpsolve/alp/internal/model"
	"github.com/stretchr/testify/require"
)

func trivialMinusTen(*model.AlpState) int { return -10 }

func TestAdmissible_NoCompressedFallsBackToTrivial(t *testing.T) {
	a := bound.New(trivialMinusTen, nil)
	require.Equal(t, -10, a.Value(&model.AlpState{}))
}
