package generate_test

import (
	"testing"

	"github.com/alpsolve/alp/internal/generate"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SameSeedIsDeterministic(t *testing.T) {
	cfg := generate.DefaultConfig()
	cfg.Seed = 42
	cfg.NbAircrafts = 12

	a := generate.Generate(cfg)
	b := generate.Generate(cfg)
	require.Equal(t, a, b)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	cfg := generate.DefaultConfig()
	cfg.NbAircrafts = 12
	cfg.Seed = 1
	a := generate.Generate(cfg)
	cfg.Seed = 2
	b := generate.Generate(cfg)
	require.NotEqual(t, a.Target, b.Target)
}

func TestGenerate_ProducesAValidInstance(t *testing.T) {
	cfg := generate.DefaultConfig()
	cfg.Seed = 7
	cfg.NbAircrafts = 30
	inst := generate.Generate(cfg)
	require.NoError(t, inst.Validate())
}

func TestGenerate_RespectsShape(t *testing.T) {
	cfg := generate.DefaultConfig()
	cfg.Seed = 3
	cfg.NbAircrafts = 20
	cfg.NbClasses = 5
	cfg.NbRunways = 3
	inst := generate.Generate(cfg)

	require.Len(t, inst.Classes, 20)
	require.Len(t, inst.Target, 20)
	require.Len(t, inst.Latest, 20)
	require.Len(t, inst.Separation, 5)
	for _, row := range inst.Separation {
		require.Len(t, row, 5)
	}
	for _, c := range inst.Classes {
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, 5)
	}
}

func TestGenerate_UnevenClusterSplitStillValid(t *testing.T) {
	cfg := generate.DefaultConfig()
	cfg.Seed = 9
	cfg.NbAircrafts = 15
	cfg.NbClasses = 7
	cfg.NbClusters = 3 // 7 % 3 != 0
	inst := generate.Generate(cfg)
	require.NoError(t, inst.Validate())
}
