// Package generate builds random ALP instances for benchmarking and
// testing, translating original_source/src/generate.rs's sampling
// scheme onto instance.Instance: classes are drawn uniformly, separation
// positions come from a per-cluster Gaussian around a uniform centroid
// (so classes in the same cluster separate less from one another than
// from other clusters), target times accumulate exponential
// interarrival gaps, and latest times are a uniform margin above target
// resampled until they stay non-decreasing within a class (the
// structural invariant instance.Instance.Validate enforces).
//
// Rationale for math/rand over a cryptographic generator: the Rust
// original seeds a ChaCha stream cipher as its PRNG; no pack repo
// exercises an equivalent construction, and jwmdev-brt08/backend/main.go
// seeds its passenger-arrival sampling with plain math/rand, which is
// the grounded choice here too — reproducibility only requires a
// deterministic stream, not cryptographic strength.
package generate

import (
	"math"
	"math/rand"
	"time"

	"github.com/alpsolve/alp/instance"
)

// Config mirrors AlpGenerator's clap fields in generate.rs.
type Config struct {
	Seed                     int64
	NbAircrafts              int
	NbRunways                int
	NbClasses                int
	NbClusters               int
	MinSeparationPosition    int
	MaxSeparationPosition    int
	SeparationPositionStdDev float64
	AvgInterarrivalTime      float64
}

// DefaultConfig mirrors generate.rs's #[clap(default_value = ...)] set,
// with Seed left at 0 (Generate treats 0 as "derive from wall clock").
func DefaultConfig() Config {
	return Config{
		NbAircrafts:              50,
		NbRunways:                5,
		NbClasses:                4,
		NbClusters:               2,
		MinSeparationPosition:    100,
		MaxSeparationPosition:    200,
		SeparationPositionStdDev: 10,
		AvgInterarrivalTime:      50,
	}
}

// Generate builds a random instance.Instance from cfg. A non-zero
// cfg.Seed makes the result reproducible; cfg.Seed == 0 derives a seed
// from the current time, matching the original's "no --seed given"
// fallback.
func Generate(cfg Config) *instance.Instance {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	perCluster := classesPerCluster(cfg.NbClasses, cfg.NbClusters)
	classes := generateClasses(cfg, rng)
	separation := generateSeparation(cfg, rng, perCluster)
	target := generateTarget(cfg, rng)
	latest := generateLatest(cfg, rng, target, classes)

	return &instance.Instance{
		NbClasses:   cfg.NbClasses,
		NbAircrafts: cfg.NbAircrafts,
		NbRunways:   cfg.NbRunways,
		Classes:     classes,
		Target:      target,
		Latest:      latest,
		Separation:  separation,
	}
}

func classesPerCluster(nbClasses, nbClusters int) []int {
	per := make([]int, nbClusters)
	for i := range per {
		per[i] = nbClasses / nbClusters
	}
	for i := 0; i < nbClasses%nbClusters; i++ {
		per[i]++
	}

	return per
}

func generateClasses(cfg Config, rng *rand.Rand) []int {
	classes := make([]int, cfg.NbAircrafts)
	for i := range classes {
		classes[i] = rng.Intn(cfg.NbClasses)
	}

	return classes
}

// generateSeparation, for each cluster a, scatters its member classes'
// positions with a Gaussian of the configured std-dev around a uniformly
// sampled centroid and sets separation[i][j] within a to the absolute
// difference of those positions. For every other cluster b, b's member
// positions are redrawn around a fresh uniformly sampled centroid, and
// separation[i][j] (i in a, j in b) is the absolute difference between
// i's and j's positions, so the matrix need not be symmetric.
func generateSeparation(cfg Config, rng *rand.Rand, perCluster []int) [][]int {
	members := make([][]int, cfg.NbClusters)
	t := 0
	for i, n := range perCluster {
		for j := 0; j < n; j++ {
			members[i] = append(members[i], t)
			t++
		}
	}

	sep := make([][]int, cfg.NbClasses)
	for i := range sep {
		sep[i] = make([]int, cfg.NbClasses)
	}

	span := cfg.MaxSeparationPosition - cfg.MinSeparationPosition
	randCentroid := func() int { return cfg.MinSeparationPosition + rng.Intn(span+1) }
	positionsFor := func(centroid int, n int) []int {
		positions := make([]int, n)
		for i := range positions {
			positions[i] = round(float64(centroid) + rng.NormFloat64()*cfg.SeparationPositionStdDev)
		}

		return positions
	}

	for a := 0; a < cfg.NbClusters; a++ {
		positionsA := positionsFor(randCentroid(), len(members[a]))

		for b := 0; b < cfg.NbClusters; b++ {
			if a == b {
				for i, ti := range members[a] {
					for j, tj := range members[a] {
						sep[ti][tj] = absDiff(positionsA[i], positionsA[j])
					}
				}

				continue
			}
			positionsB := positionsFor(randCentroid(), len(members[b]))
			for i, ti := range members[a] {
				for j, tj := range members[b] {
					sep[ti][tj] = absDiff(positionsA[i], positionsB[j])
				}
			}
		}
	}

	return sep
}

// generateTarget accumulates exponential interarrival gaps
// (-ln(U)*avg, equivalently avg*Exp(1)) starting from zero.
func generateTarget(cfg Config, rng *rand.Rand) []int {
	target := make([]int, cfg.NbAircrafts)
	for i := 1; i < cfg.NbAircrafts; i++ {
		target[i] = target[i-1] + round(rng.ExpFloat64()*cfg.AvgInterarrivalTime)
	}

	return target
}

// generateLatest samples a uniform margin over [0, 10*avg) above each
// aircraft's target, resampling until the result does not regress the
// previous latest time seen for that aircraft's class (the per-class
// monotonicity instance.Instance.Validate requires).
func generateLatest(cfg Config, rng *rand.Rand, target, classes []int) []int {
	latest := make([]int, cfg.NbAircrafts)
	last := make([]int, cfg.NbClasses)
	span := int(10 * cfg.AvgInterarrivalTime)
	if span <= 0 {
		span = 1
	}

	for i := 0; i < cfg.NbAircrafts; i++ {
		for {
			end := target[i] + rng.Intn(span)
			if end >= last[classes[i]] {
				latest[i] = end
				last[classes[i]] = end

				break
			}
		}
	}

	return latest
}

func round(f float64) int { return int(math.Round(f)) }

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
