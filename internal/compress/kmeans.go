// Package compress implements the compression engine of spec §4.5–§4.8:
// cluster classes into meta-classes, build a meta-instance, precompute a
// reachable meta-state dictionary, and expose that dictionary as an
// admissible bound (internal/bound) and a decision-preference heuristic
// (internal/heuristic).
package compress

import "math/rand"

// kmeansSeed is the fixed seed for cluster initialization, chosen so
// that compression output is reproducible across runs (mirrors
// tsp/rng.go's defaultRNGSeed policy).
const kmeansSeed int64 = 1

// kmeansMaxIterations bounds Lloyd's algorithm; separation vectors are
// small integer-valued points so convergence is fast in practice, but a
// hard cap keeps compression time bounded regardless of input.
const kmeansMaxIterations = 1000

// KMeans clusters the nbClasses rows of points (each of dimension
// nbClasses, typically a class's separation row) into k clusters using
// Lloyd's algorithm with k-means++-style seeding. It returns
// membership[c] = cluster index of class c, 0 <= membership[c] < k.
//
// If k >= nbClasses, every class becomes its own singleton cluster (no
// compression is possible, but the function still returns a valid
// membership rather than failing).
func KMeans(points [][]float64, k int) []int {
	n := len(points)
	if k <= 0 {
		k = 1
	}
	if k >= n {
		membership := make([]int, n)
		for i := range membership {
			membership[i] = i
		}

		return membership
	}

	rng := rand.New(rand.NewSource(kmeansSeed))
	centroids := seedCentroids(points, k, rng)
	membership := make([]int, n)

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, p := range points {
			best, bestDist := 0, sqDist(p, centroids[0])
			for c := 1; c < k; c++ {
				if d := sqDist(p, centroids[c]); d < bestDist {
					best, bestDist = c, d
				}
			}
			if membership[i] != best {
				membership[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}
		centroids = recompute(points, membership, k, centroids)
	}

	return membership
}

// seedCentroids picks k initial centroids via k-means++: the first is
// uniform-random, each subsequent one is chosen with probability
// proportional to its squared distance from the nearest existing
// centroid, favoring well-spread starting points and faster convergence.
func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	first := rng.Intn(len(points))
	centroids = append(centroids, cloneVec(points[first]))

	for len(centroids) < k {
		weights := make([]float64, len(points))
		total := 0.0
		for i, p := range points {
			d := nearestSqDist(p, centroids)
			weights[i] = d
			total += d
		}
		if total == 0 {
			// All remaining points coincide with an existing centroid;
			// fall back to uniform pick to keep seeding terminating.
			centroids = append(centroids, cloneVec(points[rng.Intn(len(points))]))
			continue
		}
		target := rng.Float64() * total
		acc := 0.0
		chosen := len(points) - 1
		for i, w := range weights {
			acc += w
			if acc >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, cloneVec(points[chosen]))
	}

	return centroids
}

func recompute(points [][]float64, membership []int, k int, prev [][]float64) [][]float64 {
	dim := len(points[0])
	sums := make([][]float64, k)
	counts := make([]int, k)
	for c := range sums {
		sums[c] = make([]float64, dim)
	}
	for i, p := range points {
		c := membership[i]
		counts[c]++
		for d := 0; d < dim; d++ {
			sums[c][d] += p[d]
		}
	}
	out := make([][]float64, k)
	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			out[c] = prev[c] // empty cluster keeps its last centroid
			continue
		}
		out[c] = make([]float64, dim)
		for d := 0; d < dim; d++ {
			out[c][d] = sums[c][d] / float64(counts[c])
		}
	}

	return out
}

func sqDist(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}

	return sum
}

func nearestSqDist(p []float64, centroids [][]float64) float64 {
	best := sqDist(p, centroids[0])
	for _, c := range centroids[1:] {
		if d := sqDist(p, c); d < best {
			best = d
		}
	}

	return best
}

func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
