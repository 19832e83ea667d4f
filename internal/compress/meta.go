package compress

import (
	"math"

	"github.com/alpsolve/alp/instance"
)

// SeparationVectors turns a class separation matrix into one point per
// class (its row, as float64), the input k-means clusters on.
func SeparationVectors(sep [][]int) [][]float64 {
	points := make([][]float64, len(sep))
	for i, row := range sep {
		points[i] = make([]float64, len(row))
		for j, v := range row {
			points[i][j] = float64(v)
		}
	}

	return points
}

// BuildMetaSeparation computes the variant-A meta-separation matrix
// (spec §9 Open Question, resolved as variant A): an off-diagonal entry
// meta[m1][m2] is the minimum class-to-class separation between any pair
// of original classes mapped to m1 and m2 respectively — a lower bound,
// which keeps the meta-problem a relaxation of the original (never more
// constrained). The diagonal is forced to zero regardless of what the
// pooled classes' self-separation would otherwise compute to; this is
// the "forced-zero diagonal" this project standardizes on, since a
// meta-class's own internal ordering is exactly what compression gives
// up precision on.
func BuildMetaSeparation(sep [][]int, membership []int, nbMeta int) [][]int {
	meta := make([][]int, nbMeta)
	for i := range meta {
		meta[i] = make([]int, nbMeta)
		for j := range meta[i] {
			meta[i][j] = math.MaxInt
		}
	}
	for c1, m1 := range membership {
		for c2, m2 := range membership {
			if sep[c1][c2] < meta[m1][m2] {
				meta[m1][m2] = sep[c1][c2]
			}
		}
	}
	for i := range meta {
		for j := range meta[i] {
			if meta[i][j] == math.MaxInt {
				meta[i][j] = 0
			}
		}
		meta[i][i] = 0
	}

	return meta
}

// BuildMetaInstance projects inst down to nbMeta meta-classes via
// membership (membership[c] is the meta-class of original class c).
// Target and Latest carry over unchanged per aircraft; only Classes and
// Separation are coarsened. The result is solved by the exact same
// model.Alp machinery as the original problem — a meta-instance is
// simply a coarser-grained Instance, not a different kind of object.
func BuildMetaInstance(inst *instance.Instance, membership []int, nbMeta int) *instance.Instance {
	classes := make([]int, len(inst.Classes))
	for i, c := range inst.Classes {
		classes[i] = membership[c]
	}

	return &instance.Instance{
		NbClasses:   nbMeta,
		NbAircrafts: inst.NbAircrafts,
		NbRunways:   inst.NbRunways,
		Classes:     classes,
		Target:      inst.Target,
		Latest:      inst.Latest,
		Separation:  BuildMetaSeparation(inst.Separation, membership, nbMeta),
	}
}
