// Package instance defines the on-disk representation of an Aircraft
// Landing Problem instance and the structural validation applied to it
// before a solve or compression run ever touches it.
//
// Field shapes mirror the original instance record (AlpInstance in the
// source this module was derived from): counts, a class tag per
// aircraft, target/latest landing times, and a class-by-class
// separation matrix. Validation here is deliberately strict — an
// instance that passes Validate is guaranteed to satisfy every
// precondition internal/model.Alp relies on (target sorted, latest
// sorted per class, no negative separations) so the solver never has to
// re-check them on the hot path.
package instance

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Instance is the immutable input data for one ALP run.
//
// Invariants (enforced by Validate, relied upon by internal/model):
//   - NbClasses, NbAircrafts, NbRunways are all > 0.
//   - len(Classes) == len(Target) == len(Latest) == NbAircrafts.
//   - Classes[i] ∈ [0, NbClasses) for all i.
//   - Target[i] >= 0 and Target is non-decreasing in i.
//   - Latest[i] >= Target[i], and within a single class, Latest is
//     non-decreasing in aircraft index.
//   - Separation is NbClasses x NbClasses, every entry >= 0.
type Instance struct {
	NbClasses   int     `json:"nb_classes"`
	NbAircrafts int     `json:"nb_aircrafts"`
	NbRunways   int     `json:"nb_runways"`
	Classes     []int   `json:"classes"`
	Target      []int   `json:"target"`
	Latest      []int   `json:"latest"`
	Separation  [][]int `json:"separation"`
}

// Load reads and structurally validates an Instance from a JSON file at path.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads and validates an Instance from r (JSON).
func Decode(r io.Reader) (*Instance, error) {
	var inst Instance
	if err := json.NewDecoder(r).Decode(&inst); err != nil {
		return nil, fmt.Errorf("instance: decode: %w", err)
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	return &inst, nil
}

// Save writes inst as JSON to path, creating or truncating the file.
func (inst *Instance) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("instance: create %s: %w", path, err)
	}
	defer f.Close()

	return inst.Encode(f)
}

// Encode writes inst as indented JSON to w.
func (inst *Instance) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(inst)
}

// Validate checks every structural invariant documented on Instance.
// It returns the first violation found, wrapped with enough context
// (field name, offending index) to act on without re-deriving it.
func (inst *Instance) Validate() error {
	if inst.NbClasses <= 0 || inst.NbAircrafts <= 0 || inst.NbRunways <= 0 {
		return fmt.Errorf("%w: nb_classes=%d nb_aircrafts=%d nb_runways=%d",
			ErrBadCounts, inst.NbClasses, inst.NbAircrafts, inst.NbRunways)
	}
	if len(inst.Classes) != inst.NbAircrafts {
		return fmt.Errorf("%w: classes has %d entries, want %d", ErrLengthMismatch, len(inst.Classes), inst.NbAircrafts)
	}
	if len(inst.Target) != inst.NbAircrafts {
		return fmt.Errorf("%w: target has %d entries, want %d", ErrLengthMismatch, len(inst.Target), inst.NbAircrafts)
	}
	if len(inst.Latest) != inst.NbAircrafts {
		return fmt.Errorf("%w: latest has %d entries, want %d", ErrLengthMismatch, len(inst.Latest), inst.NbAircrafts)
	}
	if len(inst.Separation) != inst.NbClasses {
		return fmt.Errorf("%w: separation has %d rows, want %d", ErrLengthMismatch, len(inst.Separation), inst.NbClasses)
	}
	for c, row := range inst.Separation {
		if len(row) != inst.NbClasses {
			return fmt.Errorf("%w: separation row %d has %d entries, want %d", ErrLengthMismatch, c, len(row), inst.NbClasses)
		}
		for cp, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: separation[%d][%d]=%d", ErrNegativeSeparation, c, cp, v)
			}
		}
	}

	lastLatestPerClass := make([]int, inst.NbClasses)
	seenClass := make([]bool, inst.NbClasses)
	prevTarget := 0
	for i := 0; i < inst.NbAircrafts; i++ {
		c := inst.Classes[i]
		if c < 0 || c >= inst.NbClasses {
			return fmt.Errorf("%w: classes[%d]=%d", ErrClassOutOfRange, i, c)
		}
		if inst.Target[i] < 0 {
			return fmt.Errorf("%w: target[%d]=%d", ErrNegativeTarget, i, inst.Target[i])
		}
		if i > 0 && inst.Target[i] < prevTarget {
			return fmt.Errorf("%w: target[%d]=%d < target[%d]=%d", ErrTargetNotSorted, i, inst.Target[i], i-1, prevTarget)
		}
		prevTarget = inst.Target[i]
		if inst.Latest[i] < inst.Target[i] {
			return fmt.Errorf("%w: aircraft %d latest=%d target=%d", ErrLatestBeforeTarget, i, inst.Latest[i], inst.Target[i])
		}
		if seenClass[c] && inst.Latest[i] < lastLatestPerClass[c] {
			return fmt.Errorf("%w: class %d aircraft %d latest=%d < previous latest=%d",
				ErrLatestNotSortedPerClass, c, i, inst.Latest[i], lastLatestPerClass[c])
		}
		lastLatestPerClass[c] = inst.Latest[i]
		seenClass[c] = true
	}

	return nil
}

// ClassCounts returns, for each class, the number of aircraft of that class.
func (inst *Instance) ClassCounts() []int {
	counts := make([]int, inst.NbClasses)
	for _, c := range inst.Classes {
		counts[c]++
	}

	return counts
}
