// Package compress turns an Instance into a small "meta-problem" whose
// exact solution bounds the original (spec §4.5–§4.8).
//
// # Pipeline
//
//  1. KMeans clusters classes into nbMeta groups using their separation
//     rows as feature vectors.
//  2. BuildMetaInstance coarsens an instance.Instance's Classes and
//     Separation through that clustering (BuildMetaSeparation, variant
//     A: a pairwise-minimum off diagonal, forced zero on the diagonal).
//  3. model.New builds an *model.Alp over the meta-instance — the
//     meta-problem reuses the exact same state machine as the original,
//     just over fewer, coarser classes.
//  4. BuildDictionary enumerates the states the meta-problem can reach,
//     up to a cap on the number of entries, and solves them via backward
//     dynamic programming; below the cap the meta state space is
//     tabulated in full and solved exactly.
//
// The result (a Dictionary) composes into an admissible relaxation bound
// (CompressedBound, consumed by internal/relax and internal/bound) and a
// decision-preference heuristic (internal/heuristic) for the full-size
// search.
package compress
