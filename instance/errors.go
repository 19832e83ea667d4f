// Package instance: sentinel error set.
//
// Every structural-validation failure returns one of these sentinels so
// callers can branch with errors.Is instead of matching strings. Context
// (which field, which index) is attached with fmt.Errorf("%w: ...") at
// the point of detection; the sentinel itself is never reformatted.
package instance

import "errors"

var (
	// ErrBadCounts indicates nb_classes, nb_aircrafts or nb_runways is not positive.
	ErrBadCounts = errors.New("instance: counts must be positive")

	// ErrLengthMismatch indicates classes/target/latest do not have length nb_aircrafts,
	// or separation is not nb_classes x nb_classes.
	ErrLengthMismatch = errors.New("instance: array length mismatch")

	// ErrClassOutOfRange indicates a classes[i] value outside [0, nb_classes).
	ErrClassOutOfRange = errors.New("instance: class out of range")

	// ErrNegativeTarget indicates a target[i] < 0.
	ErrNegativeTarget = errors.New("instance: negative target time")

	// ErrLatestBeforeTarget indicates latest[i] < target[i].
	ErrLatestBeforeTarget = errors.New("instance: latest time before target time")

	// ErrTargetNotSorted indicates target is not non-decreasing in aircraft index.
	ErrTargetNotSorted = errors.New("instance: target times not non-decreasing")

	// ErrLatestNotSortedPerClass indicates latest is not non-decreasing within a class.
	ErrLatestNotSortedPerClass = errors.New("instance: latest times not non-decreasing within class")

	// ErrNegativeSeparation indicates a separation[c][c'] < 0.
	ErrNegativeSeparation = errors.New("instance: negative separation value")
)
