package model

// SentinelDecision is emitted when a state admits no (class, runway)
// decision; it drives the search to a dead branch whose continuation
// cost is -infinity (spec §4.1, §4.9 design note "Infeasible emission
// via sentinel").
const SentinelDecision = -1

// Decision pairs a class with the runway it lands on. The aircraft
// identity is implied: it is always the lowest-index remaining aircraft
// of that class (see Alp.next).
type Decision struct {
	Class   int
	Runway  int
	Encoded int // Class*NbRunways + Runway, or SentinelDecision.
}

// Encode returns the framework-facing integer for (class, runway):
// class*nbRunways + runway. Bijective on valid pairs; never collides
// with SentinelDecision because encoded values are always >= 0.
func Encode(class, runway, nbRunways int) int {
	return class*nbRunways + runway
}

// Decode inverts Encode. Callers must not pass SentinelDecision.
func Decode(encoded, nbRunways int) (class, runway int) {
	return encoded / nbRunways, encoded % nbRunways
}
