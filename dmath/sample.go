package dmath

import stdmath "math"

// Sample reports whether rt is handling an event at a time offset + i*period
// for some integer i >= 0.
//
// Sample is always false while the solver integrates continuous states and
// before offset. The distance to the nearest sample instant is compared
// relative to the elapsed time: it must be AlmostZero after division by
// max(1, |t - offset|), so instants far into a simulation still match.
// A non-positive period never matches after offset.
func Sample(rt Runtime, offset, period float64) bool {
	if rt.Phase() != PhaseEvent {
		return false
	}
	elapsed := rt.Time() - offset
	if SurelyBelowZero(elapsed) {
		return false
	}
	if AlmostZero(elapsed) {
		return true
	}
	i := stdmath.Round(elapsed / period)
	if !(i >= 0) {
		return false
	}
	return AlmostZero((elapsed - i*period) / Max(1, Abs(elapsed)))
}
