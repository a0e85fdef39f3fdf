package dmath

// =============================================================================
// Constants
// =============================================================================

const (
	// Eps is the machine epsilon for float64.
	Eps = 2.2204460492503131e-16

	// AlmostEps is the tolerance used by the sign and zero classifications.
	AlmostEps = 100 * Eps

	// VeryLarge is the value generated code uses in place of infinity.
	VeryLarge = 1e20

	// Pi is the constant pi.
	Pi = 3.14159265358979323846
)

// =============================================================================
// Sign classification against AlmostEps
// =============================================================================

// AlmostBelowZero reports whether v <= AlmostEps.
func AlmostBelowZero(v float64) bool {
	return v <= AlmostEps
}

// AlmostAboveZero reports whether v >= -AlmostEps.
func AlmostAboveZero(v float64) bool {
	return v >= -AlmostEps
}

// AlmostZero reports whether v is both almost below and almost above zero,
// that is -AlmostEps <= v <= AlmostEps. NaN is never almost zero.
func AlmostZero(v float64) bool {
	return AlmostBelowZero(v) && AlmostAboveZero(v)
}

// SurelyBelowZero reports whether v < -AlmostEps.
func SurelyBelowZero(v float64) bool {
	return v < -AlmostEps
}

// SurelyAboveZero reports whether v > AlmostEps.
func SurelyAboveZero(v float64) bool {
	return v > AlmostEps
}
