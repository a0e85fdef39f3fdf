package dmath

import stdmath "math"

// Scalar helpers callable from generated equations. Being plain functions,
// each argument expression is evaluated exactly once.

// Abs returns the absolute value of v.
func Abs(v float64) float64 {
	return stdmath.Abs(v)
}

// Sign returns -1, 0 or 1 according to the sign of v. Sign(NaN) is 0.
func Sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// Min returns the smaller of x and y, or NaN if either is NaN.
func Min(x, y float64) float64 {
	if x != x || y != y {
		return stdmath.NaN()
	}
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y, or NaN if either is NaN.
func Max(x, y float64) float64 {
	if x != x || y != y {
		return stdmath.NaN()
	}
	if x > y {
		return x
	}
	return y
}

// Round returns the nearest integer to x, rounding half away from zero
// (Round(2.5) == 3, Round(-2.5) == -3). This is not round-half-to-even.
func Round(x float64) float64 {
	return stdmath.Round(x)
}

// Remainder returns the floating-point remainder of x/y with the sign of x,
// like C fmod. A zero y is reported as RemainderByZero through rt's sink in
// every build mode; the result is then NaN.
func Remainder(rt Runtime, x, y float64) float64 {
	if y == 0 {
		Handled(rt).report(CategoryRemainderByZero, "remainder", "remainder by zero", formatArgs2("x", x, "y", y))
	}
	return stdmath.Mod(x, y)
}
