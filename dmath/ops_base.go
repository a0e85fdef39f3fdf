package dmath

//go:generate go run ../cmd/dmgen -ops ops.yaml -output .

// Divide returns num / den.
//
// In checked mode a den that is AlmostZero is reported as DivideByZero. The
// quotient is still computed natively, so the result is ±Inf or NaN.
func Divide(c Context, num, den float64, msg string) float64 {
	return divideImpl(c, num, den, msg)
}

// Sqrt returns the square root of x. Checked mode reports x < -AlmostEps.
func Sqrt(c Context, x float64, msg string) float64 {
	return sqrtImpl(c, x, msg)
}

// Exp returns e**x.
func Exp(c Context, x float64, msg string) float64 {
	return expImpl(c, x, msg)
}

// Log returns the natural logarithm of x. Checked mode reports x that is
// negative or AlmostZero.
func Log(c Context, x float64, msg string) float64 {
	return logImpl(c, x, msg)
}

// Log10 returns the decimal logarithm of x, checked like Log.
func Log10(c Context, x float64, msg string) float64 {
	return log10Impl(c, x, msg)
}

// Pow returns x**y.
//
// Checked mode reports a negative x with a y that is not within AlmostEps of
// an integer, and x == 0 with y < 0.
func Pow(c Context, x, y float64, msg string) float64 {
	return powImpl(c, x, y, msg)
}

// Sin returns the sine of the radian argument x.
func Sin(c Context, x float64, msg string) float64 {
	return sinImpl(c, x, msg)
}

// Cos returns the cosine of the radian argument x.
func Cos(c Context, x float64, msg string) float64 {
	return cosImpl(c, x, msg)
}

// Tan returns the tangent of the radian argument x.
func Tan(c Context, x float64, msg string) float64 {
	return tanImpl(c, x, msg)
}

// Asin returns the arcsine of x. Checked mode reports x outside [-1, 1] by
// more than AlmostEps.
func Asin(c Context, x float64, msg string) float64 {
	return asinImpl(c, x, msg)
}

// Acos returns the arccosine of x, checked like Asin.
func Acos(c Context, x float64, msg string) float64 {
	return acosImpl(c, x, msg)
}

// Atan returns the arctangent of x.
func Atan(c Context, x float64, msg string) float64 {
	return atanImpl(c, x, msg)
}

// Atan2 returns the arc tangent of y/x. Checked mode reports y and x both
// AlmostZero.
func Atan2(c Context, y, x float64, msg string) float64 {
	return atan2Impl(c, y, x, msg)
}

// Sinh returns the hyperbolic sine of x.
func Sinh(c Context, x float64, msg string) float64 {
	return sinhImpl(c, x, msg)
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(c Context, x float64, msg string) float64 {
	return coshImpl(c, x, msg)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(c Context, x float64, msg string) float64 {
	return tanhImpl(c, x, msg)
}
