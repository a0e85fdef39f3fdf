// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dmath

import (
	stdmath "math"
	"strconv"
)

// Checked implementations. Each validates its arguments, reports at most one
// diagnostic and then returns exactly what the Fast implementation returns.

func divideChecked(c Context, num, den float64, msg string) float64 {
	if AlmostZero(den) {
		c.report(CategoryDivideByZero, "divide", msg, formatArgs2("num", num, "den", den))
	}
	return num / den
}

func sqrtChecked(c Context, x float64, msg string) float64 {
	if SurelyBelowZero(x) {
		c.report(CategorySqrtDomain, "sqrt", msg, formatArg("x", x))
	}
	return stdmath.Sqrt(x)
}

func expChecked(c Context, x float64, msg string) float64 {
	return stdmath.Exp(x)
}

func logChecked(c Context, x float64, msg string) float64 {
	if SurelyBelowZero(x) || AlmostZero(x) {
		c.report(CategoryLogDomain, "log", msg, formatArg("x", x))
	}
	return stdmath.Log(x)
}

func log10Checked(c Context, x float64, msg string) float64 {
	if SurelyBelowZero(x) || AlmostZero(x) {
		c.report(CategoryLog10Domain, "log10", msg, formatArg("x", x))
	}
	return stdmath.Log10(x)
}

func powChecked(c Context, x, y float64, msg string) float64 {
	if (x < 0 && !isIntegral(y)) || (x == 0 && y < 0) {
		c.report(CategoryPowDomain, "pow", msg, formatArgs2("x", x, "y", y))
	}
	return stdmath.Pow(x, y)
}

func sinChecked(c Context, x float64, msg string) float64 {
	return stdmath.Sin(x)
}

func cosChecked(c Context, x float64, msg string) float64 {
	return stdmath.Cos(x)
}

func tanChecked(c Context, x float64, msg string) float64 {
	return stdmath.Tan(x)
}

func asinChecked(c Context, x float64, msg string) float64 {
	if outsideUnit(x) {
		c.report(CategoryAsinDomain, "asin", msg, formatArg("x", x))
	}
	return stdmath.Asin(x)
}

func acosChecked(c Context, x float64, msg string) float64 {
	if outsideUnit(x) {
		c.report(CategoryAcosDomain, "acos", msg, formatArg("x", x))
	}
	return stdmath.Acos(x)
}

func atanChecked(c Context, x float64, msg string) float64 {
	return stdmath.Atan(x)
}

// atan2Checked takes y before x, like math.Atan2.
func atan2Checked(c Context, y, x float64, msg string) float64 {
	if AlmostZero(y) && AlmostZero(x) {
		c.report(CategoryAtan2Domain, "atan2", msg, formatArgs2("y", y, "x", x))
	}
	return stdmath.Atan2(y, x)
}

func sinhChecked(c Context, x float64, msg string) float64 {
	return stdmath.Sinh(x)
}

func coshChecked(c Context, x float64, msg string) float64 {
	return stdmath.Cosh(x)
}

func tanhChecked(c Context, x float64, msg string) float64 {
	return stdmath.Tanh(x)
}

// =============================================================================
// Domain helpers
// =============================================================================

// outsideUnit reports whether x lies outside [-1, 1] by more than AlmostEps.
func outsideUnit(x float64) bool {
	return SurelyAboveZero(x-1) || SurelyBelowZero(x+1)
}

// isIntegral reports whether y is within AlmostEps of an integer. Infinite y
// counts as integral: pow of a negative base then has a defined limit.
func isIntegral(y float64) bool {
	if stdmath.IsInf(y, 0) {
		return true
	}
	return AlmostZero(y - stdmath.Round(y))
}

// formatArg renders "name = value". Only called on the violation path.
func formatArg(name string, v float64) string {
	var buf [48]byte
	b := append(buf[:0], name...)
	b = append(b, " = "...)
	b = strconv.AppendFloat(b, v, 'g', -1, 64)
	return string(b)
}

func formatArgs2(n1 string, v1 float64, n2 string, v2 float64) string {
	var buf [96]byte
	b := append(buf[:0], n1...)
	b = append(b, " = "...)
	b = strconv.AppendFloat(b, v1, 'g', -1, 64)
	b = append(b, ", "...)
	b = append(b, n2...)
	b = append(b, " = "...)
	b = strconv.AppendFloat(b, v2, 'g', -1, 64)
	return string(b)
}
