package dmath

import stdmath "math"

// Fast implementations. Same signatures as the checked ones so the dispatch
// files can swap them; the context and message are ignored.

func divideFast(_ Context, num, den float64, _ string) float64 { return num / den }

func sqrtFast(_ Context, x float64, _ string) float64 { return stdmath.Sqrt(x) }

func expFast(_ Context, x float64, _ string) float64 { return stdmath.Exp(x) }

func logFast(_ Context, x float64, _ string) float64 { return stdmath.Log(x) }

func log10Fast(_ Context, x float64, _ string) float64 { return stdmath.Log10(x) }

func powFast(_ Context, x, y float64, _ string) float64 { return stdmath.Pow(x, y) }

func sinFast(_ Context, x float64, _ string) float64 { return stdmath.Sin(x) }

func cosFast(_ Context, x float64, _ string) float64 { return stdmath.Cos(x) }

func tanFast(_ Context, x float64, _ string) float64 { return stdmath.Tan(x) }

func asinFast(_ Context, x float64, _ string) float64 { return stdmath.Asin(x) }

func acosFast(_ Context, x float64, _ string) float64 { return stdmath.Acos(x) }

func atanFast(_ Context, x float64, _ string) float64 { return stdmath.Atan(x) }

func atan2Fast(_ Context, y, x float64, _ string) float64 { return stdmath.Atan2(y, x) }

func sinhFast(_ Context, x float64, _ string) float64 { return stdmath.Sinh(x) }

func coshFast(_ Context, x float64, _ string) float64 { return stdmath.Cosh(x) }

func tanhFast(_ Context, x float64, _ string) float64 { return stdmath.Tanh(x) }
