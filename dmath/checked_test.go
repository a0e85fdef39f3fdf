package dmath

import (
	stdmath "math"
	"strings"
	"sync"
	"testing"
)

// opImpls pairs the checked and fast implementation of one operation with
// the reference math function.
type opImpls struct {
	name     string
	category string
	checked  func(c Context, a, b float64, msg string) float64
	fast     func(c Context, a, b float64, msg string) float64
	native   func(a, b float64) float64
}

func unary(f func(Context, float64, string) float64) func(Context, float64, float64, string) float64 {
	return func(c Context, a, _ float64, msg string) float64 { return f(c, a, msg) }
}

func unaryNative(f func(float64) float64) func(float64, float64) float64 {
	return func(a, _ float64) float64 { return f(a) }
}

var allOps = []opImpls{
	{"divide", CategoryDivideByZero, divideChecked, divideFast, func(a, b float64) float64 { return a / b }},
	{"sqrt", CategorySqrtDomain, unary(sqrtChecked), unary(sqrtFast), unaryNative(stdmath.Sqrt)},
	{"exp", "", unary(expChecked), unary(expFast), unaryNative(stdmath.Exp)},
	{"log", CategoryLogDomain, unary(logChecked), unary(logFast), unaryNative(stdmath.Log)},
	{"log10", CategoryLog10Domain, unary(log10Checked), unary(log10Fast), unaryNative(stdmath.Log10)},
	{"pow", CategoryPowDomain, powChecked, powFast, stdmath.Pow},
	{"sin", "", unary(sinChecked), unary(sinFast), unaryNative(stdmath.Sin)},
	{"cos", "", unary(cosChecked), unary(cosFast), unaryNative(stdmath.Cos)},
	{"tan", "", unary(tanChecked), unary(tanFast), unaryNative(stdmath.Tan)},
	{"asin", CategoryAsinDomain, unary(asinChecked), unary(asinFast), unaryNative(stdmath.Asin)},
	{"acos", CategoryAcosDomain, unary(acosChecked), unary(acosFast), unaryNative(stdmath.Acos)},
	{"atan", "", unary(atanChecked), unary(atanFast), unaryNative(stdmath.Atan)},
	{"atan2", CategoryAtan2Domain, atan2Checked, atan2Fast, stdmath.Atan2},
	{"sinh", "", unary(sinhChecked), unary(sinhFast), unaryNative(stdmath.Sinh)},
	{"cosh", "", unary(coshChecked), unary(coshFast), unaryNative(stdmath.Cosh)},
	{"tanh", "", unary(tanhChecked), unary(tanhFast), unaryNative(stdmath.Tanh)},
}

func findOp(t *testing.T, name string) opImpls {
	t.Helper()
	for _, op := range allOps {
		if op.name == name {
			return op
		}
	}
	t.Fatalf("unknown op %q", name)
	return opImpls{}
}

func TestCheckedViolations(t *testing.T) {
	tests := []struct {
		op        string
		a, b      float64
		violation bool
	}{
		{"divide", 1, 2, false},
		{"divide", 1, 0, true},
		{"divide", 0, 0, true},
		{"divide", 1, AlmostEps, true},
		{"divide", 1, stdmath.Nextafter(AlmostEps, 1), false},
		{"divide", 1, stdmath.NaN(), false},
		{"sqrt", 4, 0, false},
		{"sqrt", 0, 0, false},
		{"sqrt", -AlmostEps, 0, false},
		{"sqrt", -4, 0, true},
		{"sqrt", stdmath.NaN(), 0, false},
		{"log", 1, 0, false},
		{"log", 0, 0, true},
		{"log", AlmostEps, 0, true},
		{"log", -1, 0, true},
		{"log", stdmath.Inf(1), 0, false},
		{"log10", 100, 0, false},
		{"log10", 0, 0, true},
		{"log10", -10, 0, true},
		{"asin", 0.5, 0, false},
		{"asin", 1, 0, false},
		{"asin", -1, 0, false},
		{"asin", 1 + AlmostEps/2, 0, false},
		{"asin", 1.1, 0, true},
		{"asin", -1.1, 0, true},
		{"acos", 1, 0, false},
		{"acos", 2, 0, true},
		{"acos", -2, 0, true},
		{"atan2", 0, 0, true},
		{"atan2", 1, 0, false},
		{"atan2", 0, -1, false},
		{"atan2", AlmostEps, -AlmostEps, true},
		{"pow", 2, 0.5, false},
		{"pow", -2, 3, false},
		{"pow", -2, 0.5, true},
		{"pow", -8, 1.0 / 3, true},
		{"pow", -2, 3 + AlmostEps/2, false},
		{"pow", 0, -1, true},
		{"pow", 0, 0, false},
		{"pow", 0, 2, false},
		{"pow", -0.5, stdmath.Inf(1), false},
		{"pow", -2, stdmath.Inf(-1), false},
		{"exp", 1000, 0, false},
		{"sin", stdmath.Inf(1), 0, false},
		{"cos", -5, 0, false},
		{"tan", stdmath.Pi / 2, 0, false},
		{"atan", -1e300, 0, false},
		{"sinh", 1000, 0, false},
		{"cosh", -1000, 0, false},
		{"tanh", stdmath.NaN(), 0, false},
	}

	for _, tt := range tests {
		op := findOp(t, tt.op)
		sink := &recordSink{}
		c := Named("Model.f").WithSink(sink)

		got := op.checked(c, tt.a, tt.b, "expr")
		want := op.native(tt.a, tt.b)
		if !sameFloat(got, want) {
			t.Errorf("%sChecked(%v, %v) = %v, want %v", tt.op, tt.a, tt.b, got, want)
		}

		wantCount := 0
		if tt.violation {
			wantCount = 1
		}
		if n := sink.count(); n != wantCount {
			t.Errorf("%sChecked(%v, %v) logged %d diagnostics, want %d", tt.op, tt.a, tt.b, n, wantCount)
			continue
		}
		if !tt.violation {
			continue
		}
		e := sink.last()
		if e.category != op.category {
			t.Errorf("%sChecked(%v, %v) category = %q, want %q", tt.op, tt.a, tt.b, e.category, op.category)
		}
		if e.name != "Model.f" {
			t.Errorf("%sChecked(%v, %v) name = %q, want %q", tt.op, tt.a, tt.b, e.name, "Model.f")
		}
		if e.msg != "expr" {
			t.Errorf("%sChecked(%v, %v) msg = %q, want %q", tt.op, tt.a, tt.b, e.msg, "expr")
		}
		if e.rt != nil {
			t.Errorf("%sChecked(%v, %v) runtime = %v, want nil for a function context", tt.op, tt.a, tt.b, e.rt)
		}
	}
}

func TestFastNeverLogs(t *testing.T) {
	inputs := []float64{0, -4, 2, -2, 0.5, -0.5, 1.5, -1.5, stdmath.NaN(), stdmath.Inf(-1)}
	for _, op := range allOps {
		sink := &recordSink{}
		c := Named("f").WithSink(sink)
		for _, a := range inputs {
			for _, b := range inputs {
				op.fast(c, a, b, "expr")
			}
		}
		if n := sink.count(); n != 0 {
			t.Errorf("%sFast logged %d diagnostics, want 0", op.name, n)
		}
	}
}

// Checked and fast results must be bit-identical to the math package.
func TestResultsMatchNative(t *testing.T) {
	inputs := []float64{
		0, stdmath.Copysign(0, -1), 1, -1, 0.5, -0.5, 2, -2, 3, -4, 1e-300, -1e-300,
		1e300, -1e300, stdmath.Pi, -stdmath.E, AlmostEps, -AlmostEps,
		stdmath.Inf(1), stdmath.Inf(-1), stdmath.NaN(),
	}
	c := Named("f").WithSink(&recordSink{})
	for _, op := range allOps {
		for _, a := range inputs {
			for _, b := range inputs {
				want := op.native(a, b)
				if got := op.fast(c, a, b, ""); !sameFloat(got, want) {
					t.Errorf("%sFast(%v, %v) = %v, want %v", op.name, a, b, got, want)
				}
				if got := op.checked(c, a, b, ""); !sameFloat(got, want) {
					t.Errorf("%sChecked(%v, %v) = %v, want %v", op.name, a, b, got, want)
				}
			}
		}
	}
}

func TestCheckedDivideByZero(t *testing.T) {
	sink := &recordSink{}
	got := divideChecked(Named("f").WithSink(sink), 1.0, 0.0, "1/x")
	if !stdmath.IsInf(got, 1) {
		t.Errorf("divideChecked(1, 0) = %v, want +Inf", got)
	}
	if n := sink.count(); n != 1 {
		t.Fatalf("divideChecked(1, 0) logged %d diagnostics, want 1", n)
	}
	if v := sink.last().val; v != "num = 1, den = 0" {
		t.Errorf("divideChecked(1, 0) value = %q, want %q", v, "num = 1, den = 0")
	}
}

func TestCheckedSqrtNegative(t *testing.T) {
	sink := &recordSink{}
	c := Named("f").WithSink(sink)

	if got := sqrtChecked(c, -4.0, "sqrt(x)"); !stdmath.IsNaN(got) {
		t.Errorf("sqrtChecked(-4) = %v, want NaN", got)
	}
	if n := sink.count(); n != 1 {
		t.Errorf("sqrtChecked(-4) logged %d diagnostics, want 1", n)
	}

	if got := sqrtFast(c, -4.0, "sqrt(x)"); !stdmath.IsNaN(got) {
		t.Errorf("sqrtFast(-4) = %v, want NaN", got)
	}
	if n := sink.count(); n != 1 {
		t.Errorf("sqrtFast(-4) logged, total diagnostics %d, want 1", n)
	}
}

func TestCheckedEquationContext(t *testing.T) {
	sink := &recordSink{}
	rt := &fakeRuntime{name: "ball", sink: sink}

	logChecked(Handled(rt), -1, "log(h)")

	if n := sink.count(); n != 1 {
		t.Fatalf("logChecked(-1) logged %d diagnostics, want 1", n)
	}
	e := sink.last()
	if e.rt != rt {
		t.Errorf("runtime = %v, want %v", e.rt, rt)
	}
	if e.name != "log" {
		t.Errorf("name = %q, want %q", e.name, "log")
	}
	if !strings.Contains(e.val, "x = -1") {
		t.Errorf("value = %q, want it to contain %q", e.val, "x = -1")
	}
}

func TestFormatArgs(t *testing.T) {
	if got := formatArg("x", -0.25); got != "x = -0.25" {
		t.Errorf("formatArg = %q, want %q", got, "x = -0.25")
	}
	if got := formatArgs2("y", 0, "x", stdmath.Inf(-1)); got != "y = 0, x = -Inf" {
		t.Errorf("formatArgs2 = %q, want %q", got, "y = 0, x = -Inf")
	}
	if got := formatArg("x", stdmath.NaN()); got != "x = NaN" {
		t.Errorf("formatArg = %q, want %q", got, "x = NaN")
	}
}

func TestCheckedConcurrent(t *testing.T) {
	sink := &recordSink{}
	const workers, perWorker = 8, 100

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rt := &fakeRuntime{name: "block", time: float64(w), sink: sink}
			for range perWorker {
				logChecked(Handled(rt), 0, "log(x)")
				sqrtChecked(Handled(rt), 4, "sqrt(x)")
			}
		}()
	}
	wg.Wait()

	if n := sink.count(); n != workers*perWorker {
		t.Errorf("logged %d diagnostics, want %d", n, workers*perWorker)
	}
}
