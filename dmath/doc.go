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

// Package dmath provides domain-checked elementary math for generated
// simulation model code.
//
// # Call Forms
//
// Every elementary operation is available in three forms:
//   - Divide(c Context, num, den float64, msg string) float64 - explicit context
//   - DivideFunction(name string, num, den float64, msg string) float64 - function context
//   - DivideEquation(rt Runtime, num, den float64, msg string) float64 - equation context
//
// The same holds for Sqrt, Exp, Log, Log10, Pow, Sin, Cos, Tan, Asin, Acos,
// Atan, Atan2, Sinh, Cosh and Tanh. The msg argument is a description of the
// call site (typically the source expression) and is only used when a
// diagnostic is emitted.
//
// # Dispatch
//
// The package is built in one of two modes:
//   - Fast (default): every operation is a direct call to the math package.
//   - Checked (-tags domaincheck): arguments are validated first and a
//     diagnostic is sent to the context's Sink on a domain violation.
//
// Checked mode never changes the returned value. A division by a value that
// is almost zero still returns num/den, sqrt of a negative number still
// returns NaN. Diagnostics are advisory: equations are evaluated
// speculatively by iterative solvers and transient excursions are expected.
//
// The mode is a compile-time constant. Generated call sites are identical in
// both modes.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-evalmath/dmath"
//
//	// Inside a residual function bound to a runtime handle.
//	v := dmath.DivideEquation(rt, x, y, "x/y")
//
//	// Inside a standalone model function.
//	r := dmath.SqrtFunction("Pipe.flow", dp, "sqrt(dp)")
//
// # Build Requirements
//
// Regenerate the dispatch files after editing ops.yaml:
//
//	go generate ./dmath
package dmath
