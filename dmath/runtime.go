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

// Phase is the execution phase of a simulation runtime.
type Phase int

const (
	// PhaseContinuous indicates the solver is integrating continuous states.
	PhaseContinuous Phase = iota

	// PhaseEvent indicates the runtime is handling a discrete event.
	PhaseEvent
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseContinuous:
		return "continuous"
	case PhaseEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Runtime is the model instance an equation is evaluated for.
//
// The handle is owned by the caller. Operations in this package only read
// from it for the duration of a single call.
type Runtime interface {
	// Name identifies the instance in diagnostics.
	Name() string

	// Time returns the current simulation time.
	Time() float64

	// Phase returns the current execution phase.
	Phase() Phase

	// Sink returns the diagnostic sink of the instance. A nil Sink falls
	// back to LogSink{}.
	Sink() Sink
}

// Sink receives domain diagnostics.
//
// Log is called at most once per checked operation, synchronously, before the
// operation returns. rt is nil for calls made in a function context.
// Implementations are responsible for their own synchronization.
type Sink interface {
	Log(rt Runtime, category, name, msg, val string)
}

// Diagnostic categories passed to Sink.Log.
const (
	CategoryDivideByZero    = "DivideByZero"
	CategorySqrtDomain      = "SqrtOutOfDomain"
	CategoryLogDomain       = "LogOutOfDomain"
	CategoryLog10Domain     = "Log10OutOfDomain"
	CategoryAsinDomain      = "AsinOutOfDomain"
	CategoryAcosDomain      = "AcosOutOfDomain"
	CategoryAtan2Domain     = "Atan2OutOfDomain"
	CategoryPowDomain       = "PowOutOfDomain"
	CategoryRemainderByZero = "RemainderByZero"
)
