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

// Package model provides a minimal runtime handle for evaluating generated
// equations outside a full simulation runtime.
package model

import (
	"math"
	"sync/atomic"

	"github.com/ajroetker/go-evalmath/dmath"
)

// Instance is a dmath.Runtime holding a simulation time and phase.
//
// Time and phase may be updated by the driving solver while equation blocks
// read them from other goroutines.
type Instance struct {
	name  string
	sink  dmath.Sink
	time  atomic.Uint64 // math.Float64bits of the current time
	phase atomic.Int32
}

// New returns an instance at time 0 in the continuous phase. A nil sink
// routes diagnostics to dmath.LogSink{}.
func New(name string, sink dmath.Sink) *Instance {
	return &Instance{name: name, sink: sink}
}

// Name implements dmath.Runtime.
func (m *Instance) Name() string { return m.name }

// Sink implements dmath.Runtime.
func (m *Instance) Sink() dmath.Sink { return m.sink }

// Time implements dmath.Runtime.
func (m *Instance) Time() float64 {
	return math.Float64frombits(m.time.Load())
}

// Phase implements dmath.Runtime.
func (m *Instance) Phase() dmath.Phase {
	return dmath.Phase(m.phase.Load())
}

// SetTime sets the current simulation time.
func (m *Instance) SetTime(t float64) {
	m.time.Store(math.Float64bits(t))
}

// EnterEvent switches to event handling.
func (m *Instance) EnterEvent() {
	m.phase.Store(int32(dmath.PhaseEvent))
}

// LeaveEvent switches back to continuous integration.
func (m *Instance) LeaveEvent() {
	m.phase.Store(int32(dmath.PhaseContinuous))
}
