package dmath

import (
	stdmath "math"
	"sync"
)

type logEntry struct {
	rt       Runtime
	category string
	name     string
	msg      string
	val      string
}

// recordSink captures diagnostics for assertions.
type recordSink struct {
	mu      sync.Mutex
	entries []logEntry
}

func (s *recordSink) Log(rt Runtime, category, name, msg, val string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, logEntry{rt, category, name, msg, val})
}

func (s *recordSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *recordSink) last() logEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[len(s.entries)-1]
}

type fakeRuntime struct {
	name  string
	time  float64
	phase Phase
	sink  Sink
}

func (r *fakeRuntime) Name() string { return r.name }
func (r *fakeRuntime) Time() float64 { return r.time }
func (r *fakeRuntime) Phase() Phase { return r.phase }
func (r *fakeRuntime) Sink() Sink { return r.sink }

// sameFloat reports bit-identical results, treating any two NaNs as equal.
func sameFloat(a, b float64) bool {
	if stdmath.IsNaN(a) && stdmath.IsNaN(b) {
		return true
	}
	return stdmath.Float64bits(a) == stdmath.Float64bits(b)
}
