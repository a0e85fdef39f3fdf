package diag

import (
	"fmt"
	"sync"

	"github.com/ajroetker/go-evalmath/dmath"
)

// Entry is one recorded diagnostic.
type Entry struct {
	Runtime  string // runtime name, empty for a function context
	Time     float64
	Category string
	Name     string
	Message  string
	Value    string
}

// String formats the entry as a single log line.
func (e Entry) String() string {
	if e.Runtime == "" {
		return fmt.Sprintf("%s in %s: %s (%s)", e.Category, e.Name, e.Message, e.Value)
	}
	return fmt.Sprintf("%s in %s [%s t=%g]: %s (%s)", e.Category, e.Name, e.Runtime, e.Time, e.Message, e.Value)
}

// Recorder is a Sink that keeps every diagnostic in memory.
// The zero value is ready to use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Log implements dmath.Sink. The runtime is read during the call only.
func (r *Recorder) Log(rt dmath.Runtime, category, name, msg, val string) {
	e := Entry{Category: category, Name: name, Message: msg, Value: val}
	if rt != nil {
		e.Runtime = rt.Name()
		e.Time = rt.Time()
	}
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
}

// Entries returns a copy of the recorded diagnostics in arrival order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of recorded diagnostics.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Reset drops all recorded diagnostics.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}
