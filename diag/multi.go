package diag

import "github.com/ajroetker/go-evalmath/dmath"

// Multi sends every diagnostic to each of its sinks in order. Nil entries are
// skipped.
type Multi []dmath.Sink

// Log implements dmath.Sink.
func (m Multi) Log(rt dmath.Runtime, category, name, msg, val string) {
	for _, s := range m {
		if s != nil {
			s.Log(rt, category, name, msg, val)
		}
	}
}

type discard struct{}

func (discard) Log(dmath.Runtime, string, string, string, string) {}

// Discard is a Sink that drops every diagnostic.
var Discard dmath.Sink = discard{}
