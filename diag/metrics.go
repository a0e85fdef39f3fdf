package diag

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ajroetker/go-evalmath/dmath"
)

// Metrics is a Sink that counts diagnostics per category and context kind,
// then forwards them to Next (if set).
type Metrics struct {
	Next dmath.Sink

	violations *prometheus.CounterVec
}

// NewMetrics creates a Metrics sink and registers its counter with reg.
func NewMetrics(reg prometheus.Registerer, next dmath.Sink) (*Metrics, error) {
	violations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evalmath_domain_violations_total",
			Help: "Total number of domain violations reported by checked math operations",
		},
		[]string{"category", "context"},
	)
	if err := reg.Register(violations); err != nil {
		return nil, err
	}
	return &Metrics{Next: next, violations: violations}, nil
}

// Log implements dmath.Sink.
func (m *Metrics) Log(rt dmath.Runtime, category, name, msg, val string) {
	kind := "function"
	if rt != nil {
		kind = "equation"
	}
	m.violations.WithLabelValues(category, kind).Inc()
	if m.Next != nil {
		m.Next.Log(rt, category, name, msg, val)
	}
}

// Counter exposes the underlying counter vector.
func (m *Metrics) Counter() *prometheus.CounterVec {
	return m.violations
}
