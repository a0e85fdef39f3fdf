// Package diag provides dmath.Sink implementations for collecting, counting
// and fanning out domain diagnostics.
//
//   - Recorder keeps every diagnostic in memory (tests, post-run reports)
//   - Metrics counts diagnostics in a Prometheus counter and forwards them
//   - Multi sends each diagnostic to several sinks
//   - Discard drops everything
//
// All sinks in this package are safe for concurrent use by equation blocks
// evaluated in parallel.
package diag
