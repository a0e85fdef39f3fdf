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

// Context identifies where an operation is evaluated from. It is one of:
//   - Named(name): a standalone model function, no runtime handle
//   - Handled(rt): an equation evaluated for a runtime instance
//
// Context is a small value type. Operations borrow it for the duration of the
// call and never retain it.
type Context struct {
	name string
	rt   Runtime
	sink Sink
}

// Named returns a function context. Diagnostics are reported under name.
func Named(name string) Context {
	return Context{name: name}
}

// Handled returns an equation context bound to rt. Diagnostics are reported
// under the operation name and routed to rt.Sink(). rt must be non-nil,
// including when held in an interface: a typed nil pointer panics on the
// first report.
func Handled(rt Runtime) Context {
	return Context{rt: rt}
}

// WithSink returns a copy of c that reports diagnostics to s instead of the
// runtime's sink or the default LogSink.
func (c Context) WithSink(s Sink) Context {
	c.sink = s
	return c
}

// IsEquation reports whether c is an equation context.
func (c Context) IsEquation() bool {
	return c.rt != nil
}

// Name returns the function name of a function context, or "" for an
// equation context.
func (c Context) Name() string {
	return c.name
}

// Runtime returns the runtime handle of an equation context, or nil.
func (c Context) Runtime() Runtime {
	return c.rt
}

// String returns the context in the form used by diagnostics.
func (c Context) String() string {
	if c.rt != nil {
		return "equation(" + c.rt.Name() + ")"
	}
	return "function(" + c.name + ")"
}

// report sends one diagnostic for operation op. Function contexts report
// under their own name, equation contexts under op.
func (c Context) report(category, op, msg, val string) {
	name := op
	if c.rt == nil && c.name != "" {
		name = c.name
	}
	c.target().Log(c.rt, category, name, msg, val)
}

func (c Context) target() Sink {
	if c.sink != nil {
		return c.sink
	}
	if c.rt != nil {
		if s := c.rt.Sink(); s != nil {
			return s
		}
	}
	return LogSink{}
}
