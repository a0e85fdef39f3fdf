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

// Mode represents the implementation set selected at build time.
type Mode int

const (
	// ModeFast indicates direct calls to the math package, no validation.
	ModeFast Mode = iota

	// ModeChecked indicates domain validation with diagnostics.
	ModeChecked
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeChecked:
		return "checked"
	default:
		return "unknown"
	}
}

// Banner messages describing the build mode, suitable for a runtime's
// startup log.
const (
	checkedBanner = "Using mathematical functions with domain checks."
	fastBanner    = "Using mathematical functions without any domain checks, caution is advised."
)

// DomainChecks reports whether the package was built with -tags domaincheck.
// domainChecks is a constant defined by the z_dispatch_*.gen.go files.
func DomainChecks() bool {
	return domainChecks
}

// CurrentMode returns the implementation set this binary was built with.
func CurrentMode() Mode {
	if domainChecks {
		return ModeChecked
	}
	return ModeFast
}

// Banner returns a one-line description of the build mode.
func Banner() string {
	if domainChecks {
		return checkedBanner
	}
	return fastBanner
}
