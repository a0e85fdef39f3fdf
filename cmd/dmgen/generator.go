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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

const generatedHeader = "// Code generated by dmgen. DO NOT EDIT.\n\n"

// Generator renders the dispatch and call-form files for a Table.
type Generator struct {
	Table      *Table
	OutputDir  string
	PackageOut string // overrides Table.Package when set
	BuildTag   string // overrides Table.Tag when set
}

// Mode describes one implementation set of the dispatch switch.
type Mode struct {
	Name       string // "fast", "checked"
	Constraint string // build constraint expression
	Suffix     string // implementation function suffix ("Fast", "Checked")
	Checks     bool   // value of the domainChecks constant
}

// Modes returns the fast and checked modes for build tag tag.
func Modes(tag string) []Mode {
	return []Mode{
		{Name: "fast", Constraint: "!" + tag, Suffix: "Fast", Checks: false},
		{Name: "checked", Constraint: tag, Suffix: "Checked", Checks: true},
	}
}

func (g *Generator) pkg() string {
	if g.PackageOut != "" {
		return g.PackageOut
	}
	return g.Table.Package
}

func (g *Generator) tag() string {
	if g.BuildTag != "" {
		return g.BuildTag
	}
	return g.Table.Tag
}

// Run renders all files and writes them to OutputDir. It returns the paths
// written.
func (g *Generator) Run() ([]string, error) {
	if g.pkg() == "" {
		return nil, fmt.Errorf("no output package: set -pkg or 'package' in the operation table")
	}
	if g.tag() == "" {
		return nil, fmt.Errorf("no build tag: set -tag or 'tag' in the operation table")
	}

	outputs := make(map[string][]byte)
	for _, m := range Modes(g.tag()) {
		outputs[fmt.Sprintf("z_dispatch_%s.gen.go", m.Name)] = g.RenderDispatch(m)
	}
	outputs["z_forms.gen.go"] = g.RenderForms()

	var written []string
	for _, name := range []string{"z_dispatch_fast.gen.go", "z_dispatch_checked.gen.go", "z_forms.gen.go"} {
		filename := filepath.Join(g.OutputDir, name)
		src, err := imports.Process(filename, outputs[name], nil)
		if err != nil {
			return written, fmt.Errorf("format %s: %w", name, err)
		}
		if err := os.WriteFile(filename, src, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, filename)
	}
	return written, nil
}

// RenderDispatch emits the file binding every opImpl to the implementation
// set of m.
func (g *Generator) RenderDispatch(m Mode) []byte {
	var buf bytes.Buffer

	// File header
	fmt.Fprintf(&buf, "//go:build %s\n\n", m.Constraint)
	buf.WriteString(generatedHeader)
	fmt.Fprintf(&buf, "package %s\n\n", g.pkg())

	fmt.Fprintf(&buf, "const domainChecks = %t\n", m.Checks)

	for _, op := range g.Table.Ops {
		fmt.Fprintf(&buf, "\nfunc %sImpl(c Context, %s float64, msg string) float64 {\n", op.Name, argNames(op))
		fmt.Fprintf(&buf, "\treturn %s%s(c, %s, msg)\n", op.Name, m.Suffix, argNames(op))
		fmt.Fprintf(&buf, "}\n")
	}
	return buf.Bytes()
}

// RenderForms emits the function-context and equation-context call forms.
func (g *Generator) RenderForms() []byte {
	var buf bytes.Buffer

	buf.WriteString(generatedHeader)
	fmt.Fprintf(&buf, "package %s\n", g.pkg())

	for _, op := range g.Table.Ops {
		exported := exportedName(op.Name)

		fmt.Fprintf(&buf, "\n// %sFunction evaluates %s in the function context name.\n", exported, exported)
		fmt.Fprintf(&buf, "func %sFunction(name string, %s float64, msg string) float64 {\n", exported, argNames(op))
		fmt.Fprintf(&buf, "\treturn %sImpl(Named(name), %s, msg)\n", op.Name, argNames(op))
		fmt.Fprintf(&buf, "}\n")

		fmt.Fprintf(&buf, "\n// %sEquation evaluates %s in the equation context of rt.\n", exported, exported)
		fmt.Fprintf(&buf, "func %sEquation(rt Runtime, %s float64, msg string) float64 {\n", exported, argNames(op))
		fmt.Fprintf(&buf, "\treturn %sImpl(Handled(rt), %s, msg)\n", op.Name, argNames(op))
		fmt.Fprintf(&buf, "}\n")
	}
	return buf.Bytes()
}

// exportedName turns an operation name into its exported Go name
// ("log10" -> "Log10").
func exportedName(name string) string {
	return cases.Title(language.English).String(name)
}

// argNames renders the argument names, used both for a parameter list sharing
// one type and for a call expression.
func argNames(op Op) string {
	return strings.Join(op.Args, ", ")
}
