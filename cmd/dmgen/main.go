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

// Command dmgen generates the build-mode dispatch files of package dmath from
// an operation table.
//
// Usage:
//
//	dmgen -ops ops.yaml -output .
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/dmgen -ops ops.yaml -output .
//
// The generator reads a YAML list of operations and produces:
//  1. z_dispatch_fast.gen.go, built without the dispatch tag, binding every
//     operation to its Fast implementation
//  2. z_dispatch_checked.gen.go, built with the dispatch tag, binding every
//     operation to its Checked implementation
//  3. z_forms.gen.go with the XxxFunction and XxxEquation call forms used by
//     generated model code
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	opsFile    = flag.String("ops", "ops.yaml", "Operation table (YAML)")
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	packageOut = flag.String("pkg", "", "Output package name (default: package from the operation table)")
	buildTag   = flag.String("tag", "", "Build tag selecting checked mode (default: tag from the operation table)")
)

func main() {
	flag.Parse()

	table, err := LoadTable(*opsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gen := &Generator{
		Table:      table,
		OutputDir:  *outputDir,
		PackageOut: *packageOut,
		BuildTag:   *buildTag,
	}

	files, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, f := range files {
		fmt.Printf("Generated: %s\n", f)
	}
}
