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
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-evalmath/dmath"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the build mode and floating-point CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.logger.Info(dmath.Banner())
			printInfo(cmd.OutOrStdout())
			return nil
		},
	}
}

func printInfo(w io.Writer) {
	fmt.Fprintf(w, "Mode: %s\n", dmath.CurrentMode())
	fmt.Fprintf(w, "Domain checks: %v\n", dmath.DomainChecks())
	fmt.Fprintf(w, "Banner: %s\n", dmath.Banner())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())

	// Fused multiply-add changes the last bit of some math results, which
	// matters when comparing checked and fast runs across machines.
	switch runtime.GOARCH {
	case "amd64":
		fmt.Fprintln(w)
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
		fmt.Fprintf(w, "  HasFMA:     %v\n", cpu.X86.HasFMA)
		fmt.Fprintf(w, "  HasSSE41:   %v (ROUNDSD)\n", cpu.X86.HasSSE41)
		fmt.Fprintf(w, "  HasAVX:     %v\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "  HasAVX2:    %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	case "arm64":
		fmt.Fprintln(w)
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Fprintf(w, "  HasFP:    %v (Floating point, FMADD)\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  HasASIMD: %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasSVE:   %v\n", cpu.ARM64.HasSVE)
	}
}
