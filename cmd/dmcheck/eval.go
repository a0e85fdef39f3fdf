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
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-evalmath/diag"
	"github.com/ajroetker/go-evalmath/dmath"
	"github.com/ajroetker/go-evalmath/model"
)

var unaryOps = map[string]func(dmath.Context, float64, string) float64{
	"sqrt":  dmath.Sqrt,
	"exp":   dmath.Exp,
	"log":   dmath.Log,
	"log10": dmath.Log10,
	"sin":   dmath.Sin,
	"cos":   dmath.Cos,
	"tan":   dmath.Tan,
	"asin":  dmath.Asin,
	"acos":  dmath.Acos,
	"atan":  dmath.Atan,
	"sinh":  dmath.Sinh,
	"cosh":  dmath.Cosh,
	"tanh":  dmath.Tanh,
}

var binaryOps = map[string]func(dmath.Context, float64, float64, string) float64{
	"divide": dmath.Divide,
	"pow":    dmath.Pow,
	"atan2":  dmath.Atan2,
}

// opNames lists every operation eval accepts, sorted.
func opNames() []string {
	names := make([]string, 0, len(unaryOps)+len(binaryOps)+1)
	for name := range unaryOps {
		names = append(names, name)
	}
	for name := range binaryOps {
		names = append(names, name)
	}
	names = append(names, "remainder")
	slices.Sort(names)
	return names
}

func newEvalCmd(opts *options) *cobra.Command {
	var (
		name   string
		rtName string
		msg    string
		at     float64
	)

	cmd := &cobra.Command{
		Use:   "eval <op> <args...>",
		Short: "Evaluate one operation and print the result and any diagnostics",
		Long: `Evaluate one elementary operation. Without --name the call is made in an
equation context of a model instance; with --name it is made in the function
context of that name.

Operations: ` + strings.Join(opNames(), ", "),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[0]
			values, err := parseFloats(args[1:])
			if err != nil {
				return err
			}

			rec := &diag.Recorder{}
			sink := diag.Multi{rec, dmath.LogSink{Logger: opts.logger}}

			inst := model.New(rtName, sink)
			inst.SetTime(at)

			c := dmath.Handled(inst)
			if name != "" {
				c = dmath.Named(name).WithSink(sink)
			}
			if msg == "" {
				msg = op + "(" + strings.Join(args[1:], ", ") + ")"
			}

			var result float64
			switch {
			case unaryOps[op] != nil:
				if err := wantArgs(op, values, 1); err != nil {
					return err
				}
				result = unaryOps[op](c, values[0], msg)
			case binaryOps[op] != nil:
				if err := wantArgs(op, values, 2); err != nil {
					return err
				}
				result = binaryOps[op](c, values[0], values[1], msg)
			case op == "remainder":
				if err := wantArgs(op, values, 2); err != nil {
					return err
				}
				result = dmath.Remainder(inst, values[0], values[1])
			default:
				return fmt.Errorf("unknown operation %q", op)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s = %s\n", msg, strconv.FormatFloat(result, 'g', -1, 64))
			for _, e := range rec.Entries() {
				fmt.Fprintf(out, "  %s\n", e)
			}
			opts.logger.Debug("evaluated", "op", op, "context", c.String(), "mode", dmath.CurrentMode().String())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Evaluate in the function context of this name")
	cmd.Flags().StringVar(&rtName, "runtime", "dmcheck", "Model instance name for equation contexts")
	cmd.Flags().StringVar(&msg, "msg", "", "Message attached to diagnostics (default: the call expression)")
	cmd.Flags().Float64Var(&at, "time", 0, "Simulation time of the model instance")
	return cmd
}

func wantArgs(op string, values []float64, n int) error {
	if len(values) != n {
		return fmt.Errorf("%s takes %d argument(s), got %d", op, n, len(values))
	}
	return nil
}

// parseFloats parses each argument as a float64. "NaN", "Inf" and "-Inf"
// are accepted.
func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		values[i] = v
	}
	return values, nil
}
