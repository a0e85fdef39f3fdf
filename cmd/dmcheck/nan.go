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

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-evalmath/dmath"
)

func newNaNCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "nan <values...>",
		Short: "Report the index of the first NaN in a list of values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}
			idx, found := dmath.CheckNaN(values)
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), "no NaN")
				return nil
			}
			opts.logger.Warn("NaN detected", "index", idx, "count", len(values))
			fmt.Fprintf(cmd.OutOrStdout(), "NaN at index %d\n", idx)
			return nil
		},
	}
}
