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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-evalmath/dmath"
	"github.com/ajroetker/go-evalmath/model"
)

func newSampleCmd(opts *options) *cobra.Command {
	var (
		at     float64
		event  bool
		offset float64
		period float64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Evaluate the periodic sample predicate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if period <= 0 {
				return errors.New("--period must be positive")
			}
			inst := model.New("dmcheck", nil)
			inst.SetTime(at)
			if event {
				inst.EnterEvent()
			}
			fired := dmath.Sample(inst, offset, period)
			opts.logger.Debug("sample", "time", at, "phase", inst.Phase().String(), "offset", offset, "period", period)
			fmt.Fprintln(cmd.OutOrStdout(), fired)
			return nil
		},
	}

	cmd.Flags().Float64Var(&at, "time", 0, "Simulation time")
	cmd.Flags().BoolVar(&event, "event", false, "Evaluate during event handling")
	cmd.Flags().Float64Var(&offset, "offset", 0, "First sample instant")
	cmd.Flags().Float64Var(&period, "period", 1, "Sample period")
	return cmd
}
