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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-evalmath/internal/logging"
)

// options holds flags shared by every subcommand.
type options struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "dmcheck",
		Short: "Inspect and exercise domain-checked math",
		Long: `dmcheck reports which implementation set of the dmath package this binary
was built with and evaluates single operations, the NaN scan and the sample
predicate the way generated model code does.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logging.NewWriter(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newInfoCmd(opts),
		newEvalCmd(opts),
		newNaNCmd(opts),
		newSampleCmd(opts),
	)
	return root
}
