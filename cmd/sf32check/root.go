// Copyright 2025 go-softfloat Authors
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
)

// app holds state shared by every subcommand.
type app struct {
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}
	var logLevel string

	root := &cobra.Command{
		Use:   "sf32check",
		Short: "Check software binary32 arithmetic against the host FPU",
		Long: `sf32check evaluates operations of the sf32 software floating-point
package and compares each result bit for bit with the host FPU.

Operands are binary32 bit patterns ("0x3F800000") or decimal floats
("1.0", "-inf", "nan"). NaN results match when both sides are NaN.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLogLevel(logLevel)
			if err != nil {
				return err
			}
			a.logger = NewLogger(cmd.ErrOrStderr(), level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", logLevelEnv(),
		"log level: trace, debug, info, warn or error (env "+envLogLevel+")")

	root.AddCommand(newEvalCmd(a), newSweepCmd(a), newInfoCmd())
	return root
}
