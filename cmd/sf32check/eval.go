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
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval OP A [B]",
		Short: "Evaluate one operation and compare it with the host FPU",
		Example: `  sf32check eval add 0x3DCCCCCD 0x3E4CCCCD
  sf32check eval sqrt 2.0
  sf32check eval from-int32 -80235
  sf32check eval lt -inf 0x00000001`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := lookupOp(args[0])
			if err != nil {
				return err
			}
			if len(args)-1 != o.arity {
				return errors.Newf("%s takes %d operand(s), got %d", o.name, o.arity, len(args)-1)
			}

			var operands [2]uint32
			for i, arg := range args[1:] {
				if operands[i], err = o.parseOperand(arg); err != nil {
					return err
				}
			}
			got := o.soft(operands[0], operands[1])
			want := o.host(operands[0], operands[1])
			match := o.same(got, want)
			a.logger.Debug("eval", "op", o.name, "a", operands[0], "b", operands[1], "got", got, "want", want)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "result  %s\n", o.formatResult(got))
			fmt.Fprintf(out, "host    %s\n", o.formatResult(want))
			fmt.Fprintf(out, "match   %s\n", lo.Ternary(match, "yes", "NO"))
			return nil
		},
	}
	// Flags end at OP, so negative operands such as -1.5 stay arguments.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
