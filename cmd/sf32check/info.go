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
	"runtime"
	"strings"

	"github.com/ajroetker/go-softfloat/sf32"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

type feature struct {
	name    string
	present bool
}

// fpuFeatures lists the host floating-point features that matter when
// comparing against the FPU.
func fpuFeatures() []feature {
	switch runtime.GOARCH {
	case "amd64", "386":
		return []feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse4.1", cpu.X86.HasSSE41},
			{"avx", cpu.X86.HasAVX},
			{"fma", cpu.X86.HasFMA},
			{"avx512", cpu.X86.HasAVX512},
		}
	case "arm64":
		return []feature{
			{"fp", cpu.ARM64.HasFP},
			{"asimd", cpu.ARM64.HasASIMD},
			{"fphp", cpu.ARM64.HasFPHP},
			{"sve", cpu.ARM64.HasSVE},
		}
	}
	return nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the rounding policy and host FPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			present := lo.FilterMap(fpuFeatures(), func(f feature, _ int) (string, bool) {
				return f.name, f.present
			})
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "platform     %s/%s %s\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
			fmt.Fprintf(out, "rounding     %s\n", sf32.Rounding)
			fmt.Fprintf(out, "tininess     %s\n", sf32.Tininess)
			fmt.Fprintf(out, "default NaN  0x%08X\n", uint32(sf32.DefaultNaN))
			fmt.Fprintf(out, "fpu          %s\n", lo.Ternary(len(present) == 0, "none detected", strings.Join(present, " ")))
			fmt.Fprintf(out, "ops          %s\n", strings.Join(opNames(), " "))
			return nil
		},
	}
}
