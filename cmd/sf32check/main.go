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

// Command sf32check compares the sf32 software floating-point package with
// the host FPU.
//
// Usage:
//
//	sf32check eval add 0x3DCCCCCD 0x3E4CCCCD
//	sf32check sweep --op sqrt --start 0x3F800000 --end 0x407FFFFF
//	sf32check sweep --op add,mul,div --random 10000000 --seed 7
//	sf32check info
//
// The worker count and log level default to the SF32CHECK_WORKERS and
// SF32CHECK_LOG_LEVEL environment variables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
