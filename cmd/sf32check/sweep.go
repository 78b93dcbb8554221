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
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ajroetker/go-softfloat/sf32/contrib/bulk"
	"github.com/ajroetker/go-softfloat/sf32/contrib/workerpool"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	// sweepChunk is the number of lanes checked per bulk call.
	sweepChunk = 4096

	// defaultRandom is the random operand count for binary operations.
	defaultRandom = 1 << 20
)

type sweepConfig struct {
	start, end uint32 // inclusive operand range for exhaustive sweeps
	random     int    // random operand sets to check instead of a range
	seed       uint64
	maxReport  int
}

// count returns the number of operand sets the sweep checks.
func (c sweepConfig) count(o op) int {
	switch {
	case c.random > 0:
		return c.random
	case o.arity == 2:
		return defaultRandom
	}
	return int(uint64(c.end) - uint64(c.start) + 1)
}

// operands returns the i-th operand set. Random operands depend only on
// the seed and i, so a sweep checks the same inputs for any worker count.
func (c sweepConfig) operands(o op, i int) (a, b uint32) {
	if c.random == 0 && o.arity == 1 {
		// Range sweep.
		return c.start + uint32(i), 0
	}
	src := rand.NewPCG(c.seed, uint64(i))
	v := src.Uint64()
	return uint32(v), uint32(v >> 32)
}

type mismatch struct {
	a, b, got, want uint32
}

type sweepResult struct {
	op         op
	checked    int64
	mismatches int64
	samples    []mismatch
	elapsed    time.Duration
}

// runSweep checks one operation over the configured inputs on pool.
func runSweep(ctx context.Context, logger *slog.Logger, pool *workerpool.Pool, o op, cfg sweepConfig) (sweepResult, error) {
	res := sweepResult{op: o}
	n := cfg.count(o)
	logger.Info("sweep started", "op", o.name, "inputs", n, "workers", pool.NumWorkers())
	began := time.Now()

	var (
		checked, mismatches atomic.Int64
		mu                  sync.Mutex
	)
	err := pool.ParallelForContext(ctx, n, func(start, end int) {
		trace(ctx, logger, "batch", "op", o.name, "start", start, "end", end)
		a := make([]uint32, sweepChunk)
		b := make([]uint32, sweepChunk)
		got := make([]uint32, sweepChunk)
		want := make([]uint32, sweepChunk)
		for base := start; base < end; base += sweepChunk {
			m := min(sweepChunk, end-base)
			for i := range m {
				a[i], b[i] = cfg.operands(o, base+i)
			}
			bulk.Transform2(a[:m], b[:m], got[:m], o.soft)
			bulk.Transform2(a[:m], b[:m], want[:m], o.host)
			for i := range m {
				if o.same(got[i], want[i]) {
					continue
				}
				mismatches.Add(1)
				logger.Debug("mismatch", "op", o.name, "a", a[i], "b", b[i], "got", got[i], "want", want[i])
				mu.Lock()
				if len(res.samples) < cfg.maxReport {
					res.samples = append(res.samples, mismatch{a[i], b[i], got[i], want[i]})
				}
				mu.Unlock()
			}
			checked.Add(int64(m))
		}
	})
	res.checked, res.mismatches = checked.Load(), mismatches.Load()
	res.elapsed = time.Since(began)
	if err != nil {
		return res, errors.Wrapf(err, "sweep %s", o.name)
	}
	logger.Info("sweep finished", "op", o.name, "checked", res.checked,
		"mismatches", res.mismatches, "elapsed", res.elapsed)
	return res, nil
}

func (r sweepResult) report(w io.Writer) {
	for _, m := range r.samples {
		operands := r.op.formatOperand(m.a)
		if r.op.arity == 2 {
			operands += ", " + r.op.formatOperand(m.b)
		}
		fmt.Fprintf(w, "MISMATCH %s(%s): got %s, host %s\n",
			r.op.name, operands, r.op.formatResult(m.got), r.op.formatResult(m.want))
	}
	fmt.Fprintf(w, "%-10s %d checked, %d mismatches\n", r.op.name, r.checked, r.mismatches)
}

func newSweepCmd(a *app) *cobra.Command {
	var (
		opList  string
		workers int
		cfg     sweepConfig
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare operations with the host FPU over many inputs",
		Long: `sweep checks every operand from --start to --end (unary operations), or
--random operand sets drawn from --seed (binary operations, or unary ones
when --random is set). Several operations, comma separated, run
concurrently on one worker pool. The command fails if any result differs
from the host FPU.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := lo.Uniq(strings.Split(opList, ","))
			selected := make([]op, 0, len(names))
			for _, name := range names {
				o, err := lookupOp(strings.TrimSpace(name))
				if err != nil {
					return err
				}
				selected = append(selected, o)
			}
			if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
				if cfg.random > 0 {
					return errors.New("--start/--end cannot be combined with --random")
				}
				if binary, ok := lo.Find(selected, func(o op) bool { return o.arity == 2 }); ok {
					return errors.Newf("--start/--end apply to unary operations only; %s draws random operands", binary.name)
				}
			}
			if cfg.end < cfg.start {
				return errors.Newf("--end 0x%08X is below --start 0x%08X", cfg.end, cfg.start)
			}
			if cfg.random < 0 {
				return errors.Newf("--random must not be negative, got %d", cfg.random)
			}

			pool := workerpool.New(workers)
			defer pool.Close()

			results := make([]sweepResult, len(selected))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, o := range selected {
				g.Go(func() error {
					var err error
					results[i], err = runSweep(ctx, a.logger, pool, o, cfg)
					return err
				})
			}
			err := g.Wait()

			out := cmd.OutOrStdout()
			var total int64
			for _, r := range results {
				r.report(out)
				total += r.mismatches
			}
			if err != nil {
				return err
			}
			if total > 0 {
				return errors.Newf("%d mismatches against the host FPU", total)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opList, "op", "sqrt", "comma-separated operations: "+strings.Join(opNames(), ", "))
	flags.Uint32Var(&cfg.start, "start", 0x3F800000, "first operand of a range sweep (unary operations only)")
	flags.Uint32Var(&cfg.end, "end", 0x3F8FFFFF, "last operand of a range sweep (unary operations only)")
	flags.IntVar(&cfg.random, "random", 0, fmt.Sprintf("number of random operand sets (binary operations default to %d)", defaultRandom))
	flags.Uint64Var(&cfg.seed, "seed", 1, "seed for random operands")
	flags.IntVar(&cfg.maxReport, "max-report", 10, "mismatches to print per operation")
	flags.IntVar(&workers, "workers", workersEnv(), "worker count, 0 for one per CPU (env "+envWorkers+")")
	return cmd
}
