// Copyright 2025 The go-softfloat Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// splitting large runs of independent softfloat operations, such as bulk
// slice transforms or sweeps over ranges of bit patterns, across CPUs.
//
// A Pool is created once and reused, so many short runs do not pay for
// goroutine spawns.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(out), func(start, end int) {
//	    bulk.AddSlices(a[start:end], b[start:end], out[start:end])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// batchesPerWorker is how many batches ParallelForContext cuts per worker.
// More batches balance uneven work and let cancellation take effect sooner.
const batchesPerWorker = 8

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a worker pool with numWorkers workers, or GOMAXPROCS workers
// if numWorkers <= 0. Workers persist until Close is called.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Pending work completes first. Calling
// Close more than once is safe; a closed pool runs everything on the
// calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// dispatch runs fn on `workers` pool workers and waits for all of them.
func (p *Pool) dispatch(workers int, fn func()) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{fn: fn, barrier: &wg}
	}
	wg.Wait()
}

// ParallelFor calls fn over [0, n) split into one contiguous range per
// worker, and blocks until all ranges are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomicBatched calls fn over [0, n) in batches of batchSize
// indices that workers claim from a shared atomic counter, which balances
// work whose cost varies across the range. It blocks until all batches
// are done.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	p.dispatch(workers, func() {
		for {
			start := int(next.Add(int64(batchSize))) - batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}

// ParallelForContext is ParallelForAtomicBatched with cancellation and an
// automatic batch size. Once ctx is done no further batch starts; batches
// already running finish, and the context's error is returned if any
// index was left unprocessed.
func (p *Pool) ParallelForContext(ctx context.Context, n int, fn func(start, end int)) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "parallel for")
	}
	if n <= 0 {
		return nil
	}

	workers := p.numWorkers
	if p.closed.Load() {
		workers = 1
	}
	batchSize := max((n+workers*batchesPerWorker-1)/(workers*batchesPerWorker), 1)
	numBatches := (n + batchSize - 1) / batchSize
	workers = min(workers, numBatches)

	var next, done atomic.Int64
	run := func() {
		for ctx.Err() == nil {
			start := int(next.Add(int64(batchSize))) - batchSize
			if start >= n {
				return
			}
			end := min(start+batchSize, n)
			fn(start, end)
			done.Add(int64(end - start))
		}
	}
	if workers == 1 {
		run()
	} else {
		p.dispatch(workers, run)
	}

	if done.Load() < int64(n) {
		return errors.Wrapf(ctx.Err(), "parallel for: %d of %d done", done.Load(), n)
	}
	return nil
}
