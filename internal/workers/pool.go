// Package workers runs independent jobs on a fixed set of goroutines.
package workers

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

var (
	ErrPoolNotStarted = errors.New("workers: pool not started")
	ErrPoolStopped    = errors.New("workers: pool stopped")
)

// Pool manages a pool of worker goroutines for parallel processing
type Pool struct {
	numWorkers int
	jobQueue   chan func()
	quit       chan struct{}
	started    atomic.Bool
	startOnce  sync.Once
	stopOnce   sync.Once
}

// NewPool creates a pool; numWorkers <= 0 means one per CPU.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Pool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// Start launches the worker goroutines. Calls after the first are no-ops.
func (p *Pool) Start() {
	p.startOnce.Do(func() {
		for i := 0; i < p.numWorkers; i++ {
			go p.worker()
		}
		p.started.Store(true)
	})
}

func (p *Pool) worker() {
	for {
		select {
		case job := <-p.jobQueue:
			job()
		case <-p.quit:
			return
		}
	}
}

// Submit queues a job. It blocks while the queue is full, until ctx is done
// or the pool is stopped.
func (p *Pool) Submit(ctx context.Context, job func()) error {
	if !p.started.Load() {
		return ErrPoolNotStarted
	}
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-p.quit:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop shuts the workers down. Jobs still queued are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
}

func (p *Pool) Size() int { return p.numWorkers }

// ParallelFor calls fn for every index in [start, end), splitting the range
// into one contiguous run per worker. It returns once every run finished,
// ctx is done or the pool is stopped. In the last two cases runs already
// executing stop at their next index and the error is returned.
func (p *Pool) ParallelFor(ctx context.Context, start, end int, fn func(int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if start >= end {
		return nil
	}

	step := max(1, (end-start)/p.numWorkers)
	runs := (end - start + step - 1) / step
	done := make(chan struct{}, runs)
	for i := start; i < end; i += step {
		runStart := i
		runEnd := min(i+step, end)
		err := p.Submit(ctx, func() {
			defer func() { done <- struct{}{} }()
			for j := runStart; j < runEnd; j++ {
				if ctx.Err() != nil {
					return
				}
				fn(j)
			}
		})
		if err != nil {
			return err
		}
	}

	for i := 0; i < runs; i++ {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		case <-p.quit:
			return ErrPoolStopped
		}
	}
	return ctx.Err()
}

// Runner adapts ParallelFor to callers that only know a job count.
func (p *Pool) Runner(ctx context.Context) func(n int, fn func(int)) error {
	return func(n int, fn func(int)) error {
		return p.ParallelFor(ctx, 0, n, fn)
	}
}
