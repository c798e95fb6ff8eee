// Copyright 2025 The go-pairdot Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, fixed-size worker pool.
//
// A Pool is created once and reused. It serves two shapes of work:
//
//   - Submit hands an independent task to the pool and returns a Task handle
//     the caller waits on. This is the executor shape: submit two kernel
//     invocations, then wait for both results.
//   - ParallelFor splits one index range across all workers and blocks until
//     every chunk is done. This is the intra-operation shape used to spread the
//     rows of a single large kernel call over the cores.
//
// Usage:
//
//	pool := workerpool.New(2)
//	defer pool.Close()
//
//	t1 := pool.Submit(func() { x = compute(a, b) })
//	t2 := pool.Submit(func() { y = compute(a, c) })
//	workerpool.Wait(t1, t2)
package workerpool

import (
	"runtime"
	"sync"
)

// Pool is a persistent worker pool that can be reused across many
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu is held for reading while work is queued and for writing by Close,
	// so workC is never closed under a pending send.
	mu     sync.RWMutex
	closed bool
}

// workItem is one unit of work plus the completion hook to run after it.
type workItem struct {
	fn   func()
	done func()
}

// Task is the handle of a function passed to Submit.
type Task struct {
	done chan struct{}
}

// Wait blocks until the task's function has returned.
func (t *Task) Wait() {
	<-t.done
}

// Done returns a channel that is closed when the task's function has returned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until every task has completed. Completion order is not observed.
func Wait(tasks ...*Task) {
	for _, t := range tasks {
		t.Wait()
	}
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Close may run concurrently with Submit and ParallelFor: it waits for
// in-flight queueing to finish, and later calls run their work inline.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// Submit queues fn for execution on one of the pool's workers and returns
// immediately. Submit blocks only when the queue is full.
//
// On a closed pool fn runs synchronously on the caller's goroutine and the
// returned Task is already complete.
func (p *Pool) Submit(fn func()) *Task {
	t := &Task{done: make(chan struct{})}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn()
		close(t.done)
		return t
	}
	p.workC <- workItem{
		fn:   fn,
		done: func() { close(t.done) },
	}
	p.mu.RUnlock()
	return t
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	// Don't use more workers than items
	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunkSize
		if start >= n {
			break
		}
		end := min(start+chunkSize, n)

		wg.Add(1)
		p.workC <- workItem{
			fn:   func() { fn(start, end) },
			done: wg.Done,
		}
	}
	p.mu.RUnlock()

	wg.Wait()
}
