// Package parallel dispatches per-pixel ray tracing work across the host's
// CPUs. The path tracer hands it one job per pixel and waits for every job
// to finish before Render returns — there is no streaming or
// fire-and-forget use case in this renderer, so the pool exposes exactly
// the one blocking entry point that needs.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines that split a frame's pixels across
// workers, each with their own queue. Workers steal work from other workers
// when their own queue runs dry, so a frame with uneven per-pixel cost (a
// ray tracer's pixel times vary with what each pixel's rays hit) still
// finishes as soon as the slowest worker's share does.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// workQueues holds per-worker work queues.
	// Each worker primarily pulls from its own queue but can steal from others.
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool

	// queueSize is the buffer size for each worker's queue.
	queueSize int
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Buffer size: 2-4x workers helps hide latency (from research)
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
		queueSize:  queueSize,
	}

	// Create per-worker queues
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	// Start worker goroutines
	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			if work != nil {
				work()
			}

		default:
			// Try to steal work from another worker
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// No work available anywhere, block on own queue
				select {
				case <-p.done:
					p.drainQueue(myQueue)
					return
				case work := <-myQueue:
					if work != nil {
						work()
					}
				}
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) func() {
	// Try each other worker's queue once
	for i := range p.workers {
		if i == myID {
			continue
		}

		select {
		case work := <-p.workQueues[i]:
			return work
		default:
			// Queue is empty, try next
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all to complete.
// This is the renderer's only dispatch method: a frame's pixels are handed
// in as one []func() and ExecuteAll blocks until every pixel has been traced.
// If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 || !p.running.Load() {
		return
	}

	var completionWG sync.WaitGroup
	completionWG.Add(len(work))

	// Wrap each work item to signal completion
	for i, fn := range work {
		workerID := i % p.workers
		workFn := fn // Capture for closure

		wrappedWork := func() {
			defer completionWG.Done()
			workFn()
		}

		// Submit to worker's queue (may block if queue is full)
		select {
		case p.workQueues[workerID] <- wrappedWork:
			// Successfully queued
		case <-p.done:
			// Pool is closing, execute remaining work directly
			wrappedWork()
		}
	}

	completionWG.Wait()
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		// Already closed
		return
	}

	// Signal workers to stop
	close(p.done)

	// Wait for all workers to finish
	p.wg.Wait()
}
