// Package worker provides a worker pool for checking positions in parallel.
package worker

import (
	"sync"
	"sync/atomic"
)

// Job is one position to check: a FEN and the moves to play from it.
type Job struct {
	Index int    // Submission order
	Line  int    // Source line number, 0 when not read from a file
	FEN   string
	Moves []string
}

// Result is the outcome of a Job.
type Result struct {
	Index  int
	Line   int
	Report interface{} // Opaque payload; typed by consumer
	Err    error
}

// ProcessFunc checks a single job.
type ProcessFunc func(job Job) Result

// Pool manages a pool of workers for parallel position checks.
type Pool struct {
	numWorkers  int
	bufferSize  int
	jobs        chan Job
	results     chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
	submitted   int64
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool that runs processFunc on every submitted job.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes jobs until the job channel is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // Drain without processing
		}
		p.results <- p.processFunc(job)
	}
}

// Submit queues a job, blocking while the buffer is full.
// Jobs submitted after Stop are dropped.
func (p *Pool) Submit(job Job) {
	if p.IsStopped() {
		return
	}
	atomic.AddInt64(&p.submitted, 1)
	p.jobs <- job
}

// Stop signals workers to skip the remaining queued jobs.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel and waits for all workers to finish.
// The result channel is closed once the last worker returns.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Submitted returns how many jobs were accepted.
func (p *Pool) Submitted() int {
	return int(atomic.LoadInt64(&p.submitted))
}
