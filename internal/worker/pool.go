// Package worker runs independent jobs on a fixed set of goroutines. The
// chess engine uses it to split perft counts by root move.
package worker

import (
	"sync"
	"sync/atomic"
)

// Pool applies fn to every submitted job on n goroutines. Results arrive in
// completion order, not submission order.
type Pool[J, R any] struct {
	fn      func(J) R
	n       int
	backlog int

	jobs    chan J
	results chan R
	running sync.WaitGroup
	stopped atomic.Bool
}

// Option tunes a Pool before it starts.
type Option func(*settings)

type settings struct {
	workers int
	backlog int
}

// WithWorkers sets the goroutine count; values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithBufferSize sets how many jobs and results may queue before Submit
// blocks; values below 1 are ignored.
func WithBufferSize(size int) Option {
	return func(s *settings) {
		if size > 0 {
			s.backlog = size
		}
	}
}

// NewPool creates a pool with one worker and a backlog of 10 unless
// options say otherwise.
func NewPool[J, R any](fn func(J) R, opts ...Option) *Pool[J, R] {
	s := settings{workers: 1, backlog: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[J, R]{
		fn:      fn,
		n:       s.workers,
		backlog: s.backlog,
		jobs:    make(chan J, s.backlog),
		results: make(chan R, s.backlog),
	}
}

// Start launches the workers.
func (p *Pool[J, R]) Start() {
	p.running.Add(p.n)
	for i := 0; i < p.n; i++ {
		go p.loop()
	}
}

func (p *Pool[J, R]) loop() {
	defer p.running.Done()
	for job := range p.jobs {
		// Jobs queued before Stop are drained unrun.
		if p.stopped.Load() {
			continue
		}
		p.results <- p.fn(job)
	}
}

// Submit queues a job, blocking while the backlog is full.
func (p *Pool[J, R]) Submit(job J) {
	p.jobs <- job
}

// Stop makes workers skip every job they have not started yet.
func (p *Pool[J, R]) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop was called.
func (p *Pool[J, R]) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and closes Results.
func (p *Pool[J, R]) Close() {
	close(p.jobs)
	p.running.Wait()
	close(p.results)
}

// Results yields one value per job run.
func (p *Pool[J, R]) Results() <-chan R {
	return p.results
}

// NumWorkers returns the goroutine count.
func (p *Pool[J, R]) NumWorkers() int {
	return p.n
}
