// Package task provides a cancellable fixed-interval runner for background
// refresh work (notification polling, points refresh). It exists so interval
// timers always have an explicit teardown: a Runner that is stopped leaks
// neither its goroutine nor its ticker.
package task

import (
	"context"
	"sync"
	"time"
)

// Runner executes a function at a fixed interval on its own goroutine until
// stopped. The function receives a context cancelled on Stop so in-flight
// work (HTTP calls) can be aborted with the runner.
type Runner struct {
	interval  time.Duration
	fn        func(context.Context)
	immediate bool

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithImmediate makes the first execution happen at Start rather than after
// the first interval elapses.
func WithImmediate() Option {
	return func(r *Runner) { r.immediate = true }
}

// Every constructs a Runner executing fn every interval. The Runner is inert
// until Start is called.
func Every(interval time.Duration, fn func(context.Context), opts ...Option) *Runner {
	r := &Runner{interval: interval, fn: fn}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Start launches the runner goroutine. Starting an already-running Runner is
// a no-op. The supplied parent context bounds the runner's lifetime in
// addition to Stop.
func (r *Runner) Start(parent context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	ctx, cancel := context.WithCancel(parent)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.running = true

	go r.loop(ctx, r.done)
}

// Stop cancels the runner and waits for the goroutine to exit. Safe to call
// multiple times and on a never-started Runner.
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	cancel()
	<-done
}

// Running reports whether the runner goroutine is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *Runner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	if r.immediate {
		r.fn(ctx)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fn(ctx)
		}
	}
}
