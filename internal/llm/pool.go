package llm

import "context"

// Pool bounds how many gateway calls may be in flight at once. Excess
// callers queue on the semaphore, which gives implicit backpressure
// without a shedding policy.
type Pool struct {
	sem chan struct{}
}

// NewPool creates a pool allowing up to size concurrent calls.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: make(chan struct{}, size)}
}

// Run executes fn once a worker slot is free. It returns the context
// error if ctx is cancelled while waiting; a dispatched fn always runs
// to completion.
func (p *Pool) Run(ctx context.Context, fn func() error) error {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-p.sem }()
	return fn()
}
