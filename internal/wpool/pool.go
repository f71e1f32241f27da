// Package wpool is a bounded-concurrency gate, adapted from the teacher's
// internal/worker.go (which bounded concurrent TCP connection handling with
// a fixed-size goroutine pool drawing off a task channel). Here it bounds how
// many SubmitOrder calls may be concurrently mid-persistence — holding the
// trade sink's write guard — at once (SPEC_FULL §5.1), while still letting
// each RPC call run its own work synchronously and get its own error back.
package wpool

import tomb "gopkg.in/tomb.v2"

// Pool limits concurrent execution of Do to n in-flight calls.
type Pool struct {
	slots chan struct{}
}

// New creates a pool admitting up to n concurrent Do calls.
func New(n int) *Pool {
	return &Pool{slots: make(chan struct{}, n)}
}

// Do waits until a slot is free or t starts dying. If it takes a slot it
// runs fn and releases the slot when fn returns; if t's dying wins the wait
// it returns tomb.ErrDying without running fn. When both are ready at once,
// either may be chosen.
func (p *Pool) Do(t *tomb.Tomb, fn func() error) error {
	select {
	case <-t.Dying():
		return tomb.ErrDying
	case p.slots <- struct{}{}:
	}
	defer func() { <-p.slots }()

	return fn()
}
