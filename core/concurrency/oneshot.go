// File: core/concurrency/oneshot.go
// Package concurrency implements the one-shot value slot.
// Author: momentics <momentics@gmail.com>
//
// A single value travels producer to consumer at most once. Closing
// the slot without a send is a valid, observable outcome: Recv
// reports ok false rather than an error.

package concurrency

import (
	"context"
	"sync"
)

// OneShot transfers one value of type T exactly once.
type OneShot[T any] struct {
	mu     sync.Mutex
	value  T
	sent   bool
	closed bool
	done   chan struct{}
}

// NewOneShot creates an empty slot.
func NewOneShot[T any]() *OneShot[T] {
	return &OneShot[T]{done: make(chan struct{})}
}

// Send delivers v. It reports false if the slot was already used
// or closed; the value is not stored in that case.
func (o *OneShot[T]) Send(v T) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.sent || o.closed {
		return false
	}
	o.value = v
	o.sent = true
	close(o.done)
	return true
}

// Close resolves the slot with no value. Safe to call from either
// side, any number of times, including after a Send.
func (o *OneShot[T]) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.sent || o.closed {
		return
	}
	o.closed = true
	close(o.done)
}

// Recv blocks until the slot resolves. ok is false when the slot was
// closed without a value.
func (o *OneShot[T]) Recv(ctx context.Context) (v T, ok bool, err error) {
	select {
	case <-ctx.Done():
		return v, false, ctx.Err()
	case <-o.done:
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.sent {
		return o.value, true, nil
	}
	return v, false, nil
}
