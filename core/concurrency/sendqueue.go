// File: core/concurrency/sendqueue.go
// Package concurrency implements the bounded producer/consumer queue.
// Author: momentics <momentics@gmail.com>
//
// SendQueue is a FIFO with a small capacity gate on the normal push
// path and a ForcePush path that skips the gate without skipping the
// queue: forced items are appended in order behind whatever is
// already buffered, so delivery order survives an abort.

package concurrency

import (
	"context"
	"fmt"
	"sync"

	"github.com/eapache/queue"
)

var (
	// ErrQueueFull reports the capacity gate rejecting a TryPush.
	ErrQueueFull = fmt.Errorf("queue at capacity")
	// ErrQueueAbandoned reports the consumer side being gone.
	ErrQueueAbandoned = fmt.Errorf("queue abandoned by consumer")
	// ErrQueueClosed reports the producer side having finished.
	ErrQueueClosed = fmt.Errorf("queue closed by producer")
)

type entry[T any] struct {
	v     T
	gated bool
}

// SendQueue moves items of type T from one producer handle to one
// consumer handle.
type SendQueue[T any] struct {
	mu           sync.Mutex
	items        *queue.Queue
	capacity     int
	buffered     int
	sendClosed   bool
	abandoned    bool
	consumerWake chan struct{}
	producerWake chan struct{}
}

// NewSendQueue creates a queue gating at most capacity normal items.
func NewSendQueue[T any](capacity int) *SendQueue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &SendQueue[T]{
		items:        queue.New(),
		capacity:     capacity,
		consumerWake: make(chan struct{}),
		producerWake: make(chan struct{}),
	}
}

func (q *SendQueue[T]) wakeConsumerLocked() {
	close(q.consumerWake)
	q.consumerWake = make(chan struct{})
}

func (q *SendQueue[T]) wakeProducerLocked() {
	close(q.producerWake)
	q.producerWake = make(chan struct{})
}

// TryPush enqueues v if a capacity slot is free. It never blocks.
func (q *SendQueue[T]) TryPush(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.abandoned {
		return ErrQueueAbandoned
	}
	if q.sendClosed {
		return ErrQueueClosed
	}
	if q.buffered >= q.capacity {
		return ErrQueueFull
	}
	q.items.Add(entry[T]{v: v, gated: true})
	q.buffered++
	q.wakeConsumerLocked()
	return nil
}

// ForcePush enqueues v behind everything already buffered, ignoring
// the capacity gate. Used for abort delivery.
func (q *SendQueue[T]) ForcePush(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.abandoned {
		return ErrQueueAbandoned
	}
	if q.sendClosed {
		return ErrQueueClosed
	}
	q.items.Add(entry[T]{v: v})
	q.wakeConsumerLocked()
	return nil
}

// WaitCapacity blocks until a capacity slot is free or the queue is
// no longer usable.
func (q *SendQueue[T]) WaitCapacity(ctx context.Context) error {
	for {
		q.mu.Lock()
		switch {
		case q.abandoned:
			q.mu.Unlock()
			return ErrQueueAbandoned
		case q.sendClosed:
			q.mu.Unlock()
			return ErrQueueClosed
		case q.buffered < q.capacity:
			q.mu.Unlock()
			return nil
		}
		ch := q.producerWake
		q.mu.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ch:
		}
	}
}

// Pop blocks for the next item. ok is false once the producer has
// closed and the queue is drained; later calls keep reporting that.
func (q *SendQueue[T]) Pop(ctx context.Context) (v T, ok bool, err error) {
	for {
		q.mu.Lock()
		if q.items.Length() > 0 {
			e := q.items.Remove().(entry[T])
			if e.gated {
				q.buffered--
				q.wakeProducerLocked()
			}
			q.mu.Unlock()
			return e.v, true, nil
		}
		if q.sendClosed || q.abandoned {
			q.mu.Unlock()
			return v, false, nil
		}
		ch := q.consumerWake
		q.mu.Unlock()
		select {
		case <-ctx.Done():
			return v, false, ctx.Err()
		case <-ch:
		}
	}
}

// CloseSend marks the producer as finished. Buffered items are still
// delivered. Idempotent.
func (q *SendQueue[T]) CloseSend() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.sendClosed {
		return
	}
	q.sendClosed = true
	q.wakeConsumerLocked()
	q.wakeProducerLocked()
}

// Abandon marks the consumer as gone, waking a blocked producer
// immediately. Idempotent.
func (q *SendQueue[T]) Abandon() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.abandoned {
		return
	}
	q.abandoned = true
	q.wakeConsumerLocked()
	q.wakeProducerLocked()
}

// Len reports the number of queued items.
func (q *SendQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Length()
}
