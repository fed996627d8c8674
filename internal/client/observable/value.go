// Package observable holds a value that any number of readers can watch.
//
// Subscribers receive the current value immediately and then every later
// value. Delivery conflates: a slow subscriber only ever sees the most
// recent value, Set never blocks.
package observable

import (
	"context"
	"sync"
)

// Value coordinates concurrent updates to one value of type T.
type Value[T any] struct {
	mu   sync.RWMutex
	v    T
	subs map[chan T]struct{}
}

func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{v: initial, subs: make(map[chan T]struct{})}
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.v
}

// Set stores v and notifies subscribers.
func (o *Value[T]) Set(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.v = v
	o.publish()
}

// Update applies fn to the current value atomically and returns the result.
func (o *Value[T]) Update(fn func(T) T) T {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.v = fn(o.v)
	o.publish()
	return o.v
}

// Subscribe returns a channel that yields the current value and then each
// update. The channel is closed once ctx is done.
func (o *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	o.mu.Lock()
	ch <- o.v
	o.subs[ch] = struct{}{}
	o.mu.Unlock()

	go func() {
		<-ctx.Done()
		o.mu.Lock()
		delete(o.subs, ch)
		close(ch)
		o.mu.Unlock()
	}()
	return ch
}

// publish must be called with mu held. Each channel has one slot and mu is
// the only writer, so draining first guarantees the send cannot block.
func (o *Value[T]) publish() {
	for ch := range o.subs {
		select {
		case <-ch:
		default:
		}
		ch <- o.v
	}
}
