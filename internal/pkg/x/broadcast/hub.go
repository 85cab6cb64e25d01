// Package broadcast fans published values out to any number of subscribers.
// Each subscription lives as long as the context it was created with.
package broadcast

import (
	"context"
	"sync"
)

const defaultBufferSize = 16

type subscriber[T any] struct {
	ctx context.Context
	ch  chan T
}

// Hub delivers every published value to every live subscriber, in publish
// order. The zero value is not usable; create hubs with New.
type Hub[T any] struct {
	mu     sync.Mutex
	subs   map[*subscriber[T]]struct{}
	buffer int
}

// New returns an empty hub whose subscriber channels buffer up to buffer
// values. A non-positive buffer uses the default size.
func New[T any](buffer int) *Hub[T] {
	if buffer <= 0 {
		buffer = defaultBufferSize
	}

	return &Hub[T]{
		subs:   make(map[*subscriber[T]]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers a new subscriber. The returned channel receives every
// value published after the call and is closed once ctx is done.
func (h *Hub[T]) Subscribe(ctx context.Context) <-chan T {
	sub := &subscriber[T]{ctx: ctx, ch: make(chan T, h.buffer)}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()

		h.mu.Lock()
		defer h.mu.Unlock()

		delete(h.subs, sub)
		close(sub.ch)
	}()

	return sub.ch
}

// Publish sends v to every subscriber. It blocks while a subscriber's buffer
// is full, until that subscriber goes away or ctx is done.
func (h *Hub[T]) Publish(ctx context.Context, v T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		select {
		case <-ctx.Done():
			return
		case <-sub.ctx.Done():
		case sub.ch <- v:
		}
	}
}
