// Package chflow holds the channel helpers shared by the services: context
// aware sends and receives, and a latest-value-wins delivery for snapshot
// streams.
package chflow

import "context"

// Receive waits for a value on ch. It reports false when ctx is done first or
// ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data on ch unless ctx is done first.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Replace delivers data on a channel with a buffer of one, discarding the
// value still waiting there if the consumer has not picked it up yet. Readers
// therefore always see the latest value. ch must have exactly one writer.
func Replace[T any](ch chan T, data T) {
	for {
		select {
		case ch <- data:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}
