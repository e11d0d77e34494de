package store

import (
	"context"
)

// Future is the pending result of a store request. It resolves exactly once,
// with either a value or an error.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// resolve must be called exactly once
func (f *Future[T]) resolve(value T, err error) {
	f.value = value
	f.err = err
	close(f.done)
}

// Done is closed once the request has completed
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the request completes or ctx is done. Giving up on the
// wait does not cancel the request: it still runs and its effects persist.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then invokes exactly one of onSuccess or onFailure once the request
// completes. Continuations run on their own goroutine; callers that need a
// particular thread must marshal to it themselves.
func (f *Future[T]) Then(onSuccess func(T), onFailure func(error)) {
	go func() {
		<-f.done
		if f.err != nil {
			if onFailure != nil {
				onFailure(f.err)
			}
			return
		}
		if onSuccess != nil {
			onSuccess(f.value)
		}
	}()
}
