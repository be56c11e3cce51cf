package parallel

import (
	"sync/atomic"

	"github.com/baxromumarov/parallel/syncx"
)

// Combinators compose futures without exposing the cell internals. Each one
// builds a fresh promise/future pair and wires it to its source via
// Subscribe, so the derived future resolves on whichever goroutine resolves
// the source. They are free functions because Go methods cannot introduce
// type parameters.

// Map returns a future resolving with fn(value) once f resolves.
func Map[T, R any](f *Future[T], fn func(T) R) *Future[R] {
	if fn == nil {
		panic("parallel: Map requires a non-nil function")
	}
	p, out := NewPromise[R]()
	f.Subscribe(func(v T) {
		p.Set(fn(v))
	})
	return out
}

// Then chains an asynchronous continuation: fn itself returns a future, and
// the result resolves with that inner future's eventual value, flattening
// one level of nesting.
func Then[T, R any](f *Future[T], fn func(T) *Future[R]) *Future[R] {
	if fn == nil {
		panic("parallel: Then requires a non-nil function")
	}
	p, out := NewPromise[R]()
	f.Subscribe(func(v T) {
		fn(v).Subscribe(func(r R) {
			p.Set(r)
		})
	})
	return out
}

// Apply is [Map] for shared futures: it resolves with fn(value) without
// consuming the shared value.
func Apply[T, R any](f *SharedFuture[T], fn func(T) R) *Future[R] {
	if fn == nil {
		panic("parallel: Apply requires a non-nil function")
	}
	p, out := NewPromise[R]()
	f.Subscribe(func(v T) {
		p.Set(fn(v))
	})
	return out
}

// ApplyThen is [Then] for shared futures.
func ApplyThen[T, R any](f *SharedFuture[T], fn func(T) *Future[R]) *Future[R] {
	if fn == nil {
		panic("parallel: ApplyThen requires a non-nil function")
	}
	p, out := NewPromise[R]()
	f.Subscribe(func(v T) {
		fn(v).Subscribe(func(r R) {
			p.Set(r)
		})
	})
	return out
}

// WaitAll returns a future that resolves once every input has resolved,
// regardless of completion order. With no inputs it resolves immediately.
//
// The implementation is a last-one-out counter: each input's resolution
// drops one reference, and whichever goroutine drops the count to zero
// fires the aggregate exactly once.
func WaitAll[T any](futures ...*Future[T]) *Future[struct{}] {
	p, out := NewPromise[struct{}]()
	if len(futures) == 0 {
		p.Set(struct{}{})
		return out
	}
	var remaining atomic.Int64
	remaining.Store(int64(len(futures)))
	for _, f := range futures {
		f.Subscribe(func(T) {
			if remaining.Add(-1) == 0 {
				p.Set(struct{}{})
			}
		})
	}
	return out
}

// anyClaim is the single-winner slot behind WaitAny. The first resolution
// to empty the slot fires the aggregate; everyone else observes nil.
type anyClaim struct {
	mu     syncx.Mutex
	winner *Promise[struct{}]
}

// WaitAny returns a future that resolves as soon as the first input
// resolves. Exactly one input wins the claim; later resolutions are no-ops,
// and the losers' own futures remain individually observable. With no
// inputs it resolves immediately.
func WaitAny[T any](futures ...*Future[T]) *Future[struct{}] {
	p, out := NewPromise[struct{}]()
	if len(futures) == 0 {
		p.Set(struct{}{})
		return out
	}
	claim := &anyClaim{winner: p}
	for _, f := range futures {
		f.Subscribe(func(T) {
			claim.mu.Lock()
			w := claim.winner
			claim.winner = nil
			claim.mu.Unlock()
			if w != nil {
				w.Set(struct{}{})
			}
		})
	}
	return out
}
