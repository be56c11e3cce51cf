package parallel

import (
	"github.com/eapache/queue/v2"

	"github.com/baxromumarov/parallel/syncx"
)

// cell is the shared write-once storage behind a promise/future pair. It is
// mutated by exactly one Promise (the unique writer) and read by any number
// of Future/SharedFuture handles; the handles share it by ordinary GC
// ownership. State transitions: empty -> resolved (Set, exactly once),
// resolved -> moved (Take, exactly once).
type cell[T any] struct {
	mu        syncx.Mutex
	value     T
	resolved  bool
	moved     bool
	callbacks *queue.Queue[func(T)] // registration order; nil once drained
	done      *syncx.Event          // installed lazily by the first waiter
}

// block suspends the caller until the cell is resolved, installing the wait
// event at most once (double-checked under the lock).
func (c *cell[T]) block() {
	c.mu.Lock()
	if c.resolved {
		c.mu.Unlock()
		return
	}
	if c.done == nil {
		c.done = syncx.NewEvent()
	}
	done := c.done
	c.mu.Unlock()
	done.Wait()
}

// subscribe runs fn inline if the cell is already resolved, otherwise
// queues it. Queueing and Set serialize on the same lock, so there is no
// window where a concurrent Set could miss a subscriber.
func (c *cell[T]) subscribe(fn func(T)) {
	if fn == nil {
		panic("parallel: Subscribe requires a non-nil callback")
	}
	c.mu.Lock()
	if c.moved {
		c.mu.Unlock()
		panic("parallel: future value already taken")
	}
	if !c.resolved {
		if c.callbacks == nil {
			c.callbacks = queue.New[func(T)]()
		}
		c.callbacks.Add(fn)
		c.mu.Unlock()
		return
	}
	value := c.value
	c.mu.Unlock()
	fn(value)
}

// Promise is the single-writer handle that resolves a cell. Create a linked
// promise/future pair with [NewPromise].
type Promise[T any] struct {
	cell *cell[T]
}

// NewPromise returns a promise and the future observing its resolution,
// sharing one empty cell.
func NewPromise[T any]() (*Promise[T], *Future[T]) {
	c := &cell[T]{}
	return &Promise[T]{cell: c}, &Future[T]{cell: c}
}

// Set resolves the promise with value. It stores the value, wakes any
// blocked waiter, then invokes every subscribed callback exactly once with
// the value, in registration order, synchronously on the calling goroutine.
//
// Resolving a promise twice is a broken single-assignment contract and
// panics.
func (p *Promise[T]) Set(value T) {
	c := p.cell
	c.mu.Lock()
	if c.resolved {
		c.mu.Unlock()
		panic("parallel: promise already resolved")
	}
	c.value = value
	c.resolved = true
	drained := c.callbacks
	c.callbacks = nil
	done := c.done
	c.mu.Unlock()

	if done != nil {
		done.Signal()
	}
	// Callbacks run outside the lock: they routinely resolve further
	// promises and may subscribe back to this cell.
	if drained != nil {
		for drained.Length() > 0 {
			drained.Remove()(value)
		}
	}
}

// Future is a read handle to a cell's eventual value. Obtain one from
// [NewPromise], [NewFuture], a scope via [Async], or a combinator.
type Future[T any] struct {
	cell *cell[T]
}

// NewFuture returns an already-resolved future holding value.
func NewFuture[T any](value T) *Future[T] {
	return &Future[T]{cell: &cell[T]{value: value, resolved: true}}
}

// Subscribe registers fn to run exactly once with the resolved value. If
// the future is already resolved, fn runs synchronously before Subscribe
// returns; otherwise it runs on the goroutine that resolves the promise,
// after callbacks registered earlier.
func (f *Future[T]) Subscribe(fn func(T)) {
	f.cell.subscribe(fn)
}

// Wait blocks until the future is resolved and returns the value. The value
// stays in place, so Wait may be called again. It panics if the value has
// been consumed by [Future.Take].
func (f *Future[T]) Wait() T {
	c := f.cell
	c.block()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.moved {
		panic("parallel: future value already taken")
	}
	return c.value
}

// Take blocks until the future is resolved, then consumes the value: the
// cell transitions to the moved state and any later Wait, Take, Subscribe
// or Share panics. Take is usable exactly once.
func (f *Future[T]) Take() T {
	c := f.cell
	c.block()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.moved {
		panic("parallel: future value already taken")
	}
	c.moved = true
	value := c.value
	var zero T
	c.value = zero
	return value
}

// Share converts the future into a [SharedFuture] for read-many access.
// The conversion declares the value will only ever be borrowed, never
// consumed; T must tolerate concurrent reads. It panics if the value has
// already been taken.
func (f *Future[T]) Share() *SharedFuture[T] {
	c := f.cell
	c.mu.Lock()
	moved := c.moved
	c.mu.Unlock()
	if moved {
		panic("parallel: future value already taken")
	}
	return &SharedFuture[T]{cell: c}
}
