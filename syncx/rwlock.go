package syncx

import (
	"runtime"
	"sync/atomic"
)

// RWSpinlock owns a value of type T and allows either any number of
// concurrent readers or a single writer, acquired by busy-waiting.
// Create one with [NewRWSpinlock].
//
// The lock keeps an independent reader count and writer flag: a writer
// holds exclusivity only once the reader count has drained to zero, and
// readers only proceed while no writer holds the flag.
type RWSpinlock[T any] struct {
	readers atomic.Int32
	writing atomic.Int32
	data    T
}

// NewRWSpinlock returns an RWSpinlock owning value.
func NewRWSpinlock[T any](value T) *RWSpinlock[T] {
	return &RWSpinlock[T]{data: value}
}

// RLock acquires shared read access, spinning while a writer holds the
// lock. Readers may overlap with each other.
func (l *RWSpinlock[T]) RLock() *RGuard[T] {
	backoff := 1
	for {
		l.readers.Add(1)
		if l.writing.Load() == 0 {
			return &RGuard[T]{lock: l}
		}
		// A writer is in; back out and retry so it can drain us.
		l.readers.Add(-1)
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
}

// WLock acquires exclusive write access: it spins for the writer flag,
// then spins until the reader count reaches zero.
func (l *RWSpinlock[T]) WLock() *WGuard[T] {
	backoff := 1
	for !l.writing.CompareAndSwap(0, 1) {
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
	backoff = 1
	for l.readers.Load() != 0 {
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
	return &WGuard[T]{lock: l}
}

// RGuard is a scoped shared-read handle to an [RWSpinlock]'s value.
type RGuard[T any] struct {
	lock     *RWSpinlock[T]
	released bool
}

// Value returns a pointer to the guarded value for reading. Mutating
// through it while other readers are active is a data race.
func (g *RGuard[T]) Value() *T {
	if g.released {
		panic("syncx: RGuard used after Unlock")
	}
	return &g.lock.data
}

// Unlock releases the read guard. It panics on a second call.
func (g *RGuard[T]) Unlock() {
	if g.released {
		panic("syncx: RGuard unlocked twice")
	}
	g.released = true
	g.lock.readers.Add(-1)
}

// WGuard is a scoped exclusive-write handle to an [RWSpinlock]'s value.
type WGuard[T any] struct {
	lock     *RWSpinlock[T]
	released bool
}

// Value returns a pointer to the guarded value.
func (g *WGuard[T]) Value() *T {
	if g.released {
		panic("syncx: WGuard used after Unlock")
	}
	return &g.lock.data
}

// Unlock releases the write guard. It panics on a second call.
func (g *WGuard[T]) Unlock() {
	if g.released {
		panic("syncx: WGuard unlocked twice")
	}
	g.released = true
	g.lock.writing.Store(0)
}
