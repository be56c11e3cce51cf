package syncx

import (
	"runtime"
	"sync/atomic"
)

const (
	spinUnlocked int32 = iota
	spinLocked
	spinFrozen
)

// Spinlock owns a value of type T and serializes access to it by
// busy-waiting. Create one with [NewSpinlock].
//
// A Spinlock has two modes. In the initial exclusive mode, [Spinlock.Lock]
// hands out one [SpinGuard] at a time. [Spinlock.Share] switches the lock
// into permanent read-only mode: from then on the value can be read
// lock-free by any number of goroutines, and Lock reports it as
// unavailable. The transition is one-way.
//
// Share is only safe when T itself tolerates concurrent reads.
type Spinlock[T any] struct {
	state atomic.Int32
	data  T
}

// NewSpinlock returns a Spinlock owning value.
func NewSpinlock[T any](value T) *Spinlock[T] {
	return &Spinlock[T]{data: value}
}

// Lock busy-waits until exclusive access is acquired and returns a guard.
// It returns ok == false if the value has been made permanently read-only
// via [Spinlock.Share].
func (l *Spinlock[T]) Lock() (g *SpinGuard[T], ok bool) {
	backoff := 1
	for {
		if l.state.CompareAndSwap(spinUnlocked, spinLocked) {
			return &SpinGuard[T]{lock: l}, true
		}
		if l.state.Load() == spinFrozen {
			return nil, false
		}
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
}

// Share transitions the lock to permanent read-only mode and returns a
// pointer to the value. The first call waits for any in-flight guard to be
// released; subsequent calls, and all reads through the returned pointer,
// are lock-free.
func (l *Spinlock[T]) Share() *T {
	backoff := 1
	for {
		if l.state.Load() == spinFrozen ||
			l.state.CompareAndSwap(spinUnlocked, spinFrozen) {
			return &l.data
		}
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
}

// Shared reports whether the value has transitioned to read-only mode.
func (l *Spinlock[T]) Shared() bool {
	return l.state.Load() == spinFrozen
}

// SpinGuard is a scoped handle to a [Spinlock]'s value. The holder has
// exclusive access until [SpinGuard.Unlock].
type SpinGuard[T any] struct {
	lock     *Spinlock[T]
	released bool
}

// Value returns a pointer to the guarded value. It panics if the guard has
// been released.
func (g *SpinGuard[T]) Value() *T {
	if g.released {
		panic("syncx: SpinGuard used after Unlock")
	}
	return &g.lock.data
}

// Unlock releases the guard. It panics on a second call.
func (g *SpinGuard[T]) Unlock() {
	if g.released {
		panic("syncx: SpinGuard unlocked twice")
	}
	g.released = true
	g.lock.state.Store(spinUnlocked)
}
