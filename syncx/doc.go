// Package syncx provides the low-level synchronization primitives the
// parallel runtime is built on: spin locks, a blocking event signal, and a
// hot-swappable value cell.
//
// # Spin locks
//
// [Mutex], [Spinlock] and [RWSpinlock] acquire by busy-waiting instead of
// parking the goroutine. They are intended for critical sections that only
// move a few pointers around; holding one across anything slower than that
// (I/O, channel operations, another lock) wastes CPU on every contender.
// All blocking operations exposed by the parallel package suspend on a
// condition variable instead, so callers never busy-wait indefinitely.
//
// [Spinlock] owns a value of type T and hands out access through a scoped
// [SpinGuard]. Its [Spinlock.Share] method is a one-way transition to
// permanent read-only mode: after the first Share, reads are lock-free and
// [Spinlock.Lock] reports the value as unavailable. This is how a resolved
// future's value is read by unlimited concurrent subscribers without
// per-read locking cost.
//
// [RWSpinlock] keeps an independent reader count and writer flag: readers
// may overlap with each other but never with a writer.
//
// # Event
//
// [Event] is a sticky, resettable boolean signal. [Event.Wait] suspends the
// caller until [Event.Signal] has been called; one Signal releases every
// current and future waiter until [Event.Reset].
//
// # Atom
//
// [Atom] is a value holder allowing wait-free, torn-read-free [Atom.Load]
// concurrent with serialized [Atom.Store] — the property a hot-reloadable
// shared configuration cell must guarantee.
package syncx
