package syncx

import "sync/atomic"

// Atom is a hot-swappable value cell: loads are wait-free and never observe
// a torn value, stores are serialized among writers only. Readers racing a
// store see either the previous or the new value, never a mix. Create one
// with [NewAtom].
//
// The cell holds values behind an atomic pointer; a store publishes a fresh
// pointer, so earlier loads keep reading the value they obtained. Callers
// must not mutate the pointee of a Load result.
type Atom[T any] struct {
	ptr atomic.Pointer[T]
	wmu Mutex // serializes writers; readers never touch it
}

// NewAtom returns an Atom initially holding value.
func NewAtom[T any](value T) *Atom[T] {
	a := &Atom[T]{}
	a.ptr.Store(&value)
	return a
}

// Load returns the current value. It never blocks.
func (a *Atom[T]) Load() *T {
	return a.ptr.Load()
}

// Store replaces the current value. Concurrent writers are serialized;
// readers are never made to wait.
func (a *Atom[T]) Store(value T) {
	a.StorePtr(&value)
}

// StorePtr replaces the current value with the pointee of p, avoiding a
// copy when the caller already owns a heap value. p must not be nil and the
// pointee must not be mutated afterwards.
func (a *Atom[T]) StorePtr(p *T) {
	if p == nil {
		panic("syncx: Atom.StorePtr requires a non-nil pointer")
	}
	a.wmu.Lock()
	a.ptr.Store(p)
	a.wmu.Unlock()
}

// Swap stores value and returns the value it replaced.
func (a *Atom[T]) Swap(value T) *T {
	a.wmu.Lock()
	old := a.ptr.Swap(&value)
	a.wmu.Unlock()
	return old
}
