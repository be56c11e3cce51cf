package parallel

// SharedFuture is the read-many variant of [Future]: the value can be
// borrowed repeatedly via [SharedFuture.Get] but never consumed. Obtain one
// with [Future.Share].
type SharedFuture[T any] struct {
	cell *cell[T]
}

// Get blocks until the value is resolved and returns it. Get may be called
// any number of times from any number of goroutines.
func (f *SharedFuture[T]) Get() T {
	c := f.cell
	c.block()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.moved {
		panic("parallel: future value already taken")
	}
	return c.value
}

// Subscribe registers fn to run exactly once with the resolved value, with
// the same timing guarantees as [Future.Subscribe].
func (f *SharedFuture[T]) Subscribe(fn func(T)) {
	f.cell.subscribe(fn)
}
