package parallel

// Async runs fn on a new goroutine within s and returns a future that
// resolves with fn's return value. The join is deferred on the scope
// exactly as [Scope.Spawn] does, so the future is guaranteed to be resolved
// no later than the scope's exit.
func Async[R any](s *Scope, fn func() R) *Future[R] {
	if fn == nil {
		panic("parallel: Async requires a non-nil function")
	}
	p, f := NewPromise[R]()
	s.Spawn(func() {
		p.Set(fn())
	})
	return f
}

// Detach runs fn on a detached goroutine, outside any scope, and returns a
// future resolving with its result.
//
// There is no structured guardian here: nothing joins the goroutine, so fn
// and its result must be self-contained, independently-owned data — never
// references to stack data that may be gone before the goroutine finishes.
// A panic in fn is not captured and crashes the program.
func Detach[R any](fn func() R) *Future[R] {
	if fn == nil {
		panic("parallel: Detach requires a non-nil function")
	}
	p, f := NewPromise[R]()
	go func() {
		p.Set(fn())
	}()
	return f
}
