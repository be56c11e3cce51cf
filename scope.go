package parallel

import (
	"sync/atomic"
	"time"

	"github.com/eapache/queue/v2"

	"github.com/baxromumarov/parallel/syncx"
)

// Scope is a structured-concurrency nursery: an ordered accumulator of
// deferred actions (typically joins) run exactly once when the scope ends.
// Create one via [Enter]; the Scope is the only way to obtain a spawn
// capability, and its exit blocks until every spawned goroutine has been
// joined. That ordering is what makes it safe for spawned closures to
// capture data living in the stack frame that called Enter: by the time the
// frame can exit, every goroutine that might touch the data has finished.
type Scope struct {
	mu       syncx.Mutex
	deferred *queue.Queue[func()] // registration order; nil once drained
	closed   bool

	cfg config

	// Observability counters.
	totalSpawned atomic.Int64
	activeTasks  atomic.Int64
}

// Enter creates an empty scope, runs body with it, and once body returns
// (or panics) runs every deferred action in registration order before Enter
// itself returns. All actions run even when body panics; the body's panic
// takes priority over any panic raised by a join.
//
// Enter is the primary entry point for structured concurrency:
//
//	sum := parallel.Enter(func(s *parallel.Scope) int {
//	    a := parallel.Async(s, partOne)
//	    b := parallel.Async(s, partTwo)
//	    return a.Wait() + b.Wait()
//	})
func Enter[R any](body func(*Scope) R, opts ...Option) (out R) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Scope{deferred: queue.New[func()](), cfg: cfg}

	defer func() {
		bodyPanic := recover()
		joinPanic := s.finalize()
		if bodyPanic != nil {
			panic(bodyPanic)
		}
		if joinPanic != nil {
			panic(joinPanic)
		}
	}()

	return body(s)
}

// finalize drains the deferred-action list in registration order, running
// every action exactly once. A panicking action does not stop the drain;
// the first captured panic value is returned after all actions have run.
func (s *Scope) finalize() (firstPanic any) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	pending := s.deferred
	s.deferred = nil
	s.mu.Unlock()

	for pending.Length() > 0 {
		fn := pending.Remove()
		func() {
			defer func() {
				if r := recover(); r != nil && firstPanic == nil {
					firstPanic = r
				}
			}()
			fn()
		}()
	}
	return firstPanic
}

// Defer registers fn to run when the scope ends. Actions run in
// registration order, exactly once. Defer panics if called after the scope
// has finalized.
func (s *Scope) Defer(fn func()) {
	if fn == nil {
		panic("parallel: Defer requires a non-nil function")
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		panic("parallel: Defer called after scope exit")
	}
	s.deferred.Add(fn)
	s.mu.Unlock()
}

// Spawn launches fn on a new goroutine immediately and defers its join on
// the scope, so fn is guaranteed to have finished before [Enter] returns.
// fn may therefore capture references to data owned by the frame that
// entered the scope.
//
// A panic inside fn is captured as a [*PanicError] with its stack and
// re-raised at join time; remaining joins still run first. Spawn panics if
// called after the scope has finalized.
func (s *Scope) Spawn(fn func()) {
	if fn == nil {
		panic("parallel: Spawn requires a non-nil function")
	}

	join := syncx.NewEvent()
	var taskPanic *PanicError
	start := time.Now()

	// Register the join before launching: if the scope is already closed
	// this panics and no goroutine leaks.
	s.Defer(func() {
		join.Wait()
		if s.cfg.onJoin != nil {
			s.cfg.onJoin(time.Since(start))
		}
		if taskPanic != nil {
			panic(taskPanic)
		}
	})

	s.totalSpawned.Add(1)
	s.activeTasks.Add(1)
	if s.cfg.onSpawn != nil {
		s.cfg.onSpawn()
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				taskPanic = newPanicError(r)
			}
			s.activeTasks.Add(-1)
			// The Event's internal lock publishes taskPanic to the joiner.
			join.Signal()
		}()
		fn()
	}()
}

// ActiveTasks returns the number of spawned goroutines currently executing
// within the scope.
func (s *Scope) ActiveTasks() int64 {
	return s.activeTasks.Load()
}

// TotalSpawned returns the total number of goroutines spawned within the
// scope, including those that have already completed.
func (s *Scope) TotalSpawned() int64 {
	return s.totalSpawned.Load()
}
