// Package parallel is a user-space concurrency toolkit: a single-assignment
// future/promise runtime, structured-concurrency scoping for goroutine
// lifetimes, and (in the syncx subpackage) the primitive building blocks
// the runtime is built on.
//
// # Futures and promises
//
// [NewPromise] returns a linked promise/future pair sharing one write-once
// cell. [Promise.Set] resolves it exactly once; a second Set panics, never
// silently overwrites. [Future.Wait] blocks until resolution and returns
// the value; [Future.Take] consumes it (usable once); [Future.Subscribe]
// registers a callback that fires exactly once with the value — inline if
// already resolved, otherwise on the resolving goroutine in registration
// order. [Future.Share] converts a never-consumed future into a
// [SharedFuture] whose [SharedFuture.Get] borrows the value repeatedly.
//
//	p, f := parallel.NewPromise[int]()
//	go p.Set(5)
//	fmt.Println(f.Wait()) // 5
//
// # Combinators
//
// [Map] and [Then] derive new futures ([Then] flattens one level of future
// nesting, the asynchronous-chaining primitive); [Apply] and [ApplyThen]
// are the shared-future variants. [WaitAll] resolves once every input has,
// via a last-one-out counter; [WaitAny] resolves on the first input, a
// single-winner race in which losers are intentionally discarded.
//
// # Structured concurrency
//
// [Enter] runs a body with a [Scope] and, when the body returns or panics,
// runs every deferred action in registration order before returning.
// [Scope.Spawn] launches a goroutine and defers its join, so no spawned
// goroutine outlives its scope and spawned closures may safely capture the
// entering frame's data. [Async] is Spawn plus a promise; [Detach] is the
// unscoped variant restricted to self-contained data.
//
//	x := 5
//	parallel.Enter(func(s *parallel.Scope) struct{} {
//	    s.Spawn(func() { x += 5 })
//	    return struct{}{}
//	})
//	// x == 10: the spawned goroutine was joined before Enter returned.
//
// There is no cancellation: once spawned, work runs to completion, and a
// scope's exit blocks until it has. There is no task queue or thread pool —
// every Spawn is a fresh goroutine.
//
// # Helpers
//
//   - [ForEach]: run a function over every slice element concurrently.
//   - [MapSlice]: transform every element concurrently, preserving order.
//
// # Panic handling
//
// A panic in spawned work is captured as a [*PanicError] with its stack and
// re-raised at join time; the scope's remaining joins still run first.
// Usage-protocol violations — resolving a promise twice, touching a value
// after [Future.Take] — panic immediately: they indicate a broken
// single-assignment contract, not a recoverable condition.
//
// # Observability
//
// [Scope.ActiveTasks] and [Scope.TotalSpawned] expose counters; the
// [WithOnSpawn] and [WithOnJoin] options register per-task lifecycle hooks.
//
// # Primitives
//
// The [github.com/baxromumarov/parallel/syncx] subpackage provides the
// spin-based locks (Mutex, Spinlock, RWSpinlock), the blocking Event
// signal, and the hot-swappable Atom cell that the runtime is built on.
package parallel
