package parallel_test

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baxromumarov/parallel"
)

func TestMap(t *testing.T) {
	p, f := parallel.NewPromise[int]()
	doubled := parallel.Map(f, func(v int) int { return v * 2 })

	p.Set(21)
	assert.Equal(t, 42, doubled.Wait())
}

func TestMapOnResolvedFuture(t *testing.T) {
	f := parallel.NewFuture("go")
	shout := parallel.Map(f, func(s string) string { return s + "!" })
	assert.Equal(t, "go!", shout.Wait())
}

func TestThenFlattens(t *testing.T) {
	p, f := parallel.NewPromise[int]()

	inner, innerFuture := parallel.NewPromise[string]()
	chained := parallel.Then(f, func(v int) *parallel.Future[string] {
		return innerFuture
	})

	p.Set(1)
	// The outer resolution alone is not enough; Then resolves with the
	// inner future's eventual value.
	resolved := make(chan string)
	chained.Subscribe(func(s string) { resolved <- s })

	select {
	case <-resolved:
		t.Fatal("Then resolved before the inner future")
	case <-time.After(10 * time.Millisecond):
	}

	go inner.Set("inner")
	select {
	case got := <-resolved:
		assert.Equal(t, "inner", got)
	case <-time.After(time.Second):
		t.Fatal("Then never resolved")
	}
}

func TestApply(t *testing.T) {
	p, f := parallel.NewPromise[int]()
	sf := f.Share()

	squared := parallel.Apply(sf, func(v int) int { return v * v })
	p.Set(6)

	assert.Equal(t, 36, squared.Wait())
	assert.Equal(t, 6, sf.Get(), "Apply must not consume the shared value")
}

func TestApplyThen(t *testing.T) {
	p, f := parallel.NewPromise[int]()
	sf := f.Share()

	chained := parallel.ApplyThen(sf, func(v int) *parallel.Future[int] {
		return parallel.NewFuture(v + 1)
	})
	p.Set(1)
	assert.Equal(t, 2, chained.Wait())
}

func TestWaitAllAnyCompletionOrder(t *testing.T) {
	const n = 16

	promises := make([]*parallel.Promise[int], n)
	futures := make([]*parallel.Future[int], n)
	for i := range futures {
		promises[i], futures[i] = parallel.NewPromise[int]()
	}

	all := parallel.WaitAll(futures...)

	var resolved atomic.Bool
	all.Subscribe(func(struct{}) { resolved.Store(true) })

	// Resolve in random order; the aggregate fires only after the last.
	order := rand.Perm(n)
	for i, idx := range order {
		require.False(t, resolved.Load(), "aggregate fired after %d of %d inputs", i, n)
		promises[idx].Set(idx)
	}
	assert.True(t, resolved.Load())
}

func TestWaitAllEmpty(t *testing.T) {
	done := make(chan struct{})
	go func() {
		parallel.WaitAll[int]().Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitAll with no inputs must resolve immediately")
	}
}

func TestWaitAllFiresExactlyOnce(t *testing.T) {
	var fired atomic.Int32

	promises := make([]*parallel.Promise[int], 8)
	futures := make([]*parallel.Future[int], 8)
	for i := range futures {
		promises[i], futures[i] = parallel.NewPromise[int]()
	}

	parallel.WaitAll(futures...).Subscribe(func(struct{}) { fired.Add(1) })

	var wg sync.WaitGroup
	for i, p := range promises {
		i, p := i, p
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Set(i)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), fired.Load())
}

func TestWaitAnyFirstWins(t *testing.T) {
	p1, f1 := parallel.NewPromise[int]()
	p2, f2 := parallel.NewPromise[int]()
	p3, f3 := parallel.NewPromise[int]()

	any := parallel.WaitAny(f1, f2, f3)

	var fired atomic.Int32
	any.Subscribe(func(struct{}) { fired.Add(1) })

	p2.Set(2)
	assert.Equal(t, int32(1), fired.Load(), "first resolution wins")

	// Later resolutions are no-ops on the aggregate...
	p1.Set(1)
	p3.Set(3)
	assert.Equal(t, int32(1), fired.Load())

	// ...but the losers' own futures stay observable.
	assert.Equal(t, 1, f1.Wait())
	assert.Equal(t, 3, f3.Wait())
}

func TestWaitAnyConcurrentRace(t *testing.T) {
	const n = 16

	promises := make([]*parallel.Promise[int], n)
	futures := make([]*parallel.Future[int], n)
	for i := range futures {
		promises[i], futures[i] = parallel.NewPromise[int]()
	}

	var fired atomic.Int32
	parallel.WaitAny(futures...).Subscribe(func(struct{}) { fired.Add(1) })

	var wg sync.WaitGroup
	for i, p := range promises {
		i, p := i, p
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Set(i)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), fired.Load(), "exactly one winner")
}

func TestWaitAnyEmpty(t *testing.T) {
	done := make(chan struct{})
	go func() {
		parallel.WaitAny[int]().Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitAny with no inputs must resolve immediately")
	}
}

func TestNilFunctionPanics(t *testing.T) {
	_, f := parallel.NewPromise[int]()
	sf := parallel.NewFuture(1).Share()

	assert.Panics(t, func() { parallel.Map[int, int](f, nil) })
	assert.Panics(t, func() { parallel.Then[int, int](f, nil) })
	assert.Panics(t, func() { parallel.Apply[int, int](sf, nil) })
	assert.Panics(t, func() { parallel.ApplyThen[int, int](sf, nil) })
	assert.Panics(t, func() { f.Subscribe(nil) })
}
