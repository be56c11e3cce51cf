package syncx

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	a, b int
}

func TestAtomLoadStore(t *testing.T) {
	a := NewAtom(snapshot{a: 1, b: 1})
	require.Equal(t, snapshot{a: 1, b: 1}, *a.Load())

	a.Store(snapshot{a: 2, b: 2})
	assert.Equal(t, snapshot{a: 2, b: 2}, *a.Load())
}

// TestAtomNeverTorn cycles one writer through M distinct values while N
// readers load concurrently; every read must observe one of the values in
// full, never a mix.
func TestAtomNeverTorn(t *testing.T) {
	const versions = 100
	const readers = 8

	a := NewAtom(snapshot{a: 0, b: 0})

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for __i := 0; __i < readers; __i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				s := a.Load()
				if s.a != s.b {
					t.Errorf("torn read: %+v", *s)
					return
				}
			}
		}()
	}

	for v := 1; v <= versions; v++ {
		a.Store(snapshot{a: v, b: v})
	}
	close(stop)
	wg.Wait()
}

func TestAtomSwapReturnsPrevious(t *testing.T) {
	a := NewAtom("v1")
	old := a.Swap("v2")
	require.Equal(t, "v1", *old)
	assert.Equal(t, "v2", *a.Load())
}

func TestAtomStorePtr(t *testing.T) {
	a := NewAtom(0)
	v := 9
	a.StorePtr(&v)
	assert.Same(t, &v, a.Load())

	assert.Panics(t, func() { a.StorePtr(nil) })
}

func TestAtomSerializedWriters(t *testing.T) {
	a := NewAtom(0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				a.Store(i*1000 + j)
			}
		}()
	}
	wg.Wait()

	// The final value is whatever writer went last; it must be one of the
	// values actually written, intact.
	final := *a.Load()
	writer, iter := final/1000, final%1000
	assert.True(t, writer >= 0 && writer < 8 && iter < 100,
		fmt.Sprintf("unexpected final value %d", final))
}
