package syncx

import (
	"runtime"
	"sync/atomic"
)

// maxBackoff caps the number of Gosched calls between acquisition attempts.
const maxBackoff = 16

// Mutex is a spin lock implementing [sync.Locker]. The zero value is an
// unlocked mutex.
//
// Lock busy-waits with exponential Gosched backoff instead of parking the
// goroutine, so it must only guard critical sections that finish in
// microseconds. Mutex is not reentrant.
type Mutex struct {
	n atomic.Int32
}

// Lock acquires the mutex, spinning until it is free.
func (m *Mutex) Lock() {
	backoff := 1
	for !m.n.CompareAndSwap(0, 1) {
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
}

// TryLock acquires the mutex without spinning. It returns true on success.
func (m *Mutex) TryLock() bool {
	return m.n.CompareAndSwap(0, 1)
}

// Unlock releases the mutex. It panics if the mutex is not locked.
func (m *Mutex) Unlock() {
	if !m.n.CompareAndSwap(1, 0) {
		panic("syncx: Unlock of unlocked Mutex")
	}
}
