package syncx

import "sync"

// Event is a sticky, resettable boolean signal.
//
// Wait suspends the caller until Signal has been called at least once since
// creation or the last Reset. One Signal releases every waiter, current and
// future. Create one with [NewEvent].
type Event struct {
	mu       sync.Mutex
	cond     *sync.Cond
	signaled bool
}

// NewEvent returns a new Event in the unsignaled state.
func NewEvent() *Event {
	e := &Event{}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// Wait blocks the calling goroutine (suspending, not busy-waiting) until
// the event is signaled. It returns immediately if it already is.
func (e *Event) Wait() {
	e.mu.Lock()
	for !e.signaled {
		e.cond.Wait()
	}
	e.mu.Unlock()
}

// Signal sets the event and wakes every waiter. The event stays signaled
// until Reset, so later Wait calls return immediately.
func (e *Event) Signal() {
	e.mu.Lock()
	e.signaled = true
	e.cond.Broadcast()
	e.mu.Unlock()
}

// Reset clears the signal. The caller is responsible for ensuring no
// goroutine is waiting for the old signal when a new wait cycle begins;
// Reset does not synchronize against that race.
func (e *Event) Reset() {
	e.mu.Lock()
	e.signaled = false
	e.mu.Unlock()
}

// Signaled reports whether the event is currently signaled.
func (e *Event) Signaled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.signaled
}
