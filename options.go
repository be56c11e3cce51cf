package parallel

import "time"

type config struct {
	onSpawn func()
	onJoin  func(time.Duration)
}

// Option configures a [Scope] created by [Enter].
type Option func(*config)

func defaultConfig() config {
	return config{}
}

// WithOnSpawn registers a hook invoked on the spawning goroutine each time
// the scope launches a task. It panics if fn is nil.
func WithOnSpawn(fn func()) Option {
	if fn == nil {
		panic("parallel: WithOnSpawn requires a non-nil hook")
	}
	return func(c *config) {
		c.onSpawn = fn
	}
}

// WithOnJoin registers a hook invoked on the joining goroutine each time a
// spawned task is joined, with the task's wall-clock duration from spawn to
// join. It panics if fn is nil.
func WithOnJoin(fn func(time.Duration)) Option {
	if fn == nil {
		panic("parallel: WithOnJoin requires a non-nil hook")
	}
	return func(c *config) {
		c.onJoin = fn
	}
}
