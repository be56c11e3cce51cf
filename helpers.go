package parallel

// ForEach runs fn once per item, each on its own goroutine within s. It
// returns as soon as all items have been spawned; the scope's exit joins
// them.
//
//	parallel.Enter(func(s *parallel.Scope) struct{} {
//	    parallel.ForEach(s, urls, warmCache)
//	    return struct{}{}
//	})
func ForEach[T any](s *Scope, items []T, fn func(T)) {
	if fn == nil {
		panic("parallel: ForEach requires a non-nil function")
	}
	for _, item := range items {
		item := item
		s.Spawn(func() {
			fn(item)
		})
	}
}

// MapSlice transforms every item concurrently within s and returns the
// results in input order. It blocks until every transform has finished.
//
//	prices := parallel.MapSlice(s, products, fetchPrice)
func MapSlice[T, R any](s *Scope, items []T, fn func(T) R) []R {
	if fn == nil {
		panic("parallel: MapSlice requires a non-nil function")
	}
	results := make([]R, len(items))
	done := make([]*Future[struct{}], len(items))
	for i, item := range items {
		i, item := i, item
		done[i] = Async(s, func() struct{} {
			results[i] = fn(item) // each task writes a unique index
			return struct{}{}
		})
	}
	WaitAll(done...).Wait()
	return results
}
