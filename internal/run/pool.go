package run

import "sync"

// forEach invokes fn for each index in [0, n) with at most maxWorkers
// in flight. Task scoring is independent per index, so callers write into
// pre-sized slices and ordering falls out of the index. All errors are
// collected rather than short-circuiting: one failed task must not abort
// the rest of a run.
func forEach(maxWorkers, n int, fn func(i int) error) []error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	sem := make(chan struct{}, maxWorkers)

	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := fn(i); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	return errs
}
