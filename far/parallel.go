package far

import (
	"sync"
	"sync/atomic"
)

// runParallel calls fn(i) for every i in [0, n) on at most workers
// goroutines and waits for all calls to return. Workers pull the next index
// from a shared counter, so slow items do not stall a fixed partition.
// fn must be safe for concurrent use for distinct i.
func runParallel(workers, n int, fn func(i int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
