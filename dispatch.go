package smoke

import (
	"github.com/sourcegraph/conc/pool"
)

// Mode controls how a group or suite dispatches its members.
type Mode int

const (
	// Concurrent runs all members at the same time. It is the default.
	Concurrent Mode = iota
	// Sequential runs members one after another in declaration order.
	Sequential
)

func (m Mode) String() string {
	switch m {
	case Concurrent:
		return "concurrent"
	case Sequential:
		return "sequential"
	default:
		return "unknown"
	}
}

// dispatch runs fn for every item and collects every result. A failing member never stops
// the others. Results come back in completion order when running concurrently.
func dispatch[T, R any](mode Mode, items []T, fn func(T) R) []R {
	if mode == Sequential || len(items) < 2 {
		results := make([]R, 0, len(items))
		for _, item := range items {
			results = append(results, fn(item))
		}
		return results
	}

	p := pool.NewWithResults[R]().WithMaxGoroutines(len(items))
	for _, item := range items {
		p.Go(func() R {
			return fn(item)
		})
	}
	return p.Wait()
}
