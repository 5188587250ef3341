package sr

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressFunc receives the number of finished patches and the total.
// The sampler never calls it concurrently.
type ProgressFunc func(done, total int)

// PrintProgress returns a ProgressFunc that writes a line to w every
// `every` patches and once more when the run completes.
func PrintProgress(w io.Writer, every int) ProgressFunc {
	var start time.Time
	return func(done, total int) {
		if done == 1 || start.IsZero() {
			start = time.Now()
		}
		if done == total || (every > 0 && done%every == 0) {
			fmt.Fprintf(w, "Patches %d/%d | Time: %v\n", done, total, time.Since(start))
		}
	}
}

// progress serializes callbacks coming from the extraction workers.
type progress struct {
	mu    sync.Mutex
	done  int
	total int
	fn    ProgressFunc
}

func newProgress(fn ProgressFunc, total int) *progress {
	if fn == nil {
		return nil
	}
	return &progress{fn: fn, total: total}
}

func (p *progress) tick() {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.done++
	p.fn(p.done, p.total)
	p.mu.Unlock()
}
