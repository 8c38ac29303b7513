package pool

import "sync"

// DefaultWidth is the default bound on concurrent units of work.
// It is intentionally independent of the local core count: the reduction it
// serves is short and memory-bound, and a stable width keeps runs comparable
// across machines.
const DefaultWidth = 48

// Executor runs fn for every index in [0, n) and returns only after every
// unit of work has completed. Implementations may run units in any order or
// concurrently; each index is visited exactly once. fn must treat its
// captured state as read-only except for the slot it owns at its index.
type Executor interface {
	Map(n int, fn func(i int))
}

// Serial executes units of work in index order on the calling goroutine.
// It is the reference strategy: any Executor must produce results identical
// to Serial for an index-owned accumulation.
type Serial struct{}

// Map runs fn(0), fn(1), …, fn(n-1) in order.
func (Serial) Map(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}

// Fixed is a bounded-parallelism executor. Each Map call drains an index
// queue with at most Width workers and joins them before returning, so the
// caller observes the same completion barrier as Serial.
//
// Fixed is stateless between calls: there is nothing to close or leak, and
// a zero value is usable (it resolves to DefaultWidth).
type Fixed struct {
	// Width bounds the number of concurrent workers per Map call.
	// Zero or negative resolves to DefaultWidth.
	Width int
}

// NewFixed returns a Fixed executor with the given width.
// A non-positive width resolves to DefaultWidth.
func NewFixed(width int) *Fixed {
	if width <= 0 {
		width = DefaultWidth
	}

	return &Fixed{Width: width}
}

// Map runs fn over [0, n) with at most min(Width, n) concurrent workers and
// blocks until all of them finish. Small inputs (n < 2) and width 1 take
// the serial path directly; this is the documented degradation strategy, not
// an error condition.
func (p *Fixed) Map(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	width := p.Width
	if width <= 0 {
		width = DefaultWidth
	}
	if width > n {
		width = n
	}
	if n < 2 || width == 1 {
		Serial{}.Map(n, fn)
		return
	}

	// Index queue: workers pull the next free index until the queue drains.
	work := make(chan int, n)
	for i := 0; i < n; i++ {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	wg.Add(width)
	for w := 0; w < width; w++ {
		go func() {
			defer wg.Done()
			for i := range work {
				fn(i)
			}
		}()
	}
	wg.Wait()
}

// orDefault resolves a possibly-nil Executor to a usable strategy.
// Shared by call sites that accept an optional handle.
func orDefault(exec Executor) Executor {
	if exec == nil {
		return Serial{}
	}

	return exec
}

// Run executes fn over [0, n) on exec, falling back to Serial when exec is
// nil. This is the call-site helper the layer and network packages use so a
// missing handle degrades to serial execution instead of failing.
func Run(exec Executor, n int, fn func(i int)) {
	orDefault(exec).Map(n, fn)
}
