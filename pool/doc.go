// Package pool provides the explicit execution context for the parallel
// gradient reduction in the layer package.
//
// The pool package provides:
//
//   - Executor — the scheduler handle: Map(n, fn) runs fn for every index in
//     [0, n) and returns only after all units of work have completed.
//   - Serial — the trivial in-order strategy; the reference every parallel
//     strategy must match bit-for-bit.
//   - Fixed — bounded parallelism over an index work queue, with a default
//     width of 48 that is deliberately independent of the core count.
//
// The handle is constructed by the training driver and passed into layer
// operations; there is no package-level pool and no ambient state. A nil
// Executor at a call site means serial execution — callers degrade to the
// serial strategy rather than fail.
package pool
