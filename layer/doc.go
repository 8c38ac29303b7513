// Package layer implements one fully connected neural-network layer over the
// activation-bound dense matrix substrate.
//
// The layer package provides:
//
//   - Layer — owns one weight matrix organized as "rows = output nodes,
//     columns = input nodes + 1 bias column", plus the two transient buffers
//     of the training cycle (lastInput with its fixed bias sentinel, and
//     lastOutput).
//   - ComputeOutput — the forward pass through the matrix dot/activate
//     primitives.
//   - PropagateError — the backward pass: a parallel, join-before-continue
//     reduction over the downstream error indices followed by an in-place
//     scaled outer-product weight update. The reduction is bit-identical to
//     its serial execution regardless of the executor supplied.
//   - Config/New — validated construction from {activation, input count,
//     node count, weight initializer}; incomplete or non-positive
//     configurations are rejected with sentinel errors.
//
// A Layer is bound to one position in a network topology and is not
// reentrant: one full forward-then-backward cycle completes before the next
// begins, and the genetic operators on its weight matrix assume the same
// exclusivity.
package layer
