// Package matrix provides the dense numeric substrate shared by both
// training regimes in this module.
//
// The matrix package provides:
//
//   - Dense — a fixed-shape, row-major float64 grid bound at construction to
//     one activation capability. The same storage is read by the forward and
//     backward passes and mutated in place by the genetic operators; the two
//     operation sets must never run concurrently on one instance.
//   - Algebra primitives: Dot (matrix product), Activate (pointwise map
//     through the bound activation), AddBias, ColumnFromSlice, ToSlice.
//   - Genetic operators: Randomize, Mutate, Crossover (single global alpha
//     arithmetic blend), Clone. All randomness flows through explicit
//     *rand.Rand parameters so a fixed seed reproduces a run exactly.
//   - Interop with gonum (ToGonum/FromGonum) so external persistence and
//     linear-algebra collaborators can consume a weight grid directly.
//
// All public entry points validate fail-fast and return package sentinel
// errors matched via errors.Is; nothing here panics on user input.
// Loop orders are fixed so results are deterministic and reproducible.
package matrix
