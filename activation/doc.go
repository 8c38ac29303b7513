// Package activation defines the pluggable nonlinearity capability bound to
// every dense matrix and layer in this module.
//
// The activation package provides:
//
//   - Func — the capability interface: Apply, ApplyDerivative, and a stable
//     string tag used at the persistence/interop boundary.
//   - A closed set of concrete members: ReLU, Sigmoid, Tanh, Identity.
//   - Parse — tag → Func resolution for collaborators that store a layer as
//     a plain weight grid plus an activation tag.
//
// The core depends only on Func, never on a specific member; adding a member
// means adding a value here and nothing elsewhere.
package activation
