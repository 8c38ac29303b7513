// Package network assembles fully connected layers into a trainable stack
// and exposes both training regimes over it.
//
// The network package provides:
//
//   - Network — an ordered chain of layers built from a topology Config
//     (inputs, hidden nodes, hidden layers, outputs), as used by the image
//     classification drivers.
//   - FeedForward and Train — the gradient regime: squared-error loss, the
//     error chained backward layer by layer through PropagateError.
//   - The genome view — Clone, Randomize, Mutate and Crossover applied
//     per-layer to the same weight matrices the gradient regime trains.
//   - Evolve — an elitist population search over network genomes driven by
//     a caller-supplied fitness function.
//   - Softmax, Classify and Accuracy — the reporting boundary that turns
//     output vectors into category indices.
//
// Backward passes across the stack are naturally serialized: layer i
// consumes layer i+1's error output, so a single executor handle can be
// shared by every layer of one network.
package network
