// Package imgclf is a dense neural-network layer engine that trains the
// same weight representation two ways: gradient backpropagation and
// evolutionary (genetic) weight search.
//
// 🚀 What is imgclf?
//
//	A small, deterministic library built around three tightly coupled pieces:
//		• matrix/     — activation-bound dense matrix: dot, activate, randomize,
//		                mutate, arithmetic crossover, clone
//		• layer/      — fully connected layer: forward pass, parallel gradient
//		                reduction, in-place weight update, validated construction
//		• pool/       — explicit bounded execution context for the reduction
//
// ✨ Why imgclf?
//
//   - Deterministic by construction – explicit seeded rngs, fixed loop orders,
//     parallel reduction bit-identical to the serial one
//   - Dual interpretation of one storage – the weight matrix is both the
//     trainable parameter set and the evolvable genome
//   - No ambient state – the worker pool is a handle you build and pass in
//
// Supporting packages turn the core into an image classifier:
//
//	activation/ — pluggable nonlinearity capabilities (ReLU, Sigmoid, …)
//	network/    — layer stacks: feed-forward, backprop training, evolution
//	dataset/    — labeled image directories → normalized pixel vectors
//	cmd/imgclf  — train / evolve / infer driver
//
// Quick sketch:
//
//	input ──► layer₁ ──► … ──► layerₙ ──► output
//	              ▲ backprop (learning rate)      gradient regime
//	  genome: mutate / crossover / randomize      evolutionary regime
//
//	go get github.com/neocoretechs/imgclf
package imgclf
