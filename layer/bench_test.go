package layer_test

import (
	"math/rand"
	"testing"

	"github.com/neocoretechs/imgclf/activation"
	"github.com/neocoretechs/imgclf/layer"
	"github.com/neocoretechs/imgclf/pool"
)

// benchmarkPropagate measures one forward+backward cycle at the given layer
// widths on the given executor.
func benchmarkPropagate(b *testing.B, inputs, nodes int, exec pool.Executor) {
	l, err := layer.New(layer.Config{
		Activation: activation.Sigmoid,
		NumInputs:  inputs,
		NumNodes:   nodes,
		Rand:       rand.New(rand.NewSource(1)),
	})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	rng := rand.New(rand.NewSource(2))
	in := make([]float64, inputs)
	errv := make([]float64, nodes)
	for i := range in {
		in[i] = 2*rng.Float64() - 1
	}
	for j := range errv {
		errv[j] = 2*rng.Float64() - 1
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = l.ComputeOutput(in); err != nil {
			b.Fatalf("ComputeOutput failed: %v", err)
		}
		if _, err = l.PropagateError(errv, 0.01, exec); err != nil {
			b.Fatalf("PropagateError failed: %v", err)
		}
	}
}

func BenchmarkPropagateSerial(b *testing.B) {
	benchmarkPropagate(b, 1024, 300, pool.Serial{})
}

func BenchmarkPropagateFixed48(b *testing.B) {
	benchmarkPropagate(b, 1024, 300, pool.NewFixed(48))
}

func BenchmarkPropagateSmallSerial(b *testing.B) {
	benchmarkPropagate(b, 64, 32, pool.Serial{})
}
