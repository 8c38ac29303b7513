package matrix_test

import (
	"fmt"
	"math/rand"

	"github.com/neocoretechs/imgclf/activation"
	"github.com/neocoretechs/imgclf/matrix"
)

// ExampleDense_Dot demonstrates the forward-pass primitive: lift an input
// vector into a column, multiply against a weight grid, activate.
//
// Scenario:
//
//	weights = [[1, 1, -1]]  (2 inputs + bias column, 1 output node)
//	input   = [2, 3, -1]    (bias sentinel appended by the caller)
//
// The pre-activation sum is 2·1 + 3·1 + (-1)·(-1) = 6, and ReLU keeps it.
func ExampleDense_Dot() {
	weights, _ := matrix.FromRows([][]float64{{1, 1, -1}}, activation.ReLU)

	col, _ := weights.ColumnFromSlice([]float64{2, 3, -1})
	pre, _ := weights.Dot(col)
	out := pre.Activate()

	fmt.Println(out.ToSlice())
	// Output: [6]
}

// ExampleDense_CrossoverAlpha demonstrates the arithmetic crossover blend at
// a fixed alpha: every child cell is alpha·a + (1-alpha)·b.
func ExampleDense_CrossoverAlpha() {
	a, _ := matrix.FromRows([][]float64{{1, 1}}, activation.Sigmoid)
	b, _ := matrix.FromRows([][]float64{{0, -1}}, activation.Sigmoid)

	child, _ := a.CrossoverAlpha(b, 0.75)

	fmt.Println(child.ToSlice())
	// Output: [0.75 0.5]
}

// ExampleDense_Mutate demonstrates that a fixed seed makes mutation
// reproducible: two identical genomes mutated with the same seed stay equal.
func ExampleDense_Mutate() {
	a, _ := matrix.New(2, 3, activation.ReLU)
	b := a.Clone()

	a.Mutate(0.5, rand.New(rand.NewSource(42)))
	b.Mutate(0.5, rand.New(rand.NewSource(42)))

	equal := true
	av, bv := a.ToSlice(), b.ToSlice()
	for i := range av {
		if av[i] != bv[i] {
			equal = false
		}
	}
	fmt.Println(equal)
	// Output: true
}
