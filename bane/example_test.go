package bane_test

import (
	"fmt"

	"github.com/katalvlaran/anembed/bane"
	"github.com/katalvlaran/anembed/core"
	"github.com/katalvlaran/anembed/dataset"
	"github.com/katalvlaran/anembed/proximity"
	"gonum.org/v1/gonum/mat"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEmbed
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Embed the 4-node path 0-1-2-3 with sparse binary attributes
//	{0:[0], 1:[1], 2:[0,1], 3:[]} into 2-dimensional ±1 codes.
//
// Options:
//   - Order = 1                (one WL propagation hop)
//   - Dimensions = 2           (two bits per node)
//   - BinarizationRounds = 3   (CCD sweeps per outer round)
//   - ApproximationRounds = 2  (ridge/CCD alternations)
//
// Use case:
//
//	Compact hash-like node signatures for similarity search.
func ExampleEmbed() {
	g, err := dataset.NewGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	x := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
		0, 0,
	})

	cfg := core.DefaultConfig()
	cfg.Dimensions = 2
	cfg.Order = 1
	cfg.BinarizationRounds = 3
	cfg.ApproximationRounds = 2

	p, err := proximity.Build(g, x, &cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	emb, err := bane.Embed(p, &cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	rows, cols := emb.Dims()
	binary := true
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := emb.At(i, j); v != 1 && v != -1 {
				binary = false
			}
		}
	}
	fmt.Printf("shape=%dx%d\nbinary=%v\n", rows, cols, binary)
	// Output:
	// shape=4x2
	// binary=true
}
