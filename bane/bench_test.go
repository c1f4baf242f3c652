package bane_test

import (
	"testing"

	"github.com/katalvlaran/anembed/bane"
	"github.com/katalvlaran/anembed/core"
	"github.com/katalvlaran/anembed/dataset"
	"github.com/katalvlaran/anembed/proximity"
	"gonum.org/v1/gonum/mat"
)

// benchmarkEmbed runs the full engine on a ring of n nodes with f binary
// features and d output dimensions. It resets the timer after fixture
// construction and fails on unexpected errors.
func benchmarkEmbed(b *testing.B, n, f, d int) {
	edges := make([][2]int, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]int{i, (i + 1) % n}
	}
	g, err := dataset.NewGraph(n, edges)
	if err != nil {
		b.Fatalf("graph: %v", err)
	}

	x := mat.NewDense(n, f, nil)
	for i := 0; i < n; i++ {
		x.Set(i, i%f, 1)
		x.Set(i, (i*7)%f, 1)
	}

	cfg := core.DefaultConfig()
	cfg.Dimensions = d
	cfg.Order = 2
	cfg.BinarizationRounds = 3
	cfg.ApproximationRounds = 3

	p, err := proximity.Build(g, x, &cfg)
	if err != nil {
		b.Fatalf("proximity: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bane.Embed(p, &cfg); err != nil {
			b.Fatalf("embed failed: %v", err)
		}
	}
}

// BenchmarkEmbed_Small benchmarks a 64-node ring with 16 features.
func BenchmarkEmbed_Small(b *testing.B) {
	benchmarkEmbed(b, 64, 16, 8)
}

// BenchmarkEmbed_Medium benchmarks a 512-node ring with 64 features.
func BenchmarkEmbed_Medium(b *testing.B) {
	benchmarkEmbed(b, 512, 64, 16)
}
