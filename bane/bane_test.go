package bane_test

import (
	"testing"

	"github.com/katalvlaran/anembed/bane"
	"github.com/katalvlaran/anembed/core"
	"github.com/katalvlaran/anembed/dataset"
	"github.com/katalvlaran/anembed/proximity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// scenarioConfig is the small reference setup used throughout: a 4-node
// path, 2 dimensions, 3 CCD sweeps per round, 2 approximation rounds.
func scenarioConfig() core.Config {
	cfg := core.DefaultConfig()
	cfg.Dimensions = 2
	cfg.Order = 1
	cfg.BinarizationRounds = 3
	cfg.ApproximationRounds = 2
	return cfg
}

// scenarioProximity builds the fused proximity matrix for the path graph
// 0-1-2-3 with features {0:[0], 1:[1], 2:[0,1], 3:[]}.
func scenarioProximity(t *testing.T, cfg *core.Config) *mat.Dense {
	t.Helper()

	g, err := dataset.NewGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	x := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
		0, 0,
	})

	p, err := proximity.Build(g, x, cfg)
	require.NoError(t, err)
	return p
}

// assertBinary fails unless every entry of m is exactly −1 or +1.
func assertBinary(t *testing.T, m *mat.Dense) {
	t.Helper()
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			assert.True(t, v == 1 || v == -1, "entry (%d,%d) = %v is not ±1", i, j, v)
		}
	}
}

// TestEmbed_ShapeAndBinaryConstraint runs the reference scenario and
// checks the output is a 4×2 matrix of exact ±1 entries.
func TestEmbed_ShapeAndBinaryConstraint(t *testing.T) {
	cfg := scenarioConfig()
	p := scenarioProximity(t, &cfg)

	emb, err := bane.Embed(p, &cfg)
	require.NoError(t, err)

	r, c := emb.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 2, c)
	assertBinary(t, emb)
}

// TestEmbed_Deterministic verifies two runs with the same seed produce
// identical codes, and that the isolated-feature node still gets a row.
func TestEmbed_Deterministic(t *testing.T) {
	cfg := scenarioConfig()
	p := scenarioProximity(t, &cfg)

	e1, err := bane.Embed(p, &cfg)
	require.NoError(t, err)
	e2, err := bane.Embed(p, &cfg)
	require.NoError(t, err)

	assert.True(t, mat.Equal(e1, e2), "same seed and inputs must reproduce the embedding exactly")
}

// TestFit_ObjectiveNonWorsening tracks the reconstruction objective over
// every CCD sweep and requires a non-increasing sequence.
func TestFit_ObjectiveNonWorsening(t *testing.T) {
	cfg := scenarioConfig()
	cfg.BinarizationRounds = 5
	cfg.ApproximationRounds = 4
	p := scenarioProximity(t, &cfg)

	res, err := bane.Fit(p, &cfg)
	require.NoError(t, err)
	require.Len(t, res.Objectives, cfg.BinarizationRounds*cfg.ApproximationRounds)

	const slack = 1e-9
	for i := 1; i < len(res.Objectives); i++ {
		assert.LessOrEqual(t, res.Objectives[i], res.Objectives[i-1]+slack,
			"objective rose between sweeps %d and %d", i-1, i)
	}
}

// TestFit_RoundBudgetIsAuthoritative verifies the loop always runs the
// configured budget — one objective sample per sweep, no early exit.
func TestFit_RoundBudgetIsAuthoritative(t *testing.T) {
	cfg := scenarioConfig()
	cfg.BinarizationRounds = 7
	cfg.ApproximationRounds = 3
	p := scenarioProximity(t, &cfg)

	res, err := bane.Fit(p, &cfg)
	require.NoError(t, err)
	assert.Len(t, res.Objectives, 21, "7 sweeps × 3 rounds, no convergence shortcut")
}

// TestEmbed_DimensionsExceedProximity rejects d larger than the fused
// matrix supports.
func TestEmbed_DimensionsExceedProximity(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Dimensions = 3 // proximity is 4×2, rank at most 2
	p := scenarioProximity(t, &cfg)

	_, err := bane.Embed(p, &cfg)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}

// TestEmbed_SeedSweepSeparatesNodes is the statistical check: across
// many seeds, node 3 (one edge, no features) must usually receive a code
// distinct from node 0's — the embedding is not degenerate.
func TestEmbed_SeedSweepSeparatesNodes(t *testing.T) {
	cfg := scenarioConfig()
	p := scenarioProximity(t, &cfg)

	const seeds = 32
	distinct, nondegenerate := 0, 0
	for s := 0; s < seeds; s++ {
		cfg.Seed = int64(s)
		emb, err := bane.Embed(p, &cfg)
		require.NoError(t, err)
		assertBinary(t, emb)

		if emb.At(0, 0) != emb.At(3, 0) || emb.At(0, 1) != emb.At(3, 1) {
			distinct++
		}
		for i := 1; i < 4; i++ {
			if emb.At(i, 0) != emb.At(0, 0) || emb.At(i, 1) != emb.At(0, 1) {
				nondegenerate++
				break
			}
		}
	}

	assert.GreaterOrEqual(t, distinct, seeds/4,
		"node 3 should differ from node 0 in at least one coordinate for a substantial share of seeds (got %d/%d)", distinct, seeds)
	assert.GreaterOrEqual(t, nondegenerate, seeds*3/4,
		"rows must not collapse to one identical code (got %d/%d non-degenerate)", nondegenerate, seeds)
}

// TestEmbed_IsolatedAndFeaturelessNode runs a graph with a fully
// disconnected, featureless node and expects a valid ±1 row for it.
func TestEmbed_IsolatedAndFeaturelessNode(t *testing.T) {
	cfg := scenarioConfig()

	g, err := dataset.NewGraph(3, [][2]int{{0, 1}})
	require.NoError(t, err)
	x := mat.NewDense(3, 2, []float64{1, 0, 0, 1, 0, 0})

	p, err := proximity.Build(g, x, &cfg)
	require.NoError(t, err)

	emb, err := bane.Embed(p, &cfg)
	require.NoError(t, err)

	r, _ := emb.Dims()
	assert.Equal(t, 3, r, "isolated node keeps its row")
	assertBinary(t, emb)
}
