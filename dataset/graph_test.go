package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/anembed/core"
	"github.com/katalvlaran/anembed/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadEdgeList_Basic loads a 4-node path and checks node count,
// degrees and neighbor symmetry.
func TestLoadEdgeList_Basic(t *testing.T) {
	path := writeFile(t, "edges.csv", "id_1,id_2\n0,1\n1,2\n2,3\n")

	g, err := dataset.LoadEdgeList(path)
	require.NoError(t, err)

	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, 1, g.Degree(3))
	assert.ElementsMatch(t, []int{0, 2}, g.Neighbors(1), "undirected edges must mirror")
}

// TestLoadEdgeList_SelfLoopsAndDuplicates verifies that self-loops are
// dropped and parallel edges folded, in either orientation.
func TestLoadEdgeList_SelfLoopsAndDuplicates(t *testing.T) {
	path := writeFile(t, "edges.csv", "id_1,id_2\n0,0\n0,1\n1,0\n0,1\n1,2\n")

	g, err := dataset.LoadEdgeList(path)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, 1, g.Degree(0), "self-loop and duplicates must not inflate degree")
	assert.Equal(t, 2, g.Degree(1))
}

// TestLoadEdgeList_GapsLeaveIsolatedNodes checks that n is fixed by the
// max observed id, leaving unreferenced ids as isolated nodes.
func TestLoadEdgeList_GapsLeaveIsolatedNodes(t *testing.T) {
	path := writeFile(t, "edges.csv", "id_1,id_2\n0,5\n")

	g, err := dataset.LoadEdgeList(path)
	require.NoError(t, err)

	assert.Equal(t, 6, g.NumNodes())
	assert.Equal(t, 0, g.Degree(3), "id 3 never appears, must be isolated not missing")
}

// TestLoadEdgeList_Malformed walks malformed inputs and expects
// core.ErrInputFormat carrying the path every time.
func TestLoadEdgeList_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"header only", "id_1,id_2\n"},
		{"non-integer id", "id_1,id_2\n0,one\n"},
		{"negative id", "id_1,id_2\n-1,2\n"},
		{"wrong column count", "id_1,id_2\n0,1,2\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "edges.csv", tc.content)
			_, err := dataset.LoadEdgeList(path)
			assert.ErrorIs(t, err, core.ErrInputFormat)
			assert.Contains(t, err.Error(), path, "error must identify the file")
		})
	}
}

// TestNewGraph_Validation covers the programmatic constructor guards.
func TestNewGraph_Validation(t *testing.T) {
	_, err := dataset.NewGraph(0, nil)
	assert.ErrorIs(t, err, dataset.ErrNoNodes)

	_, err = dataset.NewGraph(2, [][2]int{{0, 5}})
	assert.ErrorIs(t, err, dataset.ErrNodeRange)

	g, err := dataset.NewGraph(3, [][2]int{{0, 1}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, 0, g.Degree(2))
	assert.Equal(t, 1, g.Degree(1), "self-loop must be ignored")
}
