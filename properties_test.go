package slgraph_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philkrause/slgraph"
)

func TestNewGraphStartsEmpty(t *testing.T) {
	g, err := slgraph.New()
	require.NoError(t, err)
	defer g.Close()

	require.EqualValues(t, 0, g.Nodes())
	require.EqualValues(t, 0, g.Edges())
	require.Equal(t, slgraph.VersionDirected, g.Version())
}

func TestAddNodeSequentialIds(t *testing.T) {
	g, err := slgraph.New()
	require.NoError(t, err)
	defer g.Close()

	var last uint64
	for i := 0; i < 10; i++ {
		id, err := g.AddNode()
		require.NoError(t, err)
		require.EqualValues(t, i, id)
		last = id
	}

	require.EqualValues(t, 10, g.Nodes())
	require.EqualValues(t, 9, last)
}

func TestReadOnlyGraphRejectsMutations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ro.slg")

	g, err := slgraph.Open(slgraph.Options{Path: path, Version: slgraph.VersionDirected})
	require.NoError(t, err)
	a, _ := g.AddNode()
	_, _ = g.AddNode()
	require.NoError(t, g.Close())

	ro, err := slgraph.Open(slgraph.Options{Path: path, ReadOnly: true})
	require.NoError(t, err)
	defer ro.Close()

	_, err = ro.AddNode()
	require.ErrorIs(t, err, slgraph.ErrReadOnly)

	_, err = ro.AddDirectedEdge(a, a)
	require.ErrorIs(t, err, slgraph.ErrReadOnly)

	require.ErrorIs(t, ro.NodelistExpand(100), slgraph.ErrReadOnly)
}

func TestOutOfRangeNodeRejectedByMutators(t *testing.T) {
	g, err := slgraph.New()
	require.NoError(t, err)
	defer g.Close()

	a, _ := g.AddNode()

	_, err = g.AddDirectedEdge(a, 42)
	require.ErrorIs(t, err, slgraph.ErrOutOfRange)
}

func TestOutOfRangeQueriesReturnSentinels(t *testing.T) {
	g, err := slgraph.New()
	require.NoError(t, err)
	defer g.Close()

	a, _ := g.AddNode()
	require.Equal(t, slgraph.InvalidNode, g.OutNeighbour(a, 0))
	require.Equal(t, slgraph.InvalidEdge, g.OutIncident(a, 0))
	require.EqualValues(t, 0, g.OutDegree(a))
}

func TestWrongVersionOperationsFail(t *testing.T) {
	dir := t.TempDir()
	g := openAt(t, dir, "wrongver.slg", slgraph.VersionUndirected)
	defer g.Close()

	a, _ := g.AddNode()
	b, _ := g.AddNode()

	_, err := g.AddDirectedEdge(a, b)
	require.ErrorIs(t, err, slgraph.ErrWrongVersion)
}

func TestAddEdgeOnDirectedGraphAddsBothDirections(t *testing.T) {
	g, err := slgraph.New()
	require.NoError(t, err)
	defer g.Close()

	a, _ := g.AddNode()
	b, _ := g.AddNode()

	_, err = g.AddEdge(a, b)
	require.NoError(t, err)

	require.EqualValues(t, 1, g.OutDegree(a))
	require.EqualValues(t, 1, g.OutDegree(b))
	require.EqualValues(t, 1, g.InDegree(a))
	require.EqualValues(t, 1, g.InDegree(b))
	require.EqualValues(t, 2, g.Edges())
}

func TestOpenMalformedFileFailsWithFormatError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.slg")
	require.NoError(t, os.WriteFile(path, []byte("not a graph file, but long enough to pass the size check..."), 0644))

	_, err := slgraph.Open(slgraph.Options{Path: path})
	require.ErrorIs(t, err, slgraph.ErrFormat)
}

func TestOpenEmptyFileReadOnlyFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.slg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = slgraph.Open(slgraph.Options{Path: path, ReadOnly: true})
	require.Error(t, err)
}

func TestNodelistExpandIsNoOpWhenCapacitySufficient(t *testing.T) {
	g, err := slgraph.New()
	require.NoError(t, err)
	defer g.Close()

	require.NoError(t, g.NodelistExpand(1))
	require.NoError(t, g.NodelistExpand(1))

	id, err := g.AddNode()
	require.NoError(t, err)
	require.EqualValues(t, 0, id)
}
