package graphset_test

import (
	"testing"

	"github.com/katalvlaran/policonn/graphset"
	"github.com/stretchr/testify/require"
)

func TestInducedConnected_TrivialCases(t *testing.T) {
	g := graphset.New()
	require.NoError(t, g.AddNode("a"))

	require.True(t, g.InducedConnected(nil), "empty set is trivially connected")
	require.True(t, g.InducedConnected([]string{"a"}), "singleton is trivially connected")
	require.True(t, g.InducedConnected([]string{"missing"}), "unknown nodes are ignored, not errors")
}

func TestInducedConnected_PathGraph(t *testing.T) {
	// p1 - p2 - p3   p4 (isolated)
	g := graphset.New()
	require.NoError(t, g.AddEdge("p1", "p2"))
	require.NoError(t, g.AddEdge("p2", "p3"))
	require.NoError(t, g.AddNode("p4"))

	require.True(t, g.InducedConnected([]string{"p1", "p2", "p3"}))
	require.False(t, g.InducedConnected([]string{"p1", "p3", "p4"}), "p1-p3 only connect through p2")
	require.False(t, g.InducedConnected([]string{"p1", "p3"}), "p1-p3 only connect through p2")
}

func TestInducedConnected_IgnoresEdgesOutsideTheSet(t *testing.T) {
	// d1 - d2 - d3, but induced set {d1,d3} excludes the bridge d2.
	g := graphset.New()
	require.NoError(t, g.AddEdge("d1", "d2"))
	require.NoError(t, g.AddEdge("d2", "d3"))

	require.False(t, g.InducedConnected([]string{"d1", "d3"}))
	require.True(t, g.InducedConnected([]string{"d1", "d2", "d3"}))
}

func TestInducedConnected_DisjointDuplicatesDeduped(t *testing.T) {
	g := graphset.New()
	require.NoError(t, g.AddEdge("a", "b"))

	require.True(t, g.InducedConnected([]string{"a", "a", "b", "b"}))
}
