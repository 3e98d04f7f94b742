package derivedgraph_test

import (
	"testing"

	"github.com/katalvlaran/policonn/derivedgraph"
	"github.com/stretchr/testify/require"
)

func TestStore_SeedPermissionEdge(t *testing.T) {
	st := derivedgraph.NewStore()
	require.NoError(t, st.GP.AddNode("p1"))
	require.NoError(t, st.GP.AddNode("p2"))

	require.NoError(t, st.SeedPermissionEdge("p1", "p2"))
	require.True(t, st.GP.HasEdge("p1", "p2"))
}

func TestStore_CloneIsIndependent(t *testing.T) {
	st := derivedgraph.NewStore()
	require.NoError(t, st.GP.AddEdge("p1", "p2"))

	clone := st.Clone()
	require.NoError(t, clone.GP.AddEdge("p2", "p3"))

	require.False(t, st.GP.HasEdge("p2", "p3"), "mutating the clone must not affect the original")
}
