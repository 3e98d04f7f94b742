package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/policonn/export"
	"github.com/katalvlaran/policonn/graphset"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_IsACopyNotALiveView(t *testing.T) {
	g := graphset.New()
	require.NoError(t, g.AddEdge("r1", "r2"))

	snap := export.Snapshot(g)
	require.Equal(t, []string{"r1", "r2"}, snap.Nodes)
	require.Equal(t, [][2]string{{"r1", "r2"}}, snap.Edges)

	require.NoError(t, g.AddEdge("r2", "r3"))
	require.Len(t, snap.Edges, 1, "snapshot must not change when the source graph mutates later")
}

func TestWriteGEXF_ProducesWellFormedXML(t *testing.T) {
	g := export.Graph{Nodes: []string{"r1", "r2"}, Edges: [][2]string{{"r1", "r2"}}}

	var buf bytes.Buffer
	require.NoError(t, export.WriteGEXF(&buf, "roles", g))

	out := buf.String()
	require.Contains(t, out, "<gexf")
	require.Contains(t, out, `id="r1"`)
	require.Contains(t, out, `source="r1"`)
}

func TestBulkExport_WritesThreeFiles(t *testing.T) {
	dir := t.TempDir()
	empty := export.Graph{}

	require.NoError(t, export.BulkExport(dir, empty, empty, empty))

	for _, name := range []string{"role_graph.gexf", "demarcation_graph.gexf", "permission_graph.gexf"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
	}
}
