// SPDX-License-Identifier: MIT
package export

import "github.com/katalvlaran/policonn/graphset"

// Graph is a dependency-free, format-neutral snapshot of a graphset.Graph:
// sorted node IDs and normalized (A<=B), sorted edge pairs.
type Graph struct {
	Nodes []string
	Edges [][2]string
}

// Snapshot copies g into a Graph value at the moment of the call. It is
// always a copy, never a live view: a faithful copy at the moment of
// export, not a live view onto the source graph.
func Snapshot(g *graphset.Graph) Graph {
	nodes := g.Nodes()
	edges := g.Edges()

	out := Graph{Nodes: append([]string(nil), nodes...), Edges: make([][2]string, 0, len(edges))}
	for _, e := range edges {
		out.Edges = append(out.Edges, [2]string{e.A, e.B})
	}

	return out
}
