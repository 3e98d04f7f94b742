// SPDX-License-Identifier: MIT
//
// gexf.go — a minimal GEXF 1.2 writer. No library in the retrieved corpus
// (neither _examples/ nor other_examples/) speaks GEXF or any other graph
// interchange format, and the core's contract places the format itself
// outside its scope; encoding/xml is used here because nothing in the
// ecosystem this corpus draws from does better for a one-shot static-graph
// dump (see DESIGN.md).
package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type gexfDocument struct {
	XMLName xml.Name  `xml:"gexf"`
	Version string    `xml:"version,attr"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfGraph struct {
	Mode            string    `xml:"mode,attr"`
	DefaultEdgeType string    `xml:"defaultedgetype,attr"`
	Nodes           gexfNodes `xml:"nodes"`
	Edges           gexfEdges `xml:"edges"`
}

type gexfNodes struct {
	Nodes []gexfNode `xml:"node"`
}

type gexfNode struct {
	ID    string `xml:"id,attr"`
	Label string `xml:"label,attr"`
}

type gexfEdges struct {
	Edges []gexfEdge `xml:"edge"`
}

type gexfEdge struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

// WriteGEXF serializes g to w as a static, undirected GEXF 1.2 document
// named name. The core owes only the Graph value; this function owns every
// detail of the on-disk shape.
func WriteGEXF(w io.Writer, name string, g Graph) error {
	doc := gexfDocument{
		Version: "1.2",
		Graph: gexfGraph{
			Mode:            "static",
			DefaultEdgeType: "undirected",
		},
	}
	for _, n := range g.Nodes {
		doc.Graph.Nodes.Nodes = append(doc.Graph.Nodes.Nodes, gexfNode{ID: n, Label: n})
	}
	for i, e := range g.Edges {
		doc.Graph.Edges.Edges = append(doc.Graph.Edges.Edges, gexfEdge{
			ID:     fmt.Sprintf("%d", i),
			Source: e[0],
			Target: e[1],
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("export: WriteGEXF: %w", err)
	}
	if _, err := fmt.Fprintf(w, "<!-- %s -->\n", name); err != nil {
		return fmt.Errorf("export: WriteGEXF: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: WriteGEXF: %w", err)
	}

	return nil
}

// BulkExport writes role_graph.gexf, demarcation_graph.gexf, and
// permission_graph.gexf into dir, one file per derived graph.
func BulkExport(dir string, roles, demarcations, permissions Graph) error {
	files := []struct {
		name  string
		graph Graph
		tag   string
	}{
		{"role_graph.gexf", roles, "roles"},
		{"demarcation_graph.gexf", demarcations, "demarcations"},
		{"permission_graph.gexf", permissions, "permissions"},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeFile(path, f.tag, f.graph); err != nil {
			return fmt.Errorf("export: BulkExport: %s: %w", f.name, err)
		}
	}

	return nil
}

func writeFile(path, name string, g Graph) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteGEXF(file, name, g)
}
