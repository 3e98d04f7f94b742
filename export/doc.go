// Package export is a thin, out-of-core adapter: it turns a graphset.Graph
// snapshot into a neutral node/edge value and, for the CLI demo, serializes
// it to GEXF. The core (policy, derivedgraph, registry, invariant) owes
// nothing about file formats; this package is the only place that knows
// what a .gexf file looks like.
package export
