// Package graphset implements a thread-safe undirected simple graph: no
// self-loops, no parallel edges, no direction. It is the common primitive
// underneath the three derived connectivity graphs (G_P, G_D, G_R) that
// the policy engine maintains.
//
// The type is deliberately narrower than a general-purpose graph library:
// every caller in this module only ever needs nodes, undirected edges, and
// one query — whether an arbitrary subset of nodes induces a connected
// subgraph. HasEdge and InducedConnected together are the entire surface
// C4's invariant checks are built from.
//
// Concurrency: a single sync.RWMutex guards all state. The policy engine
// above serializes mutations through its own lock, so contention here is
// only between that single writer and concurrent read-only views (e.g. an
// export running while no mutation is in flight).
package graphset
