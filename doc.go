// Package policonn verifies connectivity invariants over a time-scoped
// role-based access-control policy.
//
// A policy links five kinds of entity — intervals, subjects, roles,
// demarcations, and permissions — through eight bidirectional assignment
// relations. Three undirected graphs are derived from those relations
// (permissions, demarcations, roles) and every mutation is checked against
// them before it commits: a subject's enabled roles during an interval must
// stay connected in the role graph, a role's demarcations must stay
// connected in the demarcation graph, and a demarcation's permissions must
// stay connected in the permission graph.
//
// Packages:
//
//	graphset/     — thread-safe undirected simple graph, connectivity queries
//	registry/     — entity bookkeeping and raw bidirectional relations
//	derivedgraph/ — candidate-edge computation for the three derived graphs
//	invariant/    — the three connectivity invariants, as pure predicates
//	policy/       — the policy mutation operations, check-then-commit
//	export/       — read-only snapshots and GEXF export of the derived graphs
//	cmd/policonn/ — CLI demo: run the fixture scenarios, export the graphs
package policonn
