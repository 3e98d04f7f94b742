// SPDX-License-Identifier: MIT
package derivedgraph

import "github.com/katalvlaran/policonn/graphset"

// Store owns the three derived graphs. GP's edges are externally supplied
// (SeedPermissionEdge) and otherwise change only when a removed permission's
// node is dropped together with its edges; GD and GR are rebuilt by
// the policy layer from the Candidate* computations below.
type Store struct {
	GP *graphset.Graph
	GD *graphset.Graph
	GR *graphset.Graph
}

// NewStore returns an empty Store with three empty graphs.
func NewStore() *Store {
	return &Store{GP: graphset.New(), GD: graphset.New(), GR: graphset.New()}
}

// Clone deep-copies all three graphs, for the same check-then-mutate
// discipline registry.Registry.Clone serves.
func (st *Store) Clone() *Store {
	return &Store{GP: st.GP.Clone(), GD: st.GD.Clone(), GR: st.GR.Clone()}
}

// SeedPermissionEdge adds (p,q) to G_P. Construction-time only: callers are
// expected to call this before a Policy is exposed to assignment
// operations, never as part of steady-state mutation.
func (st *Store) SeedPermissionEdge(p, q string) error {
	return st.GP.AddEdge(p, q)
}
