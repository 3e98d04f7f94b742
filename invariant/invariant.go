// SPDX-License-Identifier: MIT
package invariant

import (
	"github.com/katalvlaran/policonn/graphset"
	"github.com/katalvlaran/policonn/registry"
)

// InducedIsConnected reports whether the subgraph of g induced by nodes is
// connected. Kept as its own function (rather than inlining
// g.InducedConnected everywhere) since callers in policy reason about this
// as an invariant primitive, not a graph-primitive detail.
func InducedIsConnected(g *graphset.Graph, nodes []string) bool {
	return g.InducedConnected(nodes)
}

// RoleSetConnected evaluates invariant 1 for one (subject, interval) pair:
// the enabled role set E(s,i) = SR[s] ∩ IR[i] must induce a connected
// subgraph of gr. This is
// connectivity-true whenever |E(s,i)| <= 1 — never a hardcoded false for the
// empty set — which graphset.Graph.InducedConnected already guarantees.
func RoleSetConnected(reg *registry.Registry, gr *graphset.Graph, subject, interval string) bool {
	return InducedIsConnected(gr, EnabledRoleSet(reg, subject, interval))
}

// EnabledRoleSet computes E(s,i) = SR[s] ∩ IR[i].
func EnabledRoleSet(reg *registry.Registry, subject, interval string) []string {
	ir := make(map[string]struct{})
	for _, r := range reg.IR(interval) {
		ir[r] = struct{}{}
	}

	out := make([]string, 0)
	for _, r := range reg.SR(subject) {
		if _, ok := ir[r]; ok {
			out = append(out, r)
		}
	}

	return out
}

// SupportExists reports whether there is a y in ys with x == y or (x,y) an
// edge of g, optionally also honoring extra candidate edges not yet
// committed to g (used when a check must reason about a delta that hasn't
// landed yet, e.g. mid assign_permission_to_demarcation).
func SupportExists(g *graphset.Graph, x string, ys []string, extra []graphset.Edge) bool {
	extraAdj := make(map[string]struct{})
	for _, e := range extra {
		if e.A == x {
			extraAdj[e.B] = struct{}{}
		}
		if e.B == x {
			extraAdj[e.A] = struct{}{}
		}
	}

	for _, y := range ys {
		if x == y {
			return true
		}
		if g.HasEdge(x, y) {
			return true
		}
		if _, ok := extraAdj[y]; ok {
			return true
		}
	}

	return false
}
