// SPDX-License-Identifier: MIT
//
// candidates.go — pure candidate-edge computations for G_D and G_R. None of
// these mutate the graphs they are given; policy decides whether to commit
// the returned edges/graph.
package derivedgraph

import (
	"sort"

	"github.com/katalvlaran/policonn/graphset"
	"github.com/katalvlaran/policonn/registry"
)

// CandidateDPEdges computes the new G_D edges that assigning permission p to
// demarcation d would introduce: for every d' in PD[p] or in PD[q] for some
// G_P-neighbor q of p, edge (d,d') is candidate, unless d' == d.
func CandidateDPEdges(reg *registry.Registry, gp *graphset.Graph, p, d string) []graphset.Edge {
	targets := make(map[string]struct{})
	for _, dPrime := range reg.PD(p) {
		targets[dPrime] = struct{}{}
	}
	if neighbors, err := gp.Neighbors(p); err == nil {
		for _, q := range neighbors {
			for _, dPrime := range reg.PD(q) {
				targets[dPrime] = struct{}{}
			}
		}
	}
	delete(targets, d)

	return edgesTo(d, targets)
}

// CandidateRDEdges computes the new G_R edges that assigning demarcation d to
// role r would introduce: for every r' in DR[d] or in DR[d''] for some
// G_D-neighbor d'' of d, edge (r,r') is candidate, unless r' == r.
func CandidateRDEdges(reg *registry.Registry, gd *graphset.Graph, d, r string) []graphset.Edge {
	targets := make(map[string]struct{})
	for _, rPrime := range reg.DR(d) {
		targets[rPrime] = struct{}{}
	}
	if neighbors, err := gd.Neighbors(d); err == nil {
		for _, dDouble := range neighbors {
			for _, rPrime := range reg.DR(dDouble) {
				targets[rPrime] = struct{}{}
			}
		}
	}
	delete(targets, r)

	return edgesTo(r, targets)
}

// WithoutDemarcation returns a clone of gd with node d (and its incident
// edges) removed. Used by remove_demarcation, which needs the G_D state as it
// will be once d no longer exists.
func WithoutDemarcation(gd *graphset.Graph, d string) *graphset.Graph {
	return WithoutNode(gd, d)
}

// WithoutNode returns a clone of g with node v (and its incident edges)
// removed, if present. The underlying primitive behind WithoutDemarcation,
// reused as-is by RemovePermission since "remove a node from a derived
// graph" is identical at every level of the permission/demarcation/role
// hierarchy.
func WithoutNode(g *graphset.Graph, v string) *graphset.Graph {
	clone := g.Clone()
	if clone.HasNode(v) {
		_ = clone.RemoveNode(v)
	}

	return clone
}

// RecomputeDemarcationEdgesAfterPermissionChange is
// RecomputeRoleEdgesAfterDemarcationChange one level down the hierarchy:
// rebuilds the candidate G_D that results from affectedDemarcations each
// losing permission p, against gpCandidate (G_P already reflecting p's
// removal/retraction) and candidateDP (post-change DP[d] for every d in
// affectedDemarcations — callers pass reg.DP(d) filtered to exclude p).
func RecomputeDemarcationEdgesAfterPermissionChange(
	reg *registry.Registry,
	baseGD *graphset.Graph,
	gpCandidate *graphset.Graph,
	candidateDP map[string][]string,
	affectedDemarcations []string,
) *graphset.Graph {
	affected := make(map[string]struct{}, len(affectedDemarcations))
	for _, d := range affectedDemarcations {
		affected[d] = struct{}{}
	}

	dpOf := func(dem string) []string {
		if dp, ok := candidateDP[dem]; ok {
			return dp
		}

		return reg.DP(dem)
	}

	result := graphset.New()
	for _, dem := range reg.Demarcations() {
		_ = result.AddNode(dem)
	}

	for _, edge := range baseGD.Edges() {
		d1, d2 := edge.A, edge.B
		_, aff1 := affected[d1]
		_, aff2 := affected[d2]
		if !aff1 && !aff2 {
			_ = result.AddEdge(d1, d2)

			continue
		}
		if edgeSupported(dpOf(d1), dpOf(d2), gpCandidate) {
			_ = result.AddEdge(d1, d2)
		}
	}

	return result
}

// RecomputeRoleEdgesAfterDemarcationChange rebuilds the candidate G_R that
// results from affectedRoles each losing demarcation d, against gdCandidate
// (G_D already reflecting d's removal/retraction) and candidateRD (the
// post-change RD[r] for every r in affectedRoles — callers pass reg.RD(r)
// filtered to exclude d).
//
// Two roles r1 != r2 remain G_R-adjacent after d's removal
// iff some other pair (d1 in RD[r1]\{d}, d2 in RD[r2]\{d}) is equal or
// gdCandidate-adjacent — evaluated with *each* side's own remaining
// demarcation set, never one role's set reused for both sides.
//
// Edges with neither endpoint in affectedRoles are carried over from baseGR
// unchanged, since a role's connectivity to an unrelated role never depends
// on a demarcation it was never assigned.
func RecomputeRoleEdgesAfterDemarcationChange(
	reg *registry.Registry,
	baseGR *graphset.Graph,
	gdCandidate *graphset.Graph,
	candidateRD map[string][]string,
	affectedRoles []string,
) *graphset.Graph {
	affected := make(map[string]struct{}, len(affectedRoles))
	for _, r := range affectedRoles {
		affected[r] = struct{}{}
	}

	rdOf := func(role string) []string {
		if rd, ok := candidateRD[role]; ok {
			return rd
		}

		return reg.RD(role)
	}

	result := graphset.New()
	for _, role := range reg.Roles() {
		_ = result.AddNode(role)
	}

	for _, edge := range baseGR.Edges() {
		r1, r2 := edge.A, edge.B
		_, aff1 := affected[r1]
		_, aff2 := affected[r2]
		if !aff1 && !aff2 {
			_ = result.AddEdge(r1, r2)

			continue
		}
		if edgeSupported(rdOf(r1), rdOf(r2), gdCandidate) {
			_ = result.AddEdge(r1, r2)
		}
	}

	return result
}

// edgeSupported reports whether two sets share a member or adjoin via gd:
// for two roles' demarcation sets against G_D, whether the G_R edge between
// them is still justified by §3.3's G_R adjacency rule; for two
// demarcations' permission sets against G_P, the same for their G_D edge.
func edgeSupported(rd1, rd2 []string, gd *graphset.Graph) bool {
	for _, d1 := range rd1 {
		for _, d2 := range rd2 {
			if d1 == d2 || gd.HasEdge(d1, d2) {
				return true
			}
		}
	}

	return false
}

func edgesTo(hub string, targets map[string]struct{}) []graphset.Edge {
	out := make([]graphset.Edge, 0, len(targets))
	for t := range targets {
		a, b := hub, t
		if a > b {
			a, b = b, a
		}
		out = append(out, graphset.Edge{A: a, B: b})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}
