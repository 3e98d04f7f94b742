// SPDX-License-Identifier: MIT
//
// global.go — per-entity checks for invariants 2 and 3, and the diagnostic
// FindAllRoleSetViolations, FindAllRoleCoherenceViolations and
// FindAllDemarcationCoherenceViolations scans over invariants 1–3. The primary
// error channel (policy) reports the first violating witness it finds;
// these helpers exist for tests and the CLI demo, which want the full
// picture.
package invariant

import (
	"github.com/katalvlaran/policonn/graphset"
	"github.com/katalvlaran/policonn/registry"
)

// RoleCoherent evaluates invariant 2 for one role: RD[r] must induce a
// connected subgraph of gd.
func RoleCoherent(reg *registry.Registry, gd *graphset.Graph, role string) bool {
	return InducedIsConnected(gd, reg.RD(role))
}

// DemarcationCoherent evaluates invariant 3 for one demarcation: DP[d] must
// induce a connected subgraph of gp.
func DemarcationCoherent(reg *registry.Registry, gp *graphset.Graph, demarcation string) bool {
	return InducedIsConnected(gp, reg.DP(demarcation))
}

// Witness identifies the concrete tuple that failed a connectivity check, as
// required by the error taxonomy.
type Witness struct {
	// Invariant is 1, 2, or 3.
	Invariant int
	// Subject and Interval are set only for invariant 1 witnesses.
	Subject, Interval string
	// Role is set only for invariant 2 witnesses.
	Role string
	// Demarcation is set only for invariant 3 witnesses.
	Demarcation string
	// EntitySet is the offending induced-subgraph vertex set.
	EntitySet []string
}

// FindAllRoleSetViolations scans every (subject, interval) pair and returns a
// Witness for each one whose enabled role set is disconnected in gr. A
// diagnostic extension beyond the "report the first witness"
// primary channel, intended for tests and the CLI demo only.
func FindAllRoleSetViolations(reg *registry.Registry, gr *graphset.Graph) []Witness {
	var out []Witness
	for _, s := range reg.Subjects() {
		for _, i := range reg.Intervals() {
			roles := EnabledRoleSet(reg, s, i)
			if !InducedIsConnected(gr, roles) {
				out = append(out, Witness{Invariant: 1, Subject: s, Interval: i, EntitySet: roles})
			}
		}
	}

	return out
}

// FindAllRoleCoherenceViolations scans every role and returns a Witness for
// each one whose RD set is disconnected in gd.
func FindAllRoleCoherenceViolations(reg *registry.Registry, gd *graphset.Graph) []Witness {
	var out []Witness
	for _, r := range reg.Roles() {
		if ds := reg.RD(r); !InducedIsConnected(gd, ds) {
			out = append(out, Witness{Invariant: 2, Role: r, EntitySet: ds})
		}
	}

	return out
}

// FindAllDemarcationCoherenceViolations scans every demarcation and returns
// a Witness for each one whose DP set is disconnected in gp.
func FindAllDemarcationCoherenceViolations(reg *registry.Registry, gp *graphset.Graph) []Witness {
	var out []Witness
	for _, d := range reg.Demarcations() {
		if ps := reg.DP(d); !InducedIsConnected(gp, ps) {
			out = append(out, Witness{Invariant: 3, Demarcation: d, EntitySet: ps})
		}
	}

	return out
}
