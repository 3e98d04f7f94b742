// SPDX-License-Identifier: MIT
//
// assignments.go — the four assign_* operations. Each may
// only tighten semantic linkage; each computes its candidate G_D/G_R delta
// before touching anything, and commits only once its check passes.
package policy

import (
	"github.com/katalvlaran/policonn/derivedgraph"
	"github.com/katalvlaran/policonn/graphset"
	"github.com/katalvlaran/policonn/invariant"
	"github.com/katalvlaran/policonn/registry"
)

// AssignPermissionToDemarcation assigns permission p to demarcation d.
func (p *Policy) AssignPermissionToDemarcation(perm, dem string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.reg.HasPermission(perm) {
		return policyErrorf("AssignPermissionToDemarcation", unknownEntity(perm))
	}
	if !p.reg.HasDemarcation(dem) {
		return policyErrorf("AssignPermissionToDemarcation", unknownEntity(dem))
	}

	if existingDP := p.reg.DP(dem); len(existingDP) > 0 {
		if !invariant.SupportExists(p.store.GP, perm, existingDP, nil) {
			return policyErrorf("AssignPermissionToDemarcation", &ConnectivityViolation{
				Invariant: 3,
				Entities:  append([]string{perm}, existingDP...),
				Message:   "permission has no shared/adjacent member of the demarcation's current permission set",
			})
		}
	}

	newGDEdges := derivedgraph.CandidateDPEdges(p.reg, p.store.GP, perm, dem)
	newGREdges := roleEdgesFromDemarcationEdges(p.reg, newGDEdges)

	if err := p.reg.LinkPermissionDemarcation(perm, dem); err != nil {
		return policyErrorf("AssignPermissionToDemarcation", err)
	}
	for _, e := range newGDEdges {
		_ = p.store.GD.AddEdge(e.A, e.B)
	}
	for _, e := range newGREdges {
		_ = p.store.GR.AddEdge(e.A, e.B)
	}

	return nil
}

// AssignDemarcationToRole assigns demarcation d to role r.
func (p *Policy) AssignDemarcationToRole(dem, role string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.reg.HasDemarcation(dem) {
		return policyErrorf("AssignDemarcationToRole", unknownEntity(dem))
	}
	if !p.reg.HasRole(role) {
		return policyErrorf("AssignDemarcationToRole", unknownEntity(role))
	}

	if existingRD := p.reg.RD(role); len(existingRD) > 0 {
		if !invariant.SupportExists(p.store.GD, dem, existingRD, nil) {
			return policyErrorf("AssignDemarcationToRole", &ConnectivityViolation{
				Invariant: 2,
				Entities:  append([]string{dem}, existingRD...),
				Message:   "demarcation has no shared/adjacent member of the role's current demarcation set",
			})
		}
	}

	newGREdges := derivedgraph.CandidateRDEdges(p.reg, p.store.GD, dem, role)

	if err := p.reg.LinkDemarcationRole(dem, role); err != nil {
		return policyErrorf("AssignDemarcationToRole", err)
	}
	for _, e := range newGREdges {
		_ = p.store.GR.AddEdge(e.A, e.B)
	}

	return nil
}

// AssignRoleToInterval assigns role r to interval i.
func (p *Policy) AssignRoleToInterval(role, interval string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.reg.HasRole(role) {
		return policyErrorf("AssignRoleToInterval", unknownEntity(role))
	}
	if !p.reg.HasInterval(interval) {
		return policyErrorf("AssignRoleToInterval", unknownEntity(interval))
	}

	for _, subject := range p.reg.RS(role) {
		candidate := appendIfMissing(invariant.EnabledRoleSet(p.reg, subject, interval), role)
		if !invariant.InducedIsConnected(p.store.GR, candidate) {
			return policyErrorf("AssignRoleToInterval", violationFromWitness(
				invariant.Witness{Invariant: 1, Subject: subject, Interval: interval, EntitySet: candidate},
				"enabling the role for this subject's interval would disconnect its role set in G_R",
			))
		}
	}

	if err := p.reg.LinkRoleInterval(role, interval); err != nil {
		return policyErrorf("AssignRoleToInterval", err)
	}

	return nil
}

// AssignRoleToSubject assigns role r to subject s.
func (p *Policy) AssignRoleToSubject(role, subject string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.reg.HasRole(role) {
		return policyErrorf("AssignRoleToSubject", unknownEntity(role))
	}
	if !p.reg.HasSubject(subject) {
		return policyErrorf("AssignRoleToSubject", unknownEntity(subject))
	}

	for _, interval := range p.reg.RI(role) {
		candidate := appendIfMissing(invariant.EnabledRoleSet(p.reg, subject, interval), role)
		if !invariant.InducedIsConnected(p.store.GR, candidate) {
			return policyErrorf("AssignRoleToSubject", violationFromWitness(
				invariant.Witness{Invariant: 1, Subject: subject, Interval: interval, EntitySet: candidate},
				"granting the role to this subject would disconnect its role set in G_R",
			))
		}
	}

	if err := p.reg.LinkRoleSubject(role, subject); err != nil {
		return policyErrorf("AssignRoleToSubject", err)
	}

	return nil
}

func roleEdgesFromDemarcationEdges(reg *registry.Registry, gdEdges []graphset.Edge) []graphset.Edge {
	seen := make(map[[2]string]struct{})
	var out []graphset.Edge
	for _, e := range gdEdges {
		for _, r1 := range reg.DR(e.A) {
			for _, r2 := range reg.DR(e.B) {
				if r1 == r2 {
					continue
				}
				a, b := r1, r2
				if a > b {
					a, b = b, a
				}
				key := [2]string{a, b}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, graphset.Edge{A: a, B: b})
			}
		}
	}

	return out
}

func appendIfMissing(set []string, id string) []string {
	if containsString(set, id) {
		return set
	}

	return append(append([]string(nil), set...), id)
}
