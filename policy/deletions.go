// SPDX-License-Identifier: MIT
//
// deletions.go — the four remove_* operations plus RemovePermission, the
// node-removal analogue of RemoveDemarcation one level down the hierarchy.
package policy

import (
	"github.com/katalvlaran/policonn/derivedgraph"
	"github.com/katalvlaran/policonn/invariant"
)

// RemoveInterval deletes interval i unconditionally.
func (p *Policy) RemoveInterval(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return policyErrorf("RemoveInterval", p.reg.RemoveInterval(id))
}

// RemoveSubject deletes subject s unconditionally.
func (p *Policy) RemoveSubject(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return policyErrorf("RemoveSubject", p.reg.RemoveSubject(id))
}

// RemoveRole deletes role r. Conditional: for every (i,s) with i in RI[r]
// and s in RS[r], E(s,i)\{r} must stay connected in G_R. Role removal
// deletes no G_R edges — other roles' connectivity is independent of r's
// node — so only the check is candidate; the mutation is a plain node drop.
func (p *Policy) RemoveRole(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, interval := range p.reg.RI(id) {
		for _, subject := range p.reg.RS(id) {
			checkSet := removeString(invariant.EnabledRoleSet(p.reg, subject, interval), id)
			if !invariant.InducedIsConnected(p.store.GR, checkSet) {
				return policyErrorf("RemoveRole", violationFromWitness(
					invariant.Witness{Invariant: 1, Subject: subject, Interval: interval, EntitySet: checkSet},
					"removing the role would disconnect a dependent role set in G_R",
				))
			}
		}
	}

	if err := p.reg.RemoveRole(id); err != nil {
		return policyErrorf("RemoveRole", err)
	}
	if p.store.GR.HasNode(id) {
		_ = p.store.GR.RemoveNode(id)
	}

	return nil
}

// RemoveDemarcation deletes demarcation d: equivalent to retracting d from
// every role in DR[d] and removing d from G_D, with the combined invariant
// check performed once against the candidate graphs.
func (p *Policy) RemoveDemarcation(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	affectedRoles := p.reg.DR(id)
	gdCandidate := derivedgraph.WithoutDemarcation(p.store.GD, id)

	candidateRD := make(map[string][]string, len(affectedRoles))
	for _, role := range affectedRoles {
		remaining := removeString(p.reg.RD(role), id)
		candidateRD[role] = remaining
		if !invariant.InducedIsConnected(gdCandidate, remaining) {
			return policyErrorf("RemoveDemarcation", &ConnectivityViolation{
				Invariant: 2,
				Entities:  remaining,
				Message:   "a dependent role's remaining demarcation set would be disconnected in G_D",
			})
		}
	}

	grCandidate := derivedgraph.RecomputeRoleEdgesAfterDemarcationChange(
		p.reg, p.store.GR, gdCandidate, candidateRD, affectedRoles,
	)

	for _, role := range affectedRoles {
		for _, interval := range p.reg.RI(role) {
			for _, subject := range p.reg.RS(role) {
				checkSet := removeString(invariant.EnabledRoleSet(p.reg, subject, interval), role)
				if !invariant.InducedIsConnected(grCandidate, checkSet) {
					return policyErrorf("RemoveDemarcation", violationFromWitness(
						invariant.Witness{Invariant: 1, Subject: subject, Interval: interval, EntitySet: checkSet},
						"removing the demarcation would disconnect a dependent role set in the recomputed G_R",
					))
				}
			}
		}
	}

	if err := p.reg.RemoveDemarcation(id); err != nil {
		return policyErrorf("RemoveDemarcation", err)
	}
	p.store.GD = gdCandidate
	p.store.GR = grCandidate

	return nil
}

// RemovePermission deletes permission p, as the analogue of RemoveDemarcation
// one level down the hierarchy — retract p from
// every d in PD[p] (the same check as RetractPermissionFromDemarcation,
// applied once against the candidate graphs), then delete p's G_P node.
func (p *Policy) RemovePermission(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	affectedDemarcations := p.reg.PD(id)
	gpCandidate := derivedgraph.WithoutNode(p.store.GP, id)

	candidateDP := make(map[string][]string, len(affectedDemarcations))
	for _, dem := range affectedDemarcations {
		remaining := removeString(p.reg.DP(dem), id)
		candidateDP[dem] = remaining
		if !invariant.InducedIsConnected(gpCandidate, remaining) {
			return policyErrorf("RemovePermission", &ConnectivityViolation{
				Invariant: 3,
				Entities:  remaining,
				Message:   "a dependent demarcation's remaining permission set would be disconnected in G_P",
			})
		}
	}

	gdCandidate := derivedgraph.RecomputeDemarcationEdgesAfterPermissionChange(
		p.reg, p.store.GD, gpCandidate, candidateDP, affectedDemarcations,
	)

	affectedRoles := make(map[string]struct{})
	for _, dem := range affectedDemarcations {
		for _, role := range p.reg.DR(dem) {
			affectedRoles[role] = struct{}{}
		}
	}
	roleList := make([]string, 0, len(affectedRoles))
	for role := range affectedRoles {
		roleList = append(roleList, role)
	}

	grCandidate := derivedgraph.RecomputeRoleEdgesAfterDemarcationChange(
		p.reg, p.store.GR, gdCandidate, nil, roleList,
	)

	if violations := invariant.FindAllRoleSetViolations(p.reg, grCandidate); len(violations) > 0 {
		return policyErrorf("RemovePermission", violationFromWitness(
			violations[0], "removing the permission would disconnect a dependent role set in the recomputed G_R",
		))
	}

	if err := p.reg.RemovePermission(id); err != nil {
		return policyErrorf("RemovePermission", err)
	}
	p.store.GP = gpCandidate
	p.store.GD = gdCandidate
	p.store.GR = grCandidate

	return nil
}
