// SPDX-License-Identifier: MIT
//
// retractions.go — the four retract_* operations. Relations
// are unset; entities survive. Each computes a full candidate delta before
// writing anything.
package policy

import (
	"fmt"

	"github.com/katalvlaran/policonn/derivedgraph"
	"github.com/katalvlaran/policonn/invariant"
	"github.com/katalvlaran/policonn/registry"
)

// RetractRoleFromInterval retracts role r from interval i.
func (p *Policy) RetractRoleFromInterval(role, interval string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !containsString(p.reg.RI(role), interval) {
		return policyErrorf("RetractRoleFromInterval", relationMissing(role, interval))
	}

	for _, subject := range p.reg.RS(role) {
		candidate := removeString(invariant.EnabledRoleSet(p.reg, subject, interval), role)
		if !invariant.InducedIsConnected(p.store.GR, candidate) {
			return policyErrorf("RetractRoleFromInterval", violationFromWitness(
				invariant.Witness{Invariant: 1, Subject: subject, Interval: interval, EntitySet: candidate},
				"retracting the role would disconnect the remaining role set in G_R",
			))
		}
	}

	if err := p.reg.UnlinkRoleInterval(role, interval); err != nil {
		return policyErrorf("RetractRoleFromInterval", err)
	}

	return nil
}

// RetractRoleFromSubject retracts role r from subject s.
func (p *Policy) RetractRoleFromSubject(role, subject string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !containsString(p.reg.RS(role), subject) {
		return policyErrorf("RetractRoleFromSubject", relationMissing(role, subject))
	}

	for _, interval := range p.reg.RI(role) {
		candidate := removeString(invariant.EnabledRoleSet(p.reg, subject, interval), role)
		if !invariant.InducedIsConnected(p.store.GR, candidate) {
			return policyErrorf("RetractRoleFromSubject", violationFromWitness(
				invariant.Witness{Invariant: 1, Subject: subject, Interval: interval, EntitySet: candidate},
				"retracting the role would disconnect the remaining role set in G_R",
			))
		}
	}

	if err := p.reg.UnlinkRoleSubject(role, subject); err != nil {
		return policyErrorf("RetractRoleFromSubject", err)
	}

	return nil
}

// RetractDemarcationFromRole retracts demarcation d from role r.
func (p *Policy) RetractDemarcationFromRole(dem, role string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !containsString(p.reg.DR(dem), role) {
		return policyErrorf("RetractDemarcationFromRole", relationMissing(dem, role))
	}

	remainingRD := removeString(p.reg.RD(role), dem)
	if !invariant.InducedIsConnected(p.store.GD, remainingRD) {
		return policyErrorf("RetractDemarcationFromRole", &ConnectivityViolation{
			Invariant: 2,
			Entities:  remainingRD,
			Message:   "role's remaining demarcation set would be disconnected in G_D",
		})
	}

	candidateRD := map[string][]string{role: remainingRD}
	grCandidate := derivedgraph.RecomputeRoleEdgesAfterDemarcationChange(
		p.reg, p.store.GR, p.store.GD, candidateRD, []string{role},
	)

	for _, interval := range p.reg.RI(role) {
		for _, subject := range p.reg.RS(role) {
			checkSet := removeString(invariant.EnabledRoleSet(p.reg, subject, interval), role)
			if !invariant.InducedIsConnected(grCandidate, checkSet) {
				return policyErrorf("RetractDemarcationFromRole", violationFromWitness(
					invariant.Witness{Invariant: 1, Subject: subject, Interval: interval, EntitySet: checkSet},
					"retracting the demarcation would disconnect a dependent role set in the recomputed G_R",
				))
			}
		}
	}

	if err := p.reg.UnlinkDemarcationRole(dem, role); err != nil {
		return policyErrorf("RetractDemarcationFromRole", err)
	}
	p.store.GR = grCandidate

	return nil
}

// RetractPermissionFromDemarcation retracts permission p from demarcation d.
func (p *Policy) RetractPermissionFromDemarcation(perm, dem string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !containsString(p.reg.PD(perm), dem) {
		return policyErrorf("RetractPermissionFromDemarcation", relationMissing(perm, dem))
	}

	remainingDP := removeString(p.reg.DP(dem), perm)
	if !invariant.InducedIsConnected(p.store.GP, remainingDP) {
		return policyErrorf("RetractPermissionFromDemarcation", &ConnectivityViolation{
			Invariant: 3,
			Entities:  remainingDP,
			Message:   "demarcation's remaining permission set would be disconnected in G_P",
		})
	}

	candidateDP := map[string][]string{dem: remainingDP}
	gdCandidate := derivedgraph.RecomputeDemarcationEdgesAfterPermissionChange(
		p.reg, p.store.GD, p.store.GP, candidateDP, []string{dem},
	)

	affectedRoles := p.reg.DR(dem)
	grCandidate := derivedgraph.RecomputeRoleEdgesAfterDemarcationChange(
		p.reg, p.store.GR, gdCandidate, nil, affectedRoles,
	)

	if violations := invariant.FindAllRoleSetViolations(p.reg, grCandidate); len(violations) > 0 {
		return policyErrorf("RetractPermissionFromDemarcation", violationFromWitness(
			violations[0], "retracting the permission would disconnect a dependent role set in the recomputed G_R",
		))
	}

	if err := p.reg.UnlinkPermissionDemarcation(perm, dem); err != nil {
		return policyErrorf("RetractPermissionFromDemarcation", err)
	}
	p.store.GD = gdCandidate
	p.store.GR = grCandidate

	return nil
}

func relationMissing(a, b string) error {
	return fmt.Errorf("%w: %s,%s", registry.ErrRelationMissing, a, b)
}
