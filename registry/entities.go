// SPDX-License-Identifier: MIT
package registry

import "sort"

// AddInterval inserts a new interval ID. Returns ErrDuplicateEntity if
// already present.
func (r *Registry) AddInterval(id string) error { return addTo(r.intervals, "AddInterval", id) }

// AddSubject inserts a new subject ID.
func (r *Registry) AddSubject(id string) error { return addTo(r.subjects, "AddSubject", id) }

// AddRole inserts a new role ID.
func (r *Registry) AddRole(id string) error { return addTo(r.roles, "AddRole", id) }

// AddDemarcation inserts a new demarcation ID.
func (r *Registry) AddDemarcation(id string) error { return addTo(r.demarcations, "AddDemarcation", id) }

// AddPermission inserts a new permission ID.
func (r *Registry) AddPermission(id string) error { return addTo(r.permissions, "AddPermission", id) }

// HasInterval reports whether id is a known interval.
func (r *Registry) HasInterval(id string) bool { _, ok := r.intervals[id]; return ok }

// HasSubject reports whether id is a known subject.
func (r *Registry) HasSubject(id string) bool { _, ok := r.subjects[id]; return ok }

// HasRole reports whether id is a known role.
func (r *Registry) HasRole(id string) bool { _, ok := r.roles[id]; return ok }

// HasDemarcation reports whether id is a known demarcation.
func (r *Registry) HasDemarcation(id string) bool { _, ok := r.demarcations[id]; return ok }

// HasPermission reports whether id is a known permission.
func (r *Registry) HasPermission(id string) bool { _, ok := r.permissions[id]; return ok }

// Intervals returns all interval IDs in sorted order.
func (r *Registry) Intervals() []string { return sortedKeys(r.intervals) }

// Subjects returns all subject IDs in sorted order.
func (r *Registry) Subjects() []string { return sortedKeys(r.subjects) }

// Roles returns all role IDs in sorted order.
func (r *Registry) Roles() []string { return sortedKeys(r.roles) }

// Demarcations returns all demarcation IDs in sorted order.
func (r *Registry) Demarcations() []string { return sortedKeys(r.demarcations) }

// Permissions returns all permission IDs in sorted order.
func (r *Registry) Permissions() []string { return sortedKeys(r.permissions) }

// RemoveInterval deletes interval id and every IR/RI edge touching it.
// Returns ErrUnknownEntity if id is absent.
func (r *Registry) RemoveInterval(id string) error {
	if !r.HasInterval(id) {
		return registryErrorf("RemoveInterval", ErrUnknownEntity, id)
	}
	for role := range r.ir[id] {
		delete(r.ri[role], id)
	}
	delete(r.ir, id)
	delete(r.intervals, id)

	return nil
}

// RemoveSubject deletes subject id and every SR/RS edge touching it.
func (r *Registry) RemoveSubject(id string) error {
	if !r.HasSubject(id) {
		return registryErrorf("RemoveSubject", ErrUnknownEntity, id)
	}
	for role := range r.sr[id] {
		delete(r.rs[role], id)
	}
	delete(r.sr, id)
	delete(r.subjects, id)

	return nil
}

// RemoveRole deletes role id and every RI/IR, RS/SR, RD/DR edge touching it.
func (r *Registry) RemoveRole(id string) error {
	if !r.HasRole(id) {
		return registryErrorf("RemoveRole", ErrUnknownEntity, id)
	}
	for interval := range r.ri[id] {
		delete(r.ir[interval], id)
	}
	for subject := range r.rs[id] {
		delete(r.sr[subject], id)
	}
	for dem := range r.rd[id] {
		delete(r.dr[dem], id)
	}
	delete(r.ri, id)
	delete(r.rs, id)
	delete(r.rd, id)
	delete(r.roles, id)

	return nil
}

// RemoveDemarcation deletes demarcation id and every DR/RD, DP/PD edge
// touching it.
func (r *Registry) RemoveDemarcation(id string) error {
	if !r.HasDemarcation(id) {
		return registryErrorf("RemoveDemarcation", ErrUnknownEntity, id)
	}
	for role := range r.dr[id] {
		delete(r.rd[role], id)
	}
	for perm := range r.dp[id] {
		delete(r.pd[perm], id)
	}
	delete(r.dr, id)
	delete(r.dp, id)
	delete(r.demarcations, id)

	return nil
}

// RemovePermission deletes permission id and every PD/DP edge touching it.
// Registry-level removal has no connectivity consequences of its own; the
// policy layer's RemovePermission operation wraps this with the retraction
// checks documented on RemoveDemarcation before calling it.
func (r *Registry) RemovePermission(id string) error {
	if !r.HasPermission(id) {
		return registryErrorf("RemovePermission", ErrUnknownEntity, id)
	}
	for dem := range r.pd[id] {
		delete(r.dp[dem], id)
	}
	delete(r.pd, id)
	delete(r.permissions, id)

	return nil
}

func addTo(set map[string]struct{}, op, id string) error {
	if _, ok := set[id]; ok {
		return registryErrorf(op, ErrDuplicateEntity, id)
	}
	set[id] = struct{}{}

	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
