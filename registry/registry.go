// SPDX-License-Identifier: MIT
//
// registry.go — the five entity universes and eight bidirectional relations.
//
// Grounded on core/types.go's map-owned instance state (no external storage,
// every set/relation is a plain Go map field) and builder/validators.go's
// validate-before-mutate style (every mutator checks preconditions before
// touching a map).
package registry

// Registry owns the five entity universes and the eight bidirectional
// assignment relations linking them. It performs no connectivity reasoning;
// that belongs to the invariant and policy packages, which consult a
// Registry (or a Clone of one) alongside the derived graphs.
type Registry struct {
	intervals    map[string]struct{}
	subjects     map[string]struct{}
	roles        map[string]struct{}
	demarcations map[string]struct{}
	permissions  map[string]struct{}

	// IR[i] = roles assigned to interval i; RI[r] = intervals role r holds.
	ir map[string]map[string]struct{}
	ri map[string]map[string]struct{}

	// SR[s] = roles assigned to subject s; RS[r] = subjects holding role r.
	sr map[string]map[string]struct{}
	rs map[string]map[string]struct{}

	// RD[r] = demarcations assigned to role r; DR[d] = roles holding d.
	rd map[string]map[string]struct{}
	dr map[string]map[string]struct{}

	// DP[d] = permissions assigned to demarcation d; PD[p] = demarcations holding p.
	dp map[string]map[string]struct{}
	pd map[string]map[string]struct{}
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		intervals:    make(map[string]struct{}),
		subjects:     make(map[string]struct{}),
		roles:        make(map[string]struct{}),
		demarcations: make(map[string]struct{}),
		permissions:  make(map[string]struct{}),

		ir: make(map[string]map[string]struct{}),
		ri: make(map[string]map[string]struct{}),
		sr: make(map[string]map[string]struct{}),
		rs: make(map[string]map[string]struct{}),
		rd: make(map[string]map[string]struct{}),
		dr: make(map[string]map[string]struct{}),
		dp: make(map[string]map[string]struct{}),
		pd: make(map[string]map[string]struct{}),
	}
}

// Clone deep-copies the registry for the check-then-mutate discipline: a
// caller computes a candidate mutation against the clone, validates it, and
// only applies the same mutation to the committed Registry once every
// invariant check has passed.
func (r *Registry) Clone() *Registry {
	clone := New()
	cloneSet(clone.intervals, r.intervals)
	cloneSet(clone.subjects, r.subjects)
	cloneSet(clone.roles, r.roles)
	cloneSet(clone.demarcations, r.demarcations)
	cloneSet(clone.permissions, r.permissions)

	cloneRel(clone.ir, r.ir)
	cloneRel(clone.ri, r.ri)
	cloneRel(clone.sr, r.sr)
	cloneRel(clone.rs, r.rs)
	cloneRel(clone.rd, r.rd)
	cloneRel(clone.dr, r.dr)
	cloneRel(clone.dp, r.dp)
	cloneRel(clone.pd, r.pd)

	return clone
}

func cloneSet(dst, src map[string]struct{}) {
	for id := range src {
		dst[id] = struct{}{}
	}
}

func cloneRel(dst, src map[string]map[string]struct{}) {
	for k, v := range src {
		m := make(map[string]struct{}, len(v))
		for id := range v {
			m[id] = struct{}{}
		}
		dst[k] = m
	}
}
