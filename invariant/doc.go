// Package invariant provides the pure predicates that decide, before a
// mutation commits, whether the three connectivity invariants (1–3) would
// continue to hold. Every function here is side-effect-free: it reads a
// registry.Registry and one or more *graphset.Graph values and returns a
// boolean or a witness, keeping every traversal primitive free of any
// state-mutating side channel.
package invariant
