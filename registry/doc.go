// Package registry owns the five entity universes (intervals, subjects,
// roles, demarcations, permissions) and the eight bidirectional assignment
// relations linking them. It is pure bookkeeping: no connectivity
// invariant is checked here, that is invariant's and policy's job.
//
// Every relation is kept in both directions by construction: callers never
// mutate one side of a relation without this package updating the other,
// so x ∈ rel(y) ⇔ y ∈ rel⁻¹(x) holds for the lifetime of a Registry.
package registry
