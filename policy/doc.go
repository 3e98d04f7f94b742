// Package policy implements the mutation entry points over a
// registry.Registry and a derivedgraph.Store: every operation is a
// check-then-mutate state machine (Proposed -> {Committed, Rejected}).
// Checks are pure reads over invariant's predicates and derivedgraph's
// candidate computations; nothing is written to the registry or the derived
// graphs until every check for an operation has passed.
package policy
