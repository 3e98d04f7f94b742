// Package derivedgraph holds the three graphs G_P, G_D, G_R and the
// candidate-edge computations used to keep G_D and G_R a deterministic
// function of the assignment relations (invariant 4). Every mutator here
// that affects G_D or G_R is a pure "candidate" computation returning a new
// or delta graph; nothing in this package commits a candidate in place —
// the policy package owns the commit step, following the candidate-then-
// commit shape of dfs.DetectCycles's canonicalize-before-append discipline.
package derivedgraph
