// SPDX-License-Identifier: MIT
package policy

import (
	"sync"

	"github.com/katalvlaran/policonn/derivedgraph"
	"github.com/katalvlaran/policonn/graphset"
	"github.com/katalvlaran/policonn/registry"
)

// Policy owns one registry.Registry and one derivedgraph.Store exclusively
// (no class-level/singleton state). Guarded by a single
// mutex rather than graphset.Graph's finer-grained locking, because
// check-then-mutate here must observe one consistent snapshot across all
// five entity sets and three graphs at once.
type Policy struct {
	mu    sync.Mutex
	reg   *registry.Registry
	store *derivedgraph.Store
}

// PolicyOption customizes construction of a Policy. As a rule, option
// constructors never panic and ignore nil inputs, matching
// builder.BuilderOption's convention.
type PolicyOption func(cfg *policyConfig)

type policyConfig struct {
	seedGP *graphset.Graph
}

// WithPermissionGraph preloads G_P with an externally supplied permission
// topology ("G_P edges are externally supplied"). Nodes and
// edges of g are copied; g itself is never retained or mutated afterward.
func WithPermissionGraph(g *graphset.Graph) PolicyOption {
	return func(cfg *policyConfig) {
		if g != nil {
			cfg.seedGP = g
		}
	}
}

// NewPolicy returns an empty Policy with its own registry and derived-graph
// store, applying any supplied options in order.
func NewPolicy(opts ...PolicyOption) *Policy {
	cfg := &policyConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	store := derivedgraph.NewStore()
	if cfg.seedGP != nil {
		store.GP = cfg.seedGP.Clone()
	}

	return &Policy{reg: registry.New(), store: store}
}

// GraphKind identifies which of the three derived graphs ExportGraph
// returns.
type GraphKind int

const (
	// GraphPermissions selects G_P.
	GraphPermissions GraphKind = iota
	// GraphDemarcations selects G_D.
	GraphDemarcations
	// GraphRoles selects G_R.
	GraphRoles
)

// ExportGraph returns a read-only clone of the requested derived graph
// (a faithful copy at the moment of export, not a live view).
func (p *Policy) ExportGraph(which GraphKind) *graphset.Graph {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch which {
	case GraphDemarcations:
		return p.store.GD.Clone()
	case GraphRoles:
		return p.store.GR.Clone()
	default:
		return p.store.GP.Clone()
	}
}

// SeedPermissionEdge adds (p,q) to G_P. Construction-time only: call this
// before exposing the Policy to assignment operations.
func (p *Policy) SeedPermissionEdge(perm1, perm2 string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.SeedPermissionEdge(perm1, perm2); err != nil {
		return policyErrorf("SeedPermissionEdge", err)
	}

	return nil
}

func containsString(set []string, target string) bool {
	for _, s := range set {
		if s == target {
			return true
		}
	}

	return false
}

func removeString(set []string, target string) []string {
	out := make([]string, 0, len(set))
	for _, s := range set {
		if s != target {
			out = append(out, s)
		}
	}

	return out
}
