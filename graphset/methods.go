package graphset

import "sort"

// AddNode inserts node id as an isolated vertex. Idempotent: adding an
// existing node is a no-op. Returns ErrEmptyNodeID for the empty string.
// Complexity: O(1).
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return nil
	}
	g.nodes[id] = struct{}{}
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// HasNode reports whether id is present in the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// RemoveNode deletes id and every edge incident to it.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(deg(id)).
func (g *Graph) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}
	for nbr := range g.adjacency[id] {
		delete(g.adjacency[nbr], id)
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)

	return nil
}

// AddEdge connects u and v. Idempotent: re-adding an existing edge is a
// no-op. Both endpoints are added as nodes first if missing.
// Returns ErrEmptyNodeID or ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNodeLocked(u)
	g.ensureNodeLocked(v)
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}

	return nil
}

// RemoveEdge disconnects u and v, if connected. Removing a non-existent
// edge is a no-op: callers that need to distinguish "was never there" use
// HasEdge first (the policy layer's RelationMissing errors are about
// assignment relations, not raw graph edges).
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if adj, ok := g.adjacency[u]; ok {
		delete(adj, v)
	}
	if adj, ok := g.adjacency[v]; ok {
		delete(adj, u)
	}
}

// HasEdge reports whether u and v are directly connected.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[u]
	if !ok {
		return false
	}
	_, connected := adj[v]

	return connected
}

// Neighbors returns the sorted IDs of nodes directly connected to id.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(deg(id)·log(deg(id))).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]string, 0, len(adj))
	for nbr := range adj {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// Nodes returns all node IDs in sorted order.
// Complexity: O(V·log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns all edges, each endpoint pair normalized with A <= B and
// the overall slice sorted, so two structurally identical graphs always
// produce identical output.
// Complexity: O(V+E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[[2]string]struct{})
	out := make([]Edge, 0)
	for u, adj := range g.adjacency {
		for v := range adj {
			a, b := u, v
			if a > b {
				a, b = b, a
			}
			key := [2]string{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, Edge{A: a, B: b})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Clone returns a deep copy of the graph, used by the policy layer to
// compute candidate G_D/G_R deltas without mutating the committed graphs
// (see DESIGN.md's candidate-then-commit note).
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := New()
	for id := range g.nodes {
		clone.nodes[id] = struct{}{}
		clone.adjacency[id] = make(map[string]struct{}, len(g.adjacency[id]))
	}
	for u, adj := range g.adjacency {
		for v := range adj {
			clone.adjacency[u][v] = struct{}{}
		}
	}

	return clone
}

// ensureNodeLocked adds id as a node if absent. Caller must hold g.mu.
func (g *Graph) ensureNodeLocked(id string) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = struct{}{}
		g.adjacency[id] = make(map[string]struct{})
	}
}
