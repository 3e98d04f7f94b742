package graphset

// InducedConnected reports whether the subgraph induced by nodes forms a
// single connected component of g. Per spec, the empty set and singleton
// sets are trivially connected; nodes not present in g are ignored rather
// than treated as an error, since callers pass candidate role/demarcation
// sets that may reference an entity the graph hasn't caught up with yet
// (e.g. mid check-then-commit).
//
// Implementation: BFS from an arbitrary member of nodes, restricted to
// traversing only edges whose far endpoint is also in nodes. Connected iff
// every (present) member of nodes was visited.
//
// Complexity: O(|nodes| + incident-edges-in-nodes), adapted from bfs.BFS's
// queue-based walk with the hook/depth machinery stripped, since this
// primitive needs neither.
func (g *Graph) InducedConnected(nodes []string) bool {
	present := make([]string, 0, len(nodes))
	inSet := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		if !g.HasNode(id) {
			continue
		}
		if _, dup := inSet[id]; dup {
			continue
		}
		inSet[id] = struct{}{}
		present = append(present, id)
	}

	if len(present) <= 1 {
		return true
	}

	visited := make(map[string]struct{}, len(present))
	queue := []string{present[0]}
	visited[present[0]] = struct{}{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		nbrs, err := g.Neighbors(cur)
		if err != nil {
			continue
		}
		for _, nbr := range nbrs {
			if _, ok := inSet[nbr]; !ok {
				continue
			}
			if _, ok := visited[nbr]; ok {
				continue
			}
			visited[nbr] = struct{}{}
			queue = append(queue, nbr)
		}
	}

	return len(visited) == len(present)
}
