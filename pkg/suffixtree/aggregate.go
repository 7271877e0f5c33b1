// ABOUTME: Bottom-up aggregation of document ids from leaves to ancestors
// ABOUTME: Builds the breadth-first node ordering and per-node id sets

package suffixtree

// Aggregate materializes, for every node, the deduplicated sorted set of
// document ids reachable at or below it. It must run after all inserts and
// before Similar; a later Insert invalidates it.
func (t *Tree) Aggregate() {
	// breadth-first ordering guarantees children come after their parent,
	// so a reverse sweep sees every child before its parent
	t.nodes = t.nodes[:0]
	t.nodes = append(t.nodes, t.root)
	for i := 0; i < len(t.nodes); i++ {
		for _, e := range t.nodes[i].edges.values() {
			t.nodes = append(t.nodes, e.dest)
		}
	}

	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := t.nodes[i]
		set := make(map[int]struct{}, len(n.ownIDs))
		for _, id := range n.ownIDs {
			set[id] = struct{}{}
		}
		for _, e := range n.edges.values() {
			for _, id := range e.dest.aggIDs {
				set[id] = struct{}{}
			}
		}
		n.setAggregatedIDs(sortedIDs(set))
	}

	t.aggregated = true
}

// Nodes returns the breadth-first node ordering produced by the last
// Aggregate call. Intended for debugging and tests.
func (t *Tree) Nodes() ([]*Node, error) {
	if !t.aggregated {
		return nil, ErrNotAggregated
	}
	return t.nodes, nil
}
