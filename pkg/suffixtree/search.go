// ABOUTME: Exact substring search by root-anchored descent
// ABOUTME: Matches a query against edge labels and returns document ids

package suffixtree

import "sort"

// Search returns the sorted set of ids of documents that contain q as a
// substring. The empty query returns nil.
//
// After Aggregate, the result is read straight off the terminal node. Before
// aggregation the id set is gathered on the fly from the node's subtree.
func (t *Tree) Search(q string) []int {
	n := t.searchNode(q)
	if n == nil {
		return nil
	}

	if t.aggregated {
		return append([]int(nil), n.aggIDs...)
	}

	set := make(map[int]struct{})
	collectOwnIDs(n, set)
	return sortedIDs(set)
}

// searchNode walks from the root consuming q against edge labels and returns
// the node whose path label extends q, or nil when q is not in the tree.
func (t *Tree) searchNode(q string) *Node {
	cur := t.root
	for i := 0; i < len(q); {
		e := cur.edges.get(q[i])
		if e == nil {
			return nil
		}

		label := e.label
		toMatch := len(q) - i
		if len(label) < toMatch {
			toMatch = len(label)
		}
		if q[i:i+toMatch] != label[:toMatch] {
			return nil
		}

		if len(label) >= len(q)-i {
			return e.dest
		}

		cur = e.dest
		i += toMatch
	}
	return nil
}

func collectOwnIDs(n *Node, set map[int]struct{}) {
	for _, id := range n.ownIDs {
		set[id] = struct{}{}
	}
	for _, e := range n.edges.values() {
		collectOwnIDs(e.dest, set)
	}
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
