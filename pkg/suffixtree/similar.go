// ABOUTME: Approximate document similarity via suffix-link and ancestor walks
// ABOUTME: Scores candidates with cached path lengths against a ratio threshold

package suffixtree

import "fmt"

// Similar returns the sorted ids of documents s satisfying
//
//	2*lcs(q, s) / (len(q) + len(s)) > ratio
//
// where lcs is the length of the longest common substring. The ratio must lie
// inside (0, 1), and Aggregate must have run since the last Insert.
//
// Starting from the node reached by q, the walk follows suffix links to each
// maximal substring of q present in the tree, and from each of those walks
// parents toward the root. Every node visited spells a string shared by all
// documents aggregated below it; when q ends inside an edge label that string
// runs past the end of q, so the scored length is the path length capped at
// the part that lies inside q. That capped length is a lower bound on the true
// longest common substring; nodes at or below the minimum useful length are
// pruned.
func (t *Tree) Similar(q string, ratio float64) ([]int, error) {
	if ratio <= 0 || ratio >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}
	if !t.aggregated {
		return nil, ErrNotAggregated
	}

	minLen := int(float64(len(q)) * ratio / 2)

	result := make(map[int]struct{})
	k := 0
	for sn := t.searchNode(q); sn != nil && sn.pathLen > minLen; sn, k = sn.suffix, k+1 {
		// after k suffix links the walk starts at q[k:], so at most len(q)-k
		// bytes of any path visited from here lie inside q
		inQ := len(q) - k
		for a := sn; a != nil && a.pathLen > minLen; a = a.SourceNode() {
			shared := a.pathLen
			if shared > inQ {
				shared = inQ
			}
			for _, id := range a.aggIDs {
				sim := 2 * float64(shared) / float64(len(q)+len(t.documents[id]))
				if sim > ratio {
					result[id] = struct{}{}
				}
			}
		}
	}

	return sortedIDs(result), nil
}
