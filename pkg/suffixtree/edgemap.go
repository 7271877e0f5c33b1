// ABOUTME: Compact byte-to-edge map backed by parallel arrays
// ABOUTME: Linear scan at small fan-out, insertion sort plus binary search beyond

package suffixtree

import "sort"

// Fan-out above which the arrays are kept sorted and binary-searched.
const bsearchThreshold = 6

// edgeMap maps the first byte of an edge label to the outgoing edge.
// Most nodes carry only a handful of edges, so two parallel arrays use far
// less memory than a per-node hash map.
type edgeMap struct {
	chars []byte
	edges []*Edge
}

// get returns the edge whose label starts with c, or nil.
func (m *edgeMap) get(c byte) *Edge {
	idx := m.search(c)
	if idx < 0 {
		return nil
	}
	return m.edges[idx]
}

// put inserts or replaces the edge under c and returns the previous edge, if any.
func (m *edgeMap) put(c byte, e *Edge) *Edge {
	idx := m.search(c)
	if idx >= 0 {
		prev := m.edges[idx]
		m.edges[idx] = e
		return prev
	}

	m.chars = append(m.chars, c)
	m.edges = append(m.edges, e)
	if len(m.chars) > bsearchThreshold {
		m.sortArrays()
	}
	return nil
}

func (m *edgeMap) search(c byte) int {
	if len(m.chars) > bsearchThreshold {
		idx := sort.Search(len(m.chars), func(i int) bool { return m.chars[i] >= c })
		if idx < len(m.chars) && m.chars[idx] == c {
			return idx
		}
		return -1
	}

	for i, ch := range m.chars {
		if ch == c {
			return i
		}
	}
	return -1
}

// sortArrays sorts chars and keeps edges aligned. Insertion sort is enough:
// the map never grows past a few dozen entries.
func (m *edgeMap) sortArrays() {
	for i := 1; i < len(m.chars); i++ {
		for j := i; j > 0 && m.chars[j-1] > m.chars[j]; j-- {
			m.chars[j-1], m.chars[j] = m.chars[j], m.chars[j-1]
			m.edges[j-1], m.edges[j] = m.edges[j], m.edges[j-1]
		}
	}
}

// values returns the stored edges in storage order. The slice is shared with
// the map; callers must not modify it.
func (m *edgeMap) values() []*Edge {
	return m.edges
}

func (m *edgeMap) size() int {
	return len(m.chars)
}

func (m *edgeMap) empty() bool {
	return len(m.chars) == 0
}
