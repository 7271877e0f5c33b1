// ABOUTME: Tests for the compact byte-to-edge map
// ABOUTME: Covers put/get semantics, replacement and the sorted regime

package suffixtree

import "testing"

func TestEdgeMapPutGet(t *testing.T) {
	var m edgeMap

	e1 := newEdge("asd", nil, nil)
	e2 := newEdge("errimo", nil, nil)
	e3 := newEdge("foo", nil, nil)
	e4 := newEdge("bar", nil, nil)

	m.put('a', e1)
	m.put('e', e2)
	m.put('f', e3)
	m.put('b', e4)

	if m.size() != 4 {
		t.Errorf("Expected size 4, got %d", m.size())
	}
	if m.get('a') != e1 || m.get('e') != e2 || m.get('f') != e3 || m.get('b') != e4 {
		t.Error("Stored edges do not round-trip")
	}
	if m.get('z') != nil {
		t.Error("Expected nil for missing key")
	}
}

func TestEdgeMapReplace(t *testing.T) {
	var m edgeMap

	e1 := newEdge("one", nil, nil)
	e2 := newEdge("other", nil, nil)

	if prev := m.put('o', e1); prev != nil {
		t.Errorf("Expected nil previous edge, got %v", prev)
	}
	if prev := m.put('o', e2); prev != e1 {
		t.Errorf("Expected replaced edge, got %v", prev)
	}
	if m.get('o') != e2 {
		t.Error("Replacement did not stick")
	}
	if m.size() != 1 {
		t.Errorf("Expected size 1 after replace, got %d", m.size())
	}
}

func TestEdgeMapBeyondThreshold(t *testing.T) {
	var m edgeMap

	// push well past the binary-search threshold, inserting in reverse order
	chars := "zyxwvutsrqponmlkjihgfedcba9876543210"
	edges := make(map[byte]*Edge, len(chars))
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		e := newEdge(string(c), nil, nil)
		edges[c] = e
		m.put(c, e)
	}

	if m.size() != len(chars) {
		t.Fatalf("Expected size %d, got %d", len(chars), m.size())
	}
	for c, want := range edges {
		if got := m.get(c); got != want {
			t.Errorf("get(%q) returned the wrong edge", c)
		}
	}
	if m.get('#') != nil {
		t.Error("Expected nil for missing key in sorted regime")
	}
	if len(m.values()) != len(chars) {
		t.Errorf("values() returned %d edges, want %d", len(m.values()), len(chars))
	}
}

func TestEdgeMapEmpty(t *testing.T) {
	var m edgeMap

	if !m.empty() {
		t.Error("Fresh map should be empty")
	}
	if m.size() != 0 {
		t.Errorf("Fresh map size = %d, want 0", m.size())
	}
	if m.get('a') != nil {
		t.Error("Expected nil from empty map")
	}

	m.put('a', newEdge("a", nil, nil))
	if m.empty() {
		t.Error("Map with one edge should not be empty")
	}
}
