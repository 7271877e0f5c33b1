// ABOUTME: Construction and exact-search tests for the generalized suffix tree
// ABOUTME: Covers basic scenarios, id ordering and structural invariants

package suffixtree

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/nainya/gstindex/pkg/strutil"
)

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestBasicSubstring(t *testing.T) {
	tree := New()
	if err := tree.Insert("cacao", 0); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	for _, q := range []string{"ca", "cao", "aca", "cacao", "o"} {
		ids := tree.Search(q)
		if len(ids) != 1 || ids[0] != 0 {
			t.Errorf("Search(%q) = %v, want [0]", q, ids)
		}
	}

	if ids := tree.Search("xyz"); len(ids) != 0 {
		t.Errorf("Search(%q) = %v, want empty", "xyz", ids)
	}
	if ids := tree.Search("caco"); len(ids) != 0 {
		t.Errorf("Search(%q) = %v, want empty", "caco", ids)
	}
}

func TestSearchAllSubstrings(t *testing.T) {
	key := "cacao"
	tree := New()
	if err := tree.Insert(key, 0); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	for sub := range strutil.Substrings(key) {
		if n := tree.searchNode(sub); n == nil {
			t.Errorf("searchNode(%q) = nil, want a node", sub)
		}
		ids := tree.Search(sub)
		if !containsID(ids, 0) {
			t.Errorf("Search(%q) = %v, want it to contain 0", sub, ids)
		}
	}
}

func TestOrderViolation(t *testing.T) {
	tree := New()
	if err := tree.Insert("a", 5); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	err := tree.Insert("b", 3)
	if err == nil {
		t.Fatal("Expected an ordering error")
	}
	if !errors.Is(err, ErrIndexOrder) {
		t.Errorf("Expected ErrIndexOrder, got %v", err)
	}

	// equal ids are allowed and extend the document set
	if err := tree.Insert("c", 5); err != nil {
		t.Errorf("Insert with equal id failed: %v", err)
	}
}

func TestSingleCharAndEmptyQuery(t *testing.T) {
	tree := New()
	if err := tree.Insert("a", 0); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if ids := tree.Search("a"); len(ids) != 1 || ids[0] != 0 {
		t.Errorf("Search(%q) = %v, want [0]", "a", ids)
	}
	// the empty query is defined to return the empty set
	if ids := tree.Search(""); len(ids) != 0 {
		t.Errorf("Search(\"\") = %v, want empty", ids)
	}
}

func TestDocumentTable(t *testing.T) {
	tree := New()
	tree.Insert("banana", 0)
	tree.Insert("ananas", 1)

	if doc, ok := tree.Document(0); !ok || doc != "banana" {
		t.Errorf("Document(0) = %q, %v", doc, ok)
	}
	if doc, ok := tree.Document(1); !ok || doc != "ananas" {
		t.Errorf("Document(1) = %q, %v", doc, ok)
	}
	if _, ok := tree.Document(7); ok {
		t.Error("Document(7) should not exist")
	}
	if tree.DocumentCount() != 2 {
		t.Errorf("DocumentCount = %d, want 2", tree.DocumentCount())
	}
}

// checkStructure walks the whole tree and verifies the structural invariants:
// non-empty labels, unique first bytes per node, depth consistency and
// back-edge consistency.
func checkStructure(t *testing.T, tree *Tree) {
	t.Helper()

	queue := []*Node{tree.root}
	count := 0
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		count++

		seen := make(map[byte]bool)
		for _, e := range n.Edges() {
			if len(e.Label()) == 0 {
				t.Fatal("Empty edge label")
			}
			first := e.Label()[0]
			if seen[first] {
				t.Fatalf("Two edges starting with %q at the same node", first)
			}
			seen[first] = true

			if e.Source() != n {
				t.Fatal("Edge source does not match owning node")
			}
			if n.Edge(first) != e {
				t.Fatal("Edge not retrievable by its first byte")
			}

			dest := e.Dest()
			if dest.SourceEdge() != e {
				t.Fatal("Destination back-edge does not match")
			}
			if dest.SubstringLength() != n.SubstringLength()+len(e.Label()) {
				t.Fatalf("Depth mismatch: %d != %d + %d",
					dest.SubstringLength(), n.SubstringLength(), len(e.Label()))
			}
			queue = append(queue, dest)
		}
	}

	if count != tree.NodeCount() {
		t.Errorf("Walked %d nodes but NodeCount reports %d", count, tree.NodeCount())
	}
	if tree.root.SubstringLength() != 0 {
		t.Errorf("Root depth = %d, want 0", tree.root.SubstringLength())
	}
}

func TestStructuralInvariants(t *testing.T) {
	tree := New()
	for i, key := range []string{"banana", "ananas", "bandana", "cacao", "bananas"} {
		if err := tree.Insert(key, i); err != nil {
			t.Fatalf("Insert(%q, %d) failed: %v", key, i, err)
		}
		checkStructure(t, tree)
	}
}

func TestRandomizedSubstringSoundness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := "abc"

	randomKey := func() string {
		n := 1 + rng.Intn(12)
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		return b.String()
	}

	for round := 0; round < 20; round++ {
		tree := New()
		keys := make([]string, 0, 8)
		for i := 0; i < 8; i++ {
			key := randomKey()
			keys = append(keys, key)
			if err := tree.Insert(key, i); err != nil {
				t.Fatalf("Insert(%q, %d) failed: %v", key, i, err)
			}
		}
		checkStructure(t, tree)
		tree.Aggregate()

		// every substring of every key must resolve to its id, and search must
		// return exactly the ids of the documents containing the query
		queries := make(map[string]struct{})
		for _, key := range keys {
			for sub := range strutil.Substrings(key) {
				queries[sub] = struct{}{}
			}
		}
		queries["zz"] = struct{}{}

		for q := range queries {
			want := make(map[int]bool)
			for id, key := range keys {
				if strings.Contains(key, q) {
					want[id] = true
				}
			}

			got := tree.Search(q)
			if len(got) != len(want) {
				t.Fatalf("round %d: Search(%q) = %v, want ids of %v", round, q, got, want)
			}
			for _, id := range got {
				if !want[id] {
					t.Fatalf("round %d: Search(%q) returned unexpected id %d (keys %q)", round, q, id, keys)
				}
			}
		}
	}
}

func TestRepeatedInsertSameDocument(t *testing.T) {
	tree := New()
	tree.Insert("abab", 0)
	tree.Insert("abab", 0)
	tree.Aggregate()

	for _, q := range []string{"a", "ab", "bab", "abab"} {
		ids := tree.Search(q)
		if len(ids) != 1 || ids[0] != 0 {
			t.Errorf("Search(%q) = %v, want [0]", q, ids)
		}
	}
}

func TestManyDocuments(t *testing.T) {
	tree := New()
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("doc%03dpayload", i)
		if err := tree.Insert(key, i); err != nil {
			t.Fatalf("Insert %d failed: %v", i, err)
		}
	}
	tree.Aggregate()

	// "payload" occurs in every document
	ids := tree.Search("payload")
	if len(ids) != 100 {
		t.Fatalf("Search(\"payload\") returned %d ids, want 100", len(ids))
	}
	for i, id := range ids {
		if id != i {
			t.Fatalf("Expected sorted ids, got %v...", ids[:i+1])
		}
	}

	// each prefix is unique to its document
	for _, i := range []int{0, 17, 99} {
		q := fmt.Sprintf("doc%03dp", i)
		ids := tree.Search(q)
		if len(ids) != 1 || ids[0] != i {
			t.Errorf("Search(%q) = %v, want [%d]", q, ids, i)
		}
	}
}
