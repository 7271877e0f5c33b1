// ABOUTME: Tests for the similarity traversal
// ABOUTME: Covers the paper example, ratio validation and soundness against a DP oracle

package suffixtree

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/nainya/gstindex/pkg/strutil"
)

// The eight place-name strings from the paper example.
var paperDocs = []string{
	"libertypike",
	"franklintn",
	"carothersjohnhenryhouse",
	"carothersezealhouse",
	"acrossthetauntonriverfromdightonindightonrockstatepark",
	"dightonma",
	"dightonrock",
	"bethesda",
}

func paperTree(t *testing.T) *Tree {
	t.Helper()
	tree := New()
	for i, doc := range paperDocs {
		if err := tree.Insert(doc, i); err != nil {
			t.Fatalf("Insert(%q, %d) failed: %v", doc, i, err)
		}
	}
	tree.Aggregate()
	return tree
}

func TestSimilarPaperExample(t *testing.T) {
	tree := paperTree(t)

	ids, err := tree.Similar("carothersezealhouse", 0.3)
	if err != nil {
		t.Fatalf("Similar failed: %v", err)
	}

	if !containsID(ids, 2) {
		t.Errorf("Expected id 2 (carothersjohnhenryhouse) in %v", ids)
	}
	if !containsID(ids, 3) {
		t.Errorf("Expected id 3 (self match) in %v", ids)
	}
	if containsID(ids, 7) {
		t.Errorf("Did not expect id 7 (bethesda) in %v", ids)
	}
}

func TestSimilarSelfMatch(t *testing.T) {
	tree := paperTree(t)

	for i, doc := range paperDocs {
		ids, err := tree.Similar(doc, 0.9)
		if err != nil {
			t.Fatalf("Similar(%q) failed: %v", doc, err)
		}
		if !containsID(ids, i) {
			t.Errorf("Similar(%q, 0.9) = %v, want it to contain %d", doc, ids, i)
		}
	}
}

func TestSimilarRatioValidation(t *testing.T) {
	tree := paperTree(t)

	for _, ratio := range []float64{0, 1, -0.5, 1.5} {
		if _, err := tree.Similar("dighton", ratio); !errors.Is(err, ErrInvalidRatio) {
			t.Errorf("Similar with ratio %v: got %v, want ErrInvalidRatio", ratio, err)
		}
	}
}

func TestSimilarMissingQuery(t *testing.T) {
	tree := paperTree(t)

	ids, err := tree.Similar("zzzz", 0.3)
	if err != nil {
		t.Fatalf("Similar failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Similar for an unindexed query = %v, want empty", ids)
	}
}

// Every id the traversal returns must satisfy the similarity inequality when
// recomputed with the direct DP routine.
func TestSimilarSoundness(t *testing.T) {
	tree := paperTree(t)

	for _, ratio := range []float64{0.2, 0.3, 0.5, 0.8} {
		for _, q := range paperDocs {
			ids, err := tree.Similar(q, ratio)
			if err != nil {
				t.Fatalf("Similar(%q, %v) failed: %v", q, ratio, err)
			}
			for _, id := range ids {
				doc, ok := tree.Document(id)
				if !ok {
					t.Fatalf("Similar returned unknown id %d", id)
				}
				if !strutil.Similar(q, doc, ratio) {
					t.Errorf("Similar(%q, %v) returned %d (%q), which fails the inequality",
						q, ratio, id, doc)
				}
			}
		}
	}
}

func TestSimilarRandomizedSoundness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := "abcd"

	randomKey := func() string {
		n := 3 + rng.Intn(15)
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		return b.String()
	}

	for round := 0; round < 10; round++ {
		tree := New()
		keys := make([]string, 0, 6)
		for i := 0; i < 6; i++ {
			key := randomKey()
			keys = append(keys, key)
			if err := tree.Insert(key, i); err != nil {
				t.Fatalf("Insert failed: %v", err)
			}
		}
		tree.Aggregate()

		for _, q := range keys {
			for _, ratio := range []float64{0.3, 0.6, 0.9} {
				ids, err := tree.Similar(q, ratio)
				if err != nil {
					t.Fatalf("Similar failed: %v", err)
				}
				for _, id := range ids {
					if !strutil.Similar(q, keys[id], ratio) {
						t.Errorf("round %d: Similar(%q, %v) returned %d (%q) which fails the inequality",
							round, q, ratio, id, keys[id])
					}
				}
			}
		}
	}
}
