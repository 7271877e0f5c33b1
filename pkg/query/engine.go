// ABOUTME: Query engine over the generalized suffix tree
// ABOUTME: Handles normalization, locking and result assembly

package query

import (
	"sync"

	"github.com/nainya/gstindex/pkg/strutil"
	"github.com/nainya/gstindex/pkg/suffixtree"
)

// Engine wraps a suffix tree with input normalization and read/write locking.
// The tree itself is single-owner; the engine serializes writers so that a
// frozen, aggregated index can serve any number of concurrent readers.
type Engine struct {
	mu        sync.RWMutex
	tree      *suffixtree.Tree
	originals map[int]string
	normalize bool
}

// NewEngine creates an engine over an empty tree. When normalize is set,
// every inserted document and every query is lowercased and stripped of
// non-alphanumeric bytes before it reaches the tree.
func NewEngine(normalize bool) *Engine {
	return &Engine{
		tree:      suffixtree.New(),
		originals: make(map[int]string),
		normalize: normalize,
	}
}

func (e *Engine) prepare(s string) string {
	if e.normalize {
		return strutil.Normalize(s)
	}
	return s
}

// Insert indexes text under the given document id. Ids must be
// non-decreasing across calls.
func (e *Engine) Insert(text string, id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.tree.Insert(e.prepare(text), id); err != nil {
		return err
	}
	e.originals[id] = text
	return nil
}

// Aggregate fixes the per-node id sets. Required before Similar.
func (e *Engine) Aggregate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tree.Aggregate()
}

// Search returns the documents containing q as a substring.
func (e *Engine) Search(q string) []Result {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.results(e.tree.Search(e.prepare(q)))
}

// Similar returns the documents whose similarity with q exceeds ratio.
func (e *Engine) Similar(q string, ratio float64) ([]Result, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ids, err := e.tree.Similar(e.prepare(q), ratio)
	if err != nil {
		return nil, err
	}
	return e.results(ids), nil
}

// Document returns the original text inserted under id.
func (e *Engine) Document(id int) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	doc, ok := e.originals[id]
	return doc, ok
}

// Stats returns the current index statistics.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Stats{
		Documents:  e.tree.DocumentCount(),
		Nodes:      e.tree.NodeCount(),
		Aggregated: e.tree.Aggregated(),
	}
}

func (e *Engine) results(ids []int) []Result {
	out := make([]Result, 0, len(ids))
	for _, id := range ids {
		out = append(out, Result{ID: id, Document: e.originals[id]})
	}
	return out
}
