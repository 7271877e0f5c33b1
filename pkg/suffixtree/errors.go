// Package suffixtree implements an in-memory generalized suffix tree that
// indexes a set of documents for exact substring lookup and approximate
// document similarity
package suffixtree

import "errors"

var (
	// ErrIndexOrder indicates an Insert with an id lower than a previously inserted one
	ErrIndexOrder = errors.New("suffixtree: document ids must be non-decreasing")

	// ErrNotAggregated indicates a query that requires Aggregate to have run
	ErrNotAggregated = errors.New("suffixtree: index not aggregated")

	// ErrInvalidRatio indicates a similarity ratio outside (0, 1)
	ErrInvalidRatio = errors.New("suffixtree: ratio must be inside (0, 1)")
)
