package retrieval

import (
	"context"

	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/filter"
)

// ExactStore returns every record satisfying a predicate.
// A nil predicate means no constraint.
type ExactStore interface {
	FetchAll(ctx context.Context, pred filter.Predicate) ([]*core.EventRecord, error)
}

// SimilarityStore returns at most k records most similar to text,
// best first.
type SimilarityStore interface {
	SearchTopK(ctx context.Context, text string, k int) ([]*core.EventRecord, error)
}

// Path identifies which store served a retrieval.
type Path int

const (
	PathExact Path = iota
	PathSimilarity
)

func (p Path) String() string {
	switch p {
	case PathExact:
		return "exact"
	case PathSimilarity:
		return "similarity"
	default:
		return "unknown"
	}
}
