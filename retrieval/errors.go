package retrieval

import "errors"

var (
	// ErrExactStoreRequired is returned when an exact store is not provided.
	ErrExactStoreRequired = errors.New("exact store required")

	// ErrSimilarityStoreRequired is returned when a similarity store is not provided.
	ErrSimilarityStoreRequired = errors.New("similarity store required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrRepositoryRequired is returned when a repository is not provided.
	ErrRepositoryRequired = errors.New("repository required")
)
