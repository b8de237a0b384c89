package ingestion

import "errors"

var (
	// ErrEventRepositoryRequired is returned when an event repository is not provided.
	ErrEventRepositoryRequired = errors.New("event repository required")

	// ErrCheckpointRepositoryRequired is returned when syncing without a checkpoint repository.
	ErrCheckpointRepositoryRequired = errors.New("checkpoint repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrMalformedDocument is returned for a JSONL line that cannot be decoded.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrEmbeddingMismatch is returned when the embedder returns the wrong number of vectors.
	ErrEmbeddingMismatch = errors.New("embedding result mismatch")
)
