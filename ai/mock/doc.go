// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.Generator
// and ai.AIProvider for use in unit tests. The mocks allow tests to run without
// external AI service dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	mockProvider := mock.NewMockProvider()
//	vec, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	gen := mock.NewMockGenerator()
//	gen.GenerateAnswerFunc = func(ctx context.Context, req ai.AnswerRequest) (string, error) {
//	    return "세미나 2건", nil
//	}
//	count := gen.CallCount()
//
// # Default Behavior
//
//   - MockEmbedder: Returns deterministic unit vectors based on text hash
//   - MockGenerator: Echoes the match counts and the query
//   - MockProvider: Aggregates mock embedder and generator
package mock
