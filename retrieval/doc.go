// Package retrieval chooses between exact filtered retrieval and semantic
// top-K retrieval for a parsed question.
//
// A question whose predicate has any condition, or that names a location,
// goes to the ExactStore and receives every match. Anything else goes to
// the SimilarityStore and receives at most K records.
package retrieval
