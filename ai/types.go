package ai

import "github.com/m2comLLM/llmtest/core"

// AnswerRequest is everything a Generator needs to answer one question.
type AnswerRequest struct {
	// Query is the user's original question.
	Query string

	// Context is the numbered bundle of matching events.
	Context string

	// Description lists the filters applied, e.g. "[적용된 필터: 2025년]".
	// Informational only; may be empty.
	Description string

	// Shown and Total report how many of the matches appear in Context.
	Shown int
	Total int

	// Filtered is true when Context came from exact filtering rather than
	// similarity search, which selects the stricter prompt.
	Filtered bool

	// Today anchors every relative date in the prompt.
	Today core.DateInt
}
