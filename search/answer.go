package search

import (
	"context"
	"log/slog"

	"github.com/m2comLLM/llmtest/ai"
	"github.com/m2comLLM/llmtest/retrieval"
)

const (
	// NoMatchAnswer is returned without calling the model when nothing matched.
	NoMatchAnswer = "해당 조건에 맞는 문서를 찾을 수 없습니다."

	// BlankQuestionAnswer is returned for an empty question.
	BlankQuestionAnswer = "질문을 입력해주세요."
)

// Answer is a generated answer with the retrieval that grounded it.
type Answer struct {
	Text   string
	Result *Result // nil for a blank question
}

// Answerer turns questions into answers.
type Answerer struct {
	searcher  *Searcher
	generator ai.Generator
	logger    *slog.Logger
}

// NewAnswerer creates an answerer over searcher and generator.
func NewAnswerer(searcher *Searcher, generator ai.Generator) (*Answerer, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	return &Answerer{
		searcher:  searcher,
		generator: generator,
		logger:    searcher.logger.With("component", "answerer"),
	}, nil
}

// Ask answers question. The model is not called for a blank question or
// when no event matched.
func (a *Answerer) Ask(ctx context.Context, question string, monitor SearchMonitor) (*Answer, error) {
	if isBlank(question) {
		return &Answer{Text: BlankQuestionAnswer}, nil
	}

	result, err := a.searcher.SearchWithMonitor(ctx, question, monitor)
	if err != nil {
		return nil, err
	}
	if result.Empty() {
		a.logger.Info("no matching events", "question", result.Question)
		return &Answer{Text: NoMatchAnswer, Result: result}, nil
	}

	text, err := a.generator.GenerateAnswer(ctx, ai.AnswerRequest{
		Query:       result.Question,
		Context:     result.Bundle.Text,
		Description: result.Description,
		Shown:       result.Bundle.Shown,
		Total:       result.Bundle.Total,
		Filtered:    result.Path == retrieval.PathExact,
		Today:       result.Today,
	})
	if err != nil {
		a.logger.Error("answer generation failed", "err", err)
		return nil, err
	}
	return &Answer{Text: text, Result: result}, nil
}
