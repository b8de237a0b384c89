package search

import (
	"github.com/m2comLLM/llmtest/filter"
	"github.com/m2comLLM/llmtest/query"
	"github.com/m2comLLM/llmtest/retrieval"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(question string)
	AfterParse(intent query.Intent)
	AfterBuild(result filter.Result)
	AfterRetrieval(path retrieval.Path, count int)
	AfterPostFilter(count int)
	Finish(result *Result)
	Failed(err error)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                         {}
func (n *noopMonitor) AfterParse(_ query.Intent)              {}
func (n *noopMonitor) AfterBuild(_ filter.Result)             {}
func (n *noopMonitor) AfterRetrieval(_ retrieval.Path, _ int) {}
func (n *noopMonitor) AfterPostFilter(_ int)                  {}
func (n *noopMonitor) Finish(_ *Result)                       {}
func (n *noopMonitor) Failed(_ error)                         {}
