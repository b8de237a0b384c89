package metrics

import (
	"time"

	"github.com/m2comLLM/llmtest/filter"
	"github.com/m2comLLM/llmtest/query"
	"github.com/m2comLLM/llmtest/retrieval"
	"github.com/m2comLLM/llmtest/search"
)

// Outcome label values.
const (
	OutcomeMatched = "matched"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
)

// Monitor records one question into Metrics. Not safe for reuse across
// concurrent questions.
type Monitor struct {
	metrics *Metrics
	started time.Time
	path    string
}

var _ search.SearchMonitor = (*Monitor)(nil)

func (m *Monitor) Start(_ string) {
	m.started = time.Now()
	m.path = "none"
}

func (m *Monitor) AfterParse(_ query.Intent) {}

func (m *Monitor) AfterBuild(result filter.Result) {
	if m.metrics == nil {
		return
	}
	m.metrics.conditions.Observe(float64(len(result.Native)))
}

func (m *Monitor) AfterRetrieval(path retrieval.Path, _ int) {
	m.path = path.String()
}

func (m *Monitor) AfterPostFilter(_ int) {}

func (m *Monitor) Finish(result *search.Result) {
	if m.metrics == nil {
		return
	}
	outcome := OutcomeMatched
	if result.Empty() {
		outcome = OutcomeEmpty
	}
	m.metrics.searches.WithLabelValues(m.path, outcome).Inc()
	m.metrics.searchDuration.WithLabelValues(m.path).Observe(time.Since(m.started).Seconds())
	m.metrics.searchResults.WithLabelValues(m.path).Observe(float64(len(result.Records)))
}

func (m *Monitor) Failed(_ error) {
	if m.metrics == nil {
		return
	}
	m.metrics.searches.WithLabelValues(m.path, OutcomeError).Inc()
}
