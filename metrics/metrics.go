// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eventqa"

// Metrics owns a private registry and the collectors registered on it.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	searches        *prometheus.CounterVec
	searchDuration  *prometheus.HistogramVec
	searchResults   *prometheus.HistogramVec
	conditions      prometheus.Histogram
	ingestedEvents  prometheus.Counter
	storedEvents    prometheus.Gauge
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	searches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Questions answered, by retrieval path and outcome",
	}, []string{"path", "outcome"})

	searchDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Time from question to assembled context",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path"})

	searchResults := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_results",
		Help:      "Events surviving post-filtering per question",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100, 250},
	}, []string{"path"})

	conditions := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "filter_conditions",
		Help:      "Conditions in the store-native predicate per question",
		Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 8},
	})

	ingestedEvents := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingested_events_total",
		Help:      "Events written by ingestion runs",
	})

	storedEvents := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stored_events",
		Help:      "Events in the store after the last ingestion",
	})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	registry.MustRegister(searches, searchDuration, searchResults, conditions,
		ingestedEvents, storedEvents, requestDuration, requestTotal)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		searches:        searches,
		searchDuration:  searchDuration,
		searchResults:   searchResults,
		conditions:      conditions,
		ingestedEvents:  ingestedEvents,
		storedEvents:    storedEvents,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the Prometheus HTTP handler.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records one served request. route is the route
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, route, code).Inc()
}

// ObserveIngest records an ingestion run that stored n events leaving total in the store.
func (m *Metrics) ObserveIngest(stored, total int) {
	if m == nil {
		return
	}
	m.ingestedEvents.Add(float64(stored))
	m.storedEvents.Set(float64(total))
}

// NewSearchMonitor returns a monitor for a single question.
func (m *Metrics) NewSearchMonitor() *Monitor {
	return &Monitor{metrics: m}
}
