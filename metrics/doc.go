// Package metrics exposes Prometheus instrumentation for the question
// pipeline, ingestion and the HTTP API.
//
// Each question gets its own Monitor, which implements search.SearchMonitor
// and records into the shared Metrics collectors.
package metrics
