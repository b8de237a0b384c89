// Package server exposes the question pipeline over HTTP.
//
// Routes:
//
//	POST /api/v1/ask          answer a question
//	GET  /api/v1/events?q=    matched events without generation
//	GET  /api/v1/events.ics?q= matched events as an iCalendar feed
//	GET  /healthz             liveness and stored event count
//	GET  /metrics             Prometheus metrics
//
// When a sync schedule is configured the docs directory is re-ingested on
// that cron schedule while the server runs.
package server
