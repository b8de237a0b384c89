// Package ingestion turns event source files into stored, embedded event records.
//
// A Loader reads CSV event tables, JSONL documents and Markdown notes from a
// directory tree and derives the normalized fields every record carries:
// category, date integers, weekday, registration window, duration, location
// and the answer template. A Pipeline validates those records, stores them
// and embeds their display text in parallel batches.
package ingestion
