// Package reembed regenerates the vectors of every stored event, typically
// after switching embedding models.
//
// Events are streamed in batches, embedded with retry and exponential
// backoff, normalized to unit length and written back. Records themselves
// are never modified, so exact retrieval is unaffected while it runs.
package reembed
