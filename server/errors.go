package server

import "errors"

var (
	// ErrAnswererRequired is returned when an answerer is not provided.
	ErrAnswererRequired = errors.New("answerer required")

	// ErrSearcherRequired is returned when a searcher is not provided.
	ErrSearcherRequired = errors.New("searcher required")

	// ErrSyncerRequired is returned when a sync schedule has no syncer.
	ErrSyncerRequired = errors.New("syncer required for scheduled sync")
)
