package badger

import (
	"encoding/binary"

	"github.com/m2comLLM/llmtest/core"
)

const (
	eventRecordPrefix = "evrec:"
	eventDatePrefix   = "evdate:"
	eventVectorPrefix = "evvec:"
	checkpointPrefix  = "chkpt:"
)

// undatedSortKey places events without a start date after every real date
// in the date index.
const undatedSortKey = 99999999

// makeEventRecordKey generates the primary key for an event.
func makeEventRecordKey(id string) []byte {
	return append([]byte(eventRecordPrefix), id...)
}

// makeEventVectorKey generates the key holding an event's embedding.
func makeEventVectorKey(id string) []byte {
	return append([]byte(eventVectorPrefix), id...)
}

// idFromVectorKey recovers the event ID from a vector key.
func idFromVectorKey(key []byte) string {
	return string(key[len(eventVectorPrefix):])
}

// makeEventDateKey generates a composite key for the date index.
// Format: prefix:startDate:id
func makeEventDateKey(start core.DateInt, id string) []byte {
	sortKey := uint32(start)
	if start == core.NoDate {
		sortKey = undatedSortKey
	}
	buf := make([]byte, 0, len(eventDatePrefix)+4+len(id))
	buf = append(buf, eventDatePrefix...)
	// BigEndian so lexicographic order is chronological order
	buf = binary.BigEndian.AppendUint32(buf, sortKey)
	return append(buf, id...)
}

// makeCheckpointKey generates a key for a named sync checkpoint.
func makeCheckpointKey(name string) []byte {
	return append([]byte(checkpointPrefix), name...)
}
