package reembed

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_ReportsAtInterval(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 5)
	tracker.Start()

	tracker.Add(4)
	assert.Empty(t, buf.String())

	tracker.Add(1)
	assert.Contains(t, buf.String(), "Progress: 5/10 events (50.0%)")
	assert.Contains(t, buf.String(), "events/s")
}

func TestProgressTracker_Finish(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 3, 100)
	tracker.Start()
	tracker.Add(1)
	tracker.Finish()

	out := buf.String()
	assert.Contains(t, out, "3/3 events (100.0%)")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestProgressTracker_ClampsToTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 2, 1)
	tracker.Start()
	tracker.Add(5)

	assert.Contains(t, buf.String(), "2/2 events")
}

func TestProgressTracker_IgnoredBeforeStart(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 1)
	tracker.Add(3)
	tracker.Finish()

	assert.Empty(t, buf.String())
	assert.Zero(t, tracker.Elapsed())
}

func TestProgressTracker_NilWriter(t *testing.T) {
	tracker := NewProgressTracker(nil, 1, 1)
	tracker.Start()
	tracker.Add(1)
	tracker.Finish()
}
