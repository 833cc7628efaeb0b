package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker(t *testing.T) {
	t.Run("reports at interval", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := NewProgressTracker(&buf, 10, 4)
		tracker.Start()

		tracker.Imported(3)
		assert.Empty(t, buf.String())

		tracker.Skipped(1)
		assert.Contains(t, buf.String(), "Imported: 3/10")
		assert.Contains(t, buf.String(), "1 skipped")
		assert.Contains(t, buf.String(), "40.0%")
	})

	t.Run("finish prints final line", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := NewProgressTracker(&buf, 4, 100)
		tracker.Start()
		tracker.Imported(4)
		tracker.Finish()

		assert.Contains(t, buf.String(), "Imported: 4/4 (100.0%)")
		assert.Contains(t, buf.String(), "records/s")
		assert.Contains(t, buf.String(), "\n")

		imported, skipped := tracker.Counts()
		assert.Equal(t, 4, imported)
		assert.Zero(t, skipped)
	})

	t.Run("zero total", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := NewProgressTracker(&buf, 0, 10)
		tracker.Start()
		tracker.Finish()
		assert.Contains(t, buf.String(), "0/0 (0.0%)")
	})

	t.Run("not started", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := NewProgressTracker(&buf, 10, 1)
		tracker.Imported(5)
		tracker.Finish()
		assert.Empty(t, buf.String())
		assert.Zero(t, tracker.Elapsed())
	})

	t.Run("nil writer", func(t *testing.T) {
		tracker := NewProgressTracker(nil, 2, 0)
		tracker.Start()
		tracker.Imported(2)
		tracker.Finish()
		imported, _ := tracker.Counts()
		assert.Equal(t, 2, imported)
	})
}
