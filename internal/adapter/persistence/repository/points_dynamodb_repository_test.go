package repository

import (
	"testing"
	"time"

	"discord_clerk/internal/domain/entities"
)

func TestHistoryTimestampLayout(t *testing.T) {
	t.Run("sorts lexicographically within a second", func(t *testing.T) {
		base := time.Date(2026, 9, 1, 12, 0, 1, 0, time.UTC)
		whole := toPointsEntryItem(entities.PointsEntry{Timestamp: base})
		fractional := toPointsEntryItem(entities.PointsEntry{Timestamp: base.Add(500 * time.Millisecond)})

		if whole.Timestamp >= fractional.Timestamp {
			t.Fatalf("timestamps out of order: %q >= %q", whole.Timestamp, fractional.Timestamp)
		}
	})

	t.Run("round trips through the item", func(t *testing.T) {
		ts := time.Date(2026, 9, 1, 12, 0, 1, 500000000, time.UTC)
		got := fromPointsEntryItem(toPointsEntryItem(entities.PointsEntry{Timestamp: ts}))
		if !got.Timestamp.Equal(ts) {
			t.Fatalf("timestamp changed across the item: got %v, want %v", got.Timestamp, ts)
		}
	})
}
