package timerange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end string) Range {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)
	return Range{Start: s, End: e}
}

func TestNew(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("valid range", func(t *testing.T) {
		r, err := New(start, start.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, r.Duration())
	})

	t.Run("end equals start", func(t *testing.T) {
		_, err := New(start, start)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := New(start, start.Add(-time.Minute))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestOverlaps(t *testing.T) {
	base := mustRange(t, "2026-03-02T10:00:00Z", "2026-03-02T11:00:00Z")

	tests := []struct {
		name  string
		other Range
		want  bool
	}{
		{"identical", base, true},
		{"partial overlap left", mustRange(t, "2026-03-02T09:30:00Z", "2026-03-02T10:30:00Z"), true},
		{"partial overlap right", mustRange(t, "2026-03-02T10:30:00Z", "2026-03-02T11:30:00Z"), true},
		{"contained", mustRange(t, "2026-03-02T10:15:00Z", "2026-03-02T10:45:00Z"), true},
		{"touching at end is not overlap", mustRange(t, "2026-03-02T11:00:00Z", "2026-03-02T12:00:00Z"), false},
		{"touching at start is not overlap", mustRange(t, "2026-03-02T09:00:00Z", "2026-03-02T10:00:00Z"), false},
		{"disjoint", mustRange(t, "2026-03-02T12:00:00Z", "2026-03-02T13:00:00Z"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestContains(t *testing.T) {
	base := mustRange(t, "2026-03-02T10:00:00Z", "2026-03-02T11:00:00Z")

	assert.True(t, base.Contains(base))
	assert.True(t, base.Contains(mustRange(t, "2026-03-02T10:15:00Z", "2026-03-02T10:45:00Z")))
	assert.False(t, base.Contains(mustRange(t, "2026-03-02T09:45:00Z", "2026-03-02T10:30:00Z")))
	assert.False(t, base.Contains(mustRange(t, "2026-03-02T10:30:00Z", "2026-03-02T11:15:00Z")))
}

func TestExpand(t *testing.T) {
	base := mustRange(t, "2026-03-02T10:00:00Z", "2026-03-02T11:00:00Z")

	t.Run("expands both sides", func(t *testing.T) {
		got := base.Expand(10*time.Minute, 5*time.Minute)
		assert.Equal(t, mustRange(t, "2026-03-02T09:50:00Z", "2026-03-02T11:05:00Z"), got)
	})

	t.Run("negative paddings treated as zero", func(t *testing.T) {
		got := base.Expand(-time.Hour, -time.Hour)
		assert.Equal(t, base, got)
	})
}

func TestSubtract(t *testing.T) {
	free := mustRange(t, "2026-03-02T09:00:00Z", "2026-03-02T17:00:00Z")

	t.Run("no busy returns original", func(t *testing.T) {
		got := Subtract(free, nil)
		require.Len(t, got, 1)
		assert.Equal(t, free, got[0])
	})

	t.Run("busy in the middle splits interval", func(t *testing.T) {
		busy := []Range{mustRange(t, "2026-03-02T12:00:00Z", "2026-03-02T13:00:00Z")}
		got := Subtract(free, busy)
		require.Len(t, got, 2)
		assert.Equal(t, mustRange(t, "2026-03-02T09:00:00Z", "2026-03-02T12:00:00Z"), got[0])
		assert.Equal(t, mustRange(t, "2026-03-02T13:00:00Z", "2026-03-02T17:00:00Z"), got[1])
	})

	t.Run("busy covering whole interval leaves nothing", func(t *testing.T) {
		busy := []Range{mustRange(t, "2026-03-02T08:00:00Z", "2026-03-02T18:00:00Z")}
		assert.Empty(t, Subtract(free, busy))
	})

	t.Run("busy overlapping left edge trims start", func(t *testing.T) {
		busy := []Range{mustRange(t, "2026-03-02T08:00:00Z", "2026-03-02T10:00:00Z")}
		got := Subtract(free, busy)
		require.Len(t, got, 1)
		assert.Equal(t, mustRange(t, "2026-03-02T10:00:00Z", "2026-03-02T17:00:00Z"), got[0])
	})

	t.Run("touching busy does not trim", func(t *testing.T) {
		busy := []Range{mustRange(t, "2026-03-02T08:00:00Z", "2026-03-02T09:00:00Z")}
		got := Subtract(free, busy)
		require.Len(t, got, 1)
		assert.Equal(t, free, got[0])
	})

	t.Run("multiple unsorted busy intervals", func(t *testing.T) {
		busy := []Range{
			mustRange(t, "2026-03-02T15:00:00Z", "2026-03-02T16:00:00Z"),
			mustRange(t, "2026-03-02T10:00:00Z", "2026-03-02T11:00:00Z"),
		}
		got := Subtract(free, busy)
		require.Len(t, got, 3)
		assert.Equal(t, mustRange(t, "2026-03-02T09:00:00Z", "2026-03-02T10:00:00Z"), got[0])
		assert.Equal(t, mustRange(t, "2026-03-02T11:00:00Z", "2026-03-02T15:00:00Z"), got[1])
		assert.Equal(t, mustRange(t, "2026-03-02T16:00:00Z", "2026-03-02T17:00:00Z"), got[2])
	})

	t.Run("overlapping busy intervals", func(t *testing.T) {
		busy := []Range{
			mustRange(t, "2026-03-02T10:00:00Z", "2026-03-02T12:00:00Z"),
			mustRange(t, "2026-03-02T11:00:00Z", "2026-03-02T13:00:00Z"),
		}
		got := Subtract(free, busy)
		require.Len(t, got, 2)
		assert.Equal(t, mustRange(t, "2026-03-02T09:00:00Z", "2026-03-02T10:00:00Z"), got[0])
		assert.Equal(t, mustRange(t, "2026-03-02T13:00:00Z", "2026-03-02T17:00:00Z"), got[1])
	})
}
