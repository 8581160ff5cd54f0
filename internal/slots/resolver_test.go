package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/timerange"
)

func TestResolveOpenIntervals(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc) // понедельник

	rule := &domain.WorkingHoursRule{
		DayOfWeek:   1,
		StartTime:   "09:00",
		EndTime:     "17:00",
		IsAvailable: true,
	}

	t.Run("rule becomes one open interval in owner timezone", func(t *testing.T) {
		got, err := ResolveOpenIntervals(rule, date, loc, nil)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, loc), got[0].Start)
		assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, loc), got[0].End)
	})

	t.Run("nil rule means empty availability", func(t *testing.T) {
		got, err := ResolveOpenIntervals(nil, date, loc, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unavailable day means empty availability", func(t *testing.T) {
		closed := &domain.WorkingHoursRule{
			DayOfWeek:   1,
			StartTime:   "09:00",
			EndTime:     "17:00",
			IsAvailable: false,
		}
		got, err := ResolveOpenIntervals(closed, date, loc, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("equal start and end means empty availability", func(t *testing.T) {
		empty := &domain.WorkingHoursRule{
			DayOfWeek:   1,
			StartTime:   "09:00",
			EndTime:     "09:00",
			IsAvailable: true,
		}
		got, err := ResolveOpenIntervals(empty, date, loc, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("inverted working hours fail", func(t *testing.T) {
		inverted := &domain.WorkingHoursRule{
			DayOfWeek:   1,
			StartTime:   "17:00",
			EndTime:     "09:00",
			IsAvailable: true,
		}
		_, err := ResolveOpenIntervals(inverted, date, loc, nil)
		assert.ErrorIs(t, err, ErrInvalidWorkingHours)
	})

	t.Run("provider busy splits the day", func(t *testing.T) {
		busy := []timerange.Range{{
			Start: time.Date(2026, 3, 2, 12, 0, 0, 0, loc),
			End:   time.Date(2026, 3, 2, 13, 0, 0, 0, loc),
		}}
		got, err := ResolveOpenIntervals(rule, date, loc, busy)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, time.Date(2026, 3, 2, 12, 0, 0, 0, loc), got[0].End)
		assert.Equal(t, time.Date(2026, 3, 2, 13, 0, 0, 0, loc), got[1].Start)
	})
}
