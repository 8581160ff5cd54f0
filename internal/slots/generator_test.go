package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/timerange"
)

func day(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestGenerateSlots(t *testing.T) {
	t.Run("full working day without buffers", func(t *testing.T) {
		open := []timerange.Range{{Start: day(t, 9, 0), End: day(t, 17, 0)}}

		got, err := GenerateSlots(open, 30, 0, 0, 0, 0)
		require.NoError(t, err)
		require.Len(t, got, 16)

		assert.Equal(t, day(t, 9, 0), got[0].Start)
		assert.Equal(t, day(t, 9, 30), got[0].End)
		assert.Equal(t, day(t, 16, 30), got[15].Start)
		assert.Equal(t, day(t, 17, 0), got[15].End)
	})

	t.Run("buffers shift visible window and widen step", func(t *testing.T) {
		// След слота 5+30+5=40 минут: в часовом окне помещается ровно один
		open := []timerange.Range{{Start: day(t, 9, 0), End: day(t, 10, 0)}}

		got, err := GenerateSlots(open, 30, 5, 5, 0, 0)
		require.NoError(t, err)
		require.Len(t, got, 1)

		assert.Equal(t, day(t, 9, 5), got[0].Start)
		assert.Equal(t, day(t, 9, 35), got[0].End)
	})

	t.Run("slot not fitting the interval tail is dropped", func(t *testing.T) {
		open := []timerange.Range{{Start: day(t, 9, 0), End: day(t, 9, 50)}}

		got, err := GenerateSlots(open, 30, 0, 0, 0, 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, day(t, 9, 0), got[0].Start)
	})

	t.Run("multiple intervals keep ascending order", func(t *testing.T) {
		open := []timerange.Range{
			{Start: day(t, 9, 0), End: day(t, 10, 0)},
			{Start: day(t, 14, 0), End: day(t, 15, 0)},
		}

		got, err := GenerateSlots(open, 30, 0, 0, 0, 0)
		require.NoError(t, err)
		require.Len(t, got, 4)
		for i := 1; i < len(got); i++ {
			assert.True(t, got[i-1].Start.Before(got[i].Start))
		}
	})

	t.Run("visitor at booking limit gets no slots", func(t *testing.T) {
		open := []timerange.Range{{Start: day(t, 9, 0), End: day(t, 17, 0)}}

		got, err := GenerateSlots(open, 30, 0, 0, 5, 5)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("zero max per visitor disables the limit", func(t *testing.T) {
		open := []timerange.Range{{Start: day(t, 9, 0), End: day(t, 10, 0)}}

		got, err := GenerateSlots(open, 30, 0, 0, 100, 0)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := GenerateSlots(nil, 0, 0, 0, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("empty open intervals", func(t *testing.T) {
		got, err := GenerateSlots([]timerange.Range{}, 30, 0, 0, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestContainsStart(t *testing.T) {
	list := []Slot{
		{Start: day(t, 9, 0), End: day(t, 9, 30)},
		{Start: day(t, 9, 30), End: day(t, 10, 0)},
	}

	assert.True(t, ContainsStart(list, day(t, 9, 30)))
	assert.False(t, ContainsStart(list, day(t, 9, 15)))
	assert.False(t, ContainsStart(nil, day(t, 9, 0)))
}
