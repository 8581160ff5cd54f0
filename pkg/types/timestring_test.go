package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"9:00", true},
		{"09:60", true},
		{"abc", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestMinutes(t *testing.T) {
	ts := TimeString("09:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("09:30")

	t.Run("within day", func(t *testing.T) {
		got, err := ts.AddMinutes(45)
		require.NoError(t, err)
		assert.Equal(t, TimeString("10:15"), got)
	})

	t.Run("past midnight fails", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(45)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("before day start fails", func(t *testing.T) {
		_, err := TimeString("00:10").AddMinutes(-20)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestAtDate(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	got, err := TimeString("09:30").AtDate(date, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, loc), got)
}

func TestScan(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("09:00"))
		assert.Equal(t, TimeString("09:00"), ts)
	})

	t.Run("bytes with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("09:00:00")))
		assert.Equal(t, TimeString("09:00"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 3, 2, 14, 45, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("14:45"), ts)
	})

	t.Run("nil", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestValue(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("garbage").Value()
	assert.Error(t, err)
}
