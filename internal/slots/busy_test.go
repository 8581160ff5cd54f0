package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/timerange"
)

func TestBusyFromBookings(t *testing.T) {
	page := &domain.BookingPage{
		BufferBeforeMinutes: 10,
		BufferAfterMinutes:  5,
	}

	t.Run("confirmed booking expanded by page buffers", func(t *testing.T) {
		bookings := []*domain.Booking{{
			StartTime: day(t, 10, 0),
			EndTime:   day(t, 10, 30),
			Status:    domain.StatusConfirmed,
		}}

		got := BusyFromBookings(bookings, page)
		require.Len(t, got, 1)
		assert.Equal(t, day(t, 9, 50), got[0].Start)
		assert.Equal(t, day(t, 10, 35), got[0].End)
	})

	t.Run("cancelled and completed bookings do not occupy time", func(t *testing.T) {
		bookings := []*domain.Booking{
			{StartTime: day(t, 10, 0), EndTime: day(t, 10, 30), Status: domain.StatusCancelled},
			{StartTime: day(t, 11, 0), EndTime: day(t, 11, 30), Status: domain.StatusCompleted},
		}

		assert.Empty(t, BusyFromBookings(bookings, page))
	})
}

func TestBusyFromMeetings(t *testing.T) {
	t.Run("virtual meeting uses own buffers only", func(t *testing.T) {
		meetings := []*domain.Meeting{{
			StartTime:           day(t, 14, 0),
			EndTime:             day(t, 15, 0),
			MeetingType:         domain.MeetingVirtual,
			BufferBeforeMinutes: 5,
			BufferAfterMinutes:  10,
			TravelBufferMinutes: 30, // игнорируется для виртуальных
			Status:              domain.MeetingScheduled,
		}}

		got := BusyFromMeetings(meetings)
		require.Len(t, got, 1)
		assert.Equal(t, day(t, 13, 55), got[0].Start)
		assert.Equal(t, day(t, 15, 10), got[0].End)
	})

	t.Run("in-person meeting adds travel buffer on both sides", func(t *testing.T) {
		meetings := []*domain.Meeting{{
			StartTime:           day(t, 14, 0),
			EndTime:             day(t, 15, 0),
			MeetingType:         domain.MeetingInPerson,
			BufferBeforeMinutes: 5,
			BufferAfterMinutes:  5,
			TravelBufferMinutes: 30,
			Status:              domain.MeetingScheduled,
		}}

		got := BusyFromMeetings(meetings)
		require.Len(t, got, 1)
		assert.Equal(t, day(t, 13, 25), got[0].Start)
		assert.Equal(t, day(t, 15, 35), got[0].End)
	})

	t.Run("cancelled meeting frees its time", func(t *testing.T) {
		meetings := []*domain.Meeting{{
			StartTime:   day(t, 14, 0),
			EndTime:     day(t, 15, 0),
			MeetingType: domain.MeetingVirtual,
			Status:      domain.MeetingCancelled,
		}}

		assert.Empty(t, BusyFromMeetings(meetings))
	})
}

func TestFilterConflicts(t *testing.T) {
	open := []timerange.Range{{Start: day(t, 9, 0), End: day(t, 17, 0)}}

	t.Run("booking removes only the overlapping slot window", func(t *testing.T) {
		busy := []timerange.Range{{Start: day(t, 10, 0), End: day(t, 10, 30)}}

		free := FilterConflicts(open, busy)
		got, err := GenerateSlots(free, 30, 0, 0, 0, 0)
		require.NoError(t, err)

		assert.False(t, ContainsStart(got, day(t, 10, 0)))
		assert.True(t, ContainsStart(got, day(t, 9, 0)))
		assert.True(t, ContainsStart(got, day(t, 9, 30)))
		assert.True(t, ContainsStart(got, day(t, 10, 30)))
		assert.Len(t, got, 15)
	})

	t.Run("no busy keeps intervals intact", func(t *testing.T) {
		got := FilterConflicts(open, nil)
		assert.Equal(t, open, got)
	})
}
