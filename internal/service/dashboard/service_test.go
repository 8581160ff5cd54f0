package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

type mockMeetingRepo struct {
	countScheduledByUserInRange func(ctx context.Context, userID int64, from, to time.Time) (int, error)
}

func (m *mockMeetingRepo) CountScheduledByUserInRange(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	return m.countScheduledByUserInRange(ctx, userID, from, to)
}

type mockBookingRepo struct {
	countConfirmedByOwner func(ctx context.Context, ownerID int64) (int, error)
}

func (m *mockBookingRepo) CountConfirmedByOwner(ctx context.Context, ownerID int64) (int, error) {
	return m.countConfirmedByOwner(ctx, ownerID)
}

type mockTeamRepo struct {
	countByUserID func(ctx context.Context, userID int64) (int, error)
}

func (m *mockTeamRepo) CountByUserID(ctx context.Context, userID int64) (int, error) {
	return m.countByUserID(ctx, userID)
}

type mockCalendarRepo struct {
	countByUserID func(ctx context.Context, userID int64) (int, error)
}

func (m *mockCalendarRepo) CountByUserID(ctx context.Context, userID int64) (int, error) {
	return m.countByUserID(ctx, userID)
}

type mockUserRepo struct {
	getByID func(ctx context.Context, id int64) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.getByID(ctx, id)
}

type mockTimeProvider struct {
	now time.Time
}

func (m *mockTimeProvider) Now() time.Time {
	return m.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func fixedCount(n int) func(ctx context.Context, userID int64) (int, error) {
	return func(ctx context.Context, userID int64) (int, error) {
		return n, nil
	}
}

func TestGetStats(t *testing.T) {
	users := &mockUserRepo{getByID: func(ctx context.Context, id int64) (*domain.User, error) {
		return &domain.User{ID: id, Timezone: "America/New_York"}, nil
	}}

	t.Run("aggregates counts from all repositories", func(t *testing.T) {
		meetings := &mockMeetingRepo{countScheduledByUserInRange: func(ctx context.Context, userID int64, from, to time.Time) (int, error) {
			return 3, nil
		}}
		bookings := &mockBookingRepo{countConfirmedByOwner: fixedCount(7)}
		teams := &mockTeamRepo{countByUserID: fixedCount(2)}
		calendars := &mockCalendarRepo{countByUserID: fixedCount(4)}

		svc := NewService(meetings, bookings, teams, calendars, users, nopLogger{})
		resp, err := svc.GetStats(context.Background(), 10)
		require.NoError(t, err)

		assert.Equal(t, 3, resp.TodayMeetings)
		assert.Equal(t, 7, resp.ConfirmedBookings)
		assert.Equal(t, 2, resp.Teams)
		assert.Equal(t, 4, resp.Calendars)
	})

	t.Run("today is computed in user timezone", func(t *testing.T) {
		var gotFrom, gotTo time.Time
		meetings := &mockMeetingRepo{countScheduledByUserInRange: func(ctx context.Context, userID int64, from, to time.Time) (int, error) {
			gotFrom, gotTo = from, to
			return 0, nil
		}}
		bookings := &mockBookingRepo{countConfirmedByOwner: fixedCount(0)}
		teams := &mockTeamRepo{countByUserID: fixedCount(0)}
		calendars := &mockCalendarRepo{countByUserID: fixedCount(0)}

		svc := NewService(meetings, bookings, teams, calendars, users, nopLogger{})
		// 02:00 UTC 2 марта - это еще вечер 1 марта в Нью-Йорке
		svc.timeProvider = &mockTimeProvider{now: time.Date(2026, 3, 2, 2, 0, 0, 0, time.UTC)}

		_, err := svc.GetStats(context.Background(), 10)
		require.NoError(t, err)

		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, ny).Unix(), gotFrom.Unix())
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, ny).Unix(), gotTo.Unix())
	})

	t.Run("repository failure surfaces as internal error", func(t *testing.T) {
		meetings := &mockMeetingRepo{countScheduledByUserInRange: func(ctx context.Context, userID int64, from, to time.Time) (int, error) {
			return 0, errors.New("db down")
		}}
		bookings := &mockBookingRepo{countConfirmedByOwner: fixedCount(0)}
		teams := &mockTeamRepo{countByUserID: fixedCount(0)}
		calendars := &mockCalendarRepo{countByUserID: fixedCount(0)}

		svc := NewService(meetings, bookings, teams, calendars, users, nopLogger{})
		_, err := svc.GetStats(context.Background(), 10)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
