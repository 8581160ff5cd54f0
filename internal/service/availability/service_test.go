package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
)

type mockAvailabilityRepo struct {
	replaceWeek func(ctx context.Context, userID int64, rules []*domain.WorkingHoursRule) error
	getByUserID func(ctx context.Context, userID int64) ([]*domain.WorkingHoursRule, error)
}

func (m *mockAvailabilityRepo) ReplaceWeek(ctx context.Context, userID int64, rules []*domain.WorkingHoursRule) error {
	return m.replaceWeek(ctx, userID, rules)
}

func (m *mockAvailabilityRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.WorkingHoursRule, error) {
	return m.getByUserID(ctx, userID)
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo *mockAvailabilityRepo) *Service {
	return NewService(repo, &mockTxManager{}, nopLogger{})
}

func TestSetWeek(t *testing.T) {
	t.Run("valid week replaces rules atomically", func(t *testing.T) {
		var stored []*domain.WorkingHoursRule
		repo := &mockAvailabilityRepo{
			replaceWeek: func(ctx context.Context, userID int64, rules []*domain.WorkingHoursRule) error {
				stored = rules
				return nil
			},
		}

		svc := newTestService(repo)
		resp, err := svc.SetWeek(context.Background(), &models.SetWeekRequest{
			UserID: 10,
			Rules: []models.RuleInput{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
				{DayOfWeek: 0, StartTime: "00:00", EndTime: "00:00", IsAvailable: false},
			},
		})
		require.NoError(t, err)

		require.Len(t, stored, 2)
		assert.Equal(t, int64(10), stored[0].UserID)
		assert.Len(t, resp.Rules, 2)
	})

	t.Run("cross-midnight interval rejected", func(t *testing.T) {
		svc := newTestService(&mockAvailabilityRepo{})

		_, err := svc.SetWeek(context.Background(), &models.SetWeekRequest{
			UserID: 10,
			Rules: []models.RuleInput{
				{DayOfWeek: 5, StartTime: "22:00", EndTime: "02:00", IsAvailable: true},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidRule)
	})

	t.Run("duplicate weekday rejected", func(t *testing.T) {
		svc := newTestService(&mockAvailabilityRepo{})

		_, err := svc.SetWeek(context.Background(), &models.SetWeekRequest{
			UserID: 10,
			Rules: []models.RuleInput{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
				{DayOfWeek: 1, StartTime: "13:00", EndTime: "17:00", IsAvailable: true},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("out of range weekday rejected", func(t *testing.T) {
		svc := newTestService(&mockAvailabilityRepo{})

		_, err := svc.SetWeek(context.Background(), &models.SetWeekRequest{
			UserID: 10,
			Rules:  []models.RuleInput{{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00", IsAvailable: true}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("malformed time rejected", func(t *testing.T) {
		svc := newTestService(&mockAvailabilityRepo{})

		_, err := svc.SetWeek(context.Background(), &models.SetWeekRequest{
			UserID: 10,
			Rules:  []models.RuleInput{{DayOfWeek: 1, StartTime: "9am", EndTime: "17:00", IsAvailable: true}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetWeek(t *testing.T) {
	repo := &mockAvailabilityRepo{
		getByUserID: func(ctx context.Context, userID int64) ([]*domain.WorkingHoursRule, error) {
			return []*domain.WorkingHoursRule{
				{UserID: userID, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
			}, nil
		},
	}

	svc := newTestService(repo)
	resp, err := svc.GetWeek(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, resp.Rules, 1)
	assert.Equal(t, "09:00", resp.Rules[0].StartTime)
	assert.Equal(t, "17:00", resp.Rules[0].EndTime)
}
