package calendars

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-SchedulingService/internal/service/calendars/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type mockCalendarRepo struct {
	create      func(ctx context.Context, calendar *domain.Calendar) (*domain.Calendar, error)
	getByID     func(ctx context.Context, id int64) (*domain.Calendar, error)
	getByUserID func(ctx context.Context, userID int64) ([]*domain.Calendar, error)
	update      func(ctx context.Context, calendar *domain.Calendar) error
	delete      func(ctx context.Context, id int64) error
}

func (m *mockCalendarRepo) Create(ctx context.Context, calendar *domain.Calendar) (*domain.Calendar, error) {
	return m.create(ctx, calendar)
}

func (m *mockCalendarRepo) GetByID(ctx context.Context, id int64) (*domain.Calendar, error) {
	return m.getByID(ctx, id)
}

func (m *mockCalendarRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.Calendar, error) {
	return m.getByUserID(ctx, userID)
}

func (m *mockCalendarRepo) Update(ctx context.Context, calendar *domain.Calendar) error {
	return m.update(ctx, calendar)
}

func (m *mockCalendarRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockUserRepo struct {
	getByID func(ctx context.Context, id int64) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.getByID(ctx, id)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func regularUsers() *mockUserRepo {
	return &mockUserRepo{getByID: func(ctx context.Context, id int64) (*domain.User, error) {
		return &domain.User{ID: id, Role: domain.RoleUser, Timezone: "UTC"}, nil
	}}
}

func TestCreate(t *testing.T) {
	t.Run("calendar created with given alias", func(t *testing.T) {
		var created *domain.Calendar
		calendars := &mockCalendarRepo{create: func(ctx context.Context, calendar *domain.Calendar) (*domain.Calendar, error) {
			created = calendar
			out := *calendar
			out.ID = 1
			return &out, nil
		}}

		svc := NewService(calendars, regularUsers(), nopLogger{})
		resp, err := svc.Create(context.Background(), &models.CreateCalendarRequest{
			UserID:    10,
			Alias:     "work",
			IsPrimary: true,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(10), created.UserID)
		assert.True(t, created.IsPrimary)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "work", resp.Alias)
	})

	t.Run("alias with invalid characters rejected", func(t *testing.T) {
		svc := NewService(&mockCalendarRepo{}, regularUsers(), nopLogger{})
		_, err := svc.Create(context.Background(), &models.CreateCalendarRequest{
			UserID: 10,
			Alias:  "Work Calendar!",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate alias reported as conflict", func(t *testing.T) {
		calendars := &mockCalendarRepo{create: func(ctx context.Context, calendar *domain.Calendar) (*domain.Calendar, error) {
			return nil, calendarRepo.ErrAliasTaken
		}}

		svc := NewService(calendars, regularUsers(), nopLogger{})
		_, err := svc.Create(context.Background(), &models.CreateCalendarRequest{
			UserID: 10,
			Alias:  "work",
		})
		assert.ErrorIs(t, err, ErrAliasTaken)
	})
}

func TestUpdate(t *testing.T) {
	existing := func() *domain.Calendar {
		return &domain.Calendar{ID: 1, UserID: 10, Alias: "work", IsPrimary: false}
	}

	t.Run("owner updates calendar", func(t *testing.T) {
		calendars := &mockCalendarRepo{
			getByID: func(ctx context.Context, id int64) (*domain.Calendar, error) {
				return existing(), nil
			},
			update: func(ctx context.Context, calendar *domain.Calendar) error {
				return nil
			},
		}

		svc := NewService(calendars, regularUsers(), nopLogger{})
		resp, err := svc.Update(context.Background(), 1, &models.UpdateCalendarRequest{
			UserID:    10,
			IsPrimary: ptr.Ptr(true),
		})
		require.NoError(t, err)
		assert.True(t, resp.IsPrimary)
		assert.Equal(t, "work", resp.Alias)
	})

	t.Run("foreign calendar is indistinguishable from missing", func(t *testing.T) {
		calendars := &mockCalendarRepo{getByID: func(ctx context.Context, id int64) (*domain.Calendar, error) {
			return &domain.Calendar{ID: id, UserID: 99, Alias: "work"}, nil
		}}

		svc := NewService(calendars, regularUsers(), nopLogger{})
		_, err := svc.Update(context.Background(), 1, &models.UpdateCalendarRequest{
			UserID: 10,
			Alias:  ptr.Ptr("stolen"),
		})
		assert.ErrorIs(t, err, ErrCalendarNotFound)
	})

	t.Run("super admin updates foreign calendar", func(t *testing.T) {
		calendars := &mockCalendarRepo{
			getByID: func(ctx context.Context, id int64) (*domain.Calendar, error) {
				return &domain.Calendar{ID: id, UserID: 99, Alias: "work"}, nil
			},
			update: func(ctx context.Context, calendar *domain.Calendar) error {
				return nil
			},
		}
		superAdmin := &mockUserRepo{getByID: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Role: domain.RoleSuperAdmin}, nil
		}}

		svc := NewService(calendars, superAdmin, nopLogger{})
		resp, err := svc.Update(context.Background(), 1, &models.UpdateCalendarRequest{
			UserID:    1,
			IsPrimary: ptr.Ptr(true),
		})
		require.NoError(t, err)
		assert.True(t, resp.IsPrimary)
	})

	t.Run("new alias validated", func(t *testing.T) {
		calendars := &mockCalendarRepo{getByID: func(ctx context.Context, id int64) (*domain.Calendar, error) {
			return existing(), nil
		}}

		svc := NewService(calendars, regularUsers(), nopLogger{})
		_, err := svc.Update(context.Background(), 1, &models.UpdateCalendarRequest{
			UserID: 10,
			Alias:  ptr.Ptr("Bad Alias!"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDelete(t *testing.T) {
	t.Run("owner deletes calendar", func(t *testing.T) {
		var deletedID int64
		calendars := &mockCalendarRepo{
			getByID: func(ctx context.Context, id int64) (*domain.Calendar, error) {
				return &domain.Calendar{ID: id, UserID: 10, Alias: "work"}, nil
			},
			delete: func(ctx context.Context, id int64) error {
				deletedID = id
				return nil
			},
		}

		svc := NewService(calendars, regularUsers(), nopLogger{})
		err := svc.Delete(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deletedID)
	})

	t.Run("foreign calendar hidden from regular user", func(t *testing.T) {
		calendars := &mockCalendarRepo{getByID: func(ctx context.Context, id int64) (*domain.Calendar, error) {
			return &domain.Calendar{ID: id, UserID: 99, Alias: "work"}, nil
		}}

		svc := NewService(calendars, regularUsers(), nopLogger{})
		err := svc.Delete(context.Background(), 1, 10)
		assert.ErrorIs(t, err, ErrCalendarNotFound)
	})

	t.Run("missing calendar reported as not found", func(t *testing.T) {
		calendars := &mockCalendarRepo{getByID: func(ctx context.Context, id int64) (*domain.Calendar, error) {
			return nil, calendarRepo.ErrCalendarNotFound
		}}

		svc := NewService(calendars, regularUsers(), nopLogger{})
		err := svc.Delete(context.Background(), 1, 10)
		assert.ErrorIs(t, err, ErrCalendarNotFound)
	})
}
