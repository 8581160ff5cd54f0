package bookingpages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type mockPageRepo struct {
	create       func(ctx context.Context, page *domain.BookingPage) (*domain.BookingPage, error)
	getByID      func(ctx context.Context, id int64) (*domain.BookingPage, error)
	getByAliases func(ctx context.Context, userAlias, pageAlias string) (*domain.BookingPage, error)
	getByUserID  func(ctx context.Context, userID int64) ([]*domain.BookingPage, error)
	getPending   func(ctx context.Context) ([]*domain.BookingPage, error)
	update       func(ctx context.Context, page *domain.BookingPage) error
	setApproved  func(ctx context.Context, id int64, approved bool) error
}

func (m *mockPageRepo) Create(ctx context.Context, page *domain.BookingPage) (*domain.BookingPage, error) {
	return m.create(ctx, page)
}

func (m *mockPageRepo) GetByID(ctx context.Context, id int64) (*domain.BookingPage, error) {
	return m.getByID(ctx, id)
}

func (m *mockPageRepo) GetByAliases(ctx context.Context, userAlias, pageAlias string) (*domain.BookingPage, error) {
	return m.getByAliases(ctx, userAlias, pageAlias)
}

func (m *mockPageRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.BookingPage, error) {
	return m.getByUserID(ctx, userID)
}

func (m *mockPageRepo) GetPending(ctx context.Context) ([]*domain.BookingPage, error) {
	return m.getPending(ctx)
}

func (m *mockPageRepo) Update(ctx context.Context, page *domain.BookingPage) error {
	return m.update(ctx, page)
}

func (m *mockPageRepo) SetApproved(ctx context.Context, id int64, approved bool) error {
	return m.setApproved(ctx, id, approved)
}

type mockCalendarRepo struct {
	getByID func(ctx context.Context, id int64) (*domain.Calendar, error)
}

func (m *mockCalendarRepo) GetByID(ctx context.Context, id int64) (*domain.Calendar, error) {
	return m.getByID(ctx, id)
}

type mockBlacklistRepo struct {
	contains func(ctx context.Context, alias string) (bool, error)
}

func (m *mockBlacklistRepo) Contains(ctx context.Context, alias string) (bool, error) {
	return m.contains(ctx, alias)
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

func ownedCalendar() *mockCalendarRepo {
	return &mockCalendarRepo{getByID: func(ctx context.Context, id int64) (*domain.Calendar, error) {
		return &domain.Calendar{ID: id, UserID: 10}, nil
	}}
}

func emptyBlacklist() *mockBlacklistRepo {
	return &mockBlacklistRepo{contains: func(ctx context.Context, alias string) (bool, error) {
		return false, nil
	}}
}

func regularUsers() *mockUserRepo {
	return &mockUserRepo{getByID: func(ctx context.Context, id int64) (*domain.User, error) {
		return &domain.User{ID: id, Role: domain.RoleUser, Timezone: "UTC"}, nil
	}}
}

func TestCreate(t *testing.T) {
	t.Run("new page starts unapproved and active", func(t *testing.T) {
		var created *domain.BookingPage
		pages := &mockPageRepo{create: func(ctx context.Context, page *domain.BookingPage) (*domain.BookingPage, error) {
			created = page
			out := *page
			out.ID = 1
			return &out, nil
		}}

		svc := NewService(pages, ownedCalendar(), emptyBlacklist(), regularUsers(), nopLogger{})
		resp, err := svc.Create(context.Background(), &models.CreatePageRequest{
			UserID:     10,
			CalendarID: 100,
			Alias:      "intro-call",
		})
		require.NoError(t, err)

		assert.False(t, created.IsApproved)
		assert.True(t, created.IsActive)
		assert.Equal(t, domain.DefaultDurationMinutes, created.DurationMinutes)
		assert.Equal(t, domain.DefaultMaxBookingsPerVisitor, created.MaxBookingsPerVisitor)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("blacklisted alias rejected", func(t *testing.T) {
		blocked := &mockBlacklistRepo{contains: func(ctx context.Context, alias string) (bool, error) {
			return true, nil
		}}

		svc := NewService(&mockPageRepo{}, ownedCalendar(), blocked, regularUsers(), nopLogger{})
		_, err := svc.Create(context.Background(), &models.CreatePageRequest{
			UserID:     10,
			CalendarID: 100,
			Alias:      "admin",
		})
		assert.ErrorIs(t, err, ErrAliasBlocked)
	})

	t.Run("alias with invalid characters rejected", func(t *testing.T) {
		svc := NewService(&mockPageRepo{}, ownedCalendar(), emptyBlacklist(), regularUsers(), nopLogger{})
		_, err := svc.Create(context.Background(), &models.CreatePageRequest{
			UserID:     10,
			CalendarID: 100,
			Alias:      "Intro Call!",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("foreign calendar rejected", func(t *testing.T) {
		foreign := &mockCalendarRepo{getByID: func(ctx context.Context, id int64) (*domain.Calendar, error) {
			return &domain.Calendar{ID: id, UserID: 99}, nil
		}}

		svc := NewService(&mockPageRepo{}, foreign, emptyBlacklist(), regularUsers(), nopLogger{})
		_, err := svc.Create(context.Background(), &models.CreatePageRequest{
			UserID:     10,
			CalendarID: 100,
			Alias:      "intro-call",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("duration out of bounds rejected", func(t *testing.T) {
		svc := NewService(&mockPageRepo{}, ownedCalendar(), emptyBlacklist(), regularUsers(), nopLogger{})
		_, err := svc.Create(context.Background(), &models.CreatePageRequest{
			UserID:          10,
			CalendarID:      100,
			Alias:           "intro-call",
			DurationMinutes: ptr.Ptr(500),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetPublicByAliases(t *testing.T) {
	t.Run("unapproved page is indistinguishable from missing", func(t *testing.T) {
		pages := &mockPageRepo{getByAliases: func(ctx context.Context, userAlias, pageAlias string) (*domain.BookingPage, error) {
			return &domain.BookingPage{ID: 1, UserID: 10, Alias: pageAlias, IsApproved: false, IsActive: true}, nil
		}}

		svc := NewService(pages, ownedCalendar(), emptyBlacklist(), regularUsers(), nopLogger{})
		_, err := svc.GetPublicByAliases(context.Background(), "alice", "intro-call")
		assert.ErrorIs(t, err, ErrPageNotFound)
	})

	t.Run("bookable page exposes owner timezone", func(t *testing.T) {
		pages := &mockPageRepo{getByAliases: func(ctx context.Context, userAlias, pageAlias string) (*domain.BookingPage, error) {
			return &domain.BookingPage{
				ID: 1, UserID: 10, Alias: pageAlias,
				IsApproved: true, IsActive: true, DurationMinutes: 30,
			}, nil
		}}
		users := &mockUserRepo{getByID: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Timezone: "Europe/Berlin"}, nil
		}}

		svc := NewService(pages, ownedCalendar(), emptyBlacklist(), users, nopLogger{})
		resp, err := svc.GetPublicByAliases(context.Background(), "alice", "intro-call")
		require.NoError(t, err)

		assert.Equal(t, "Europe/Berlin", resp.Timezone)
		assert.Equal(t, 30, resp.DurationMinutes)
	})
}

func TestApprove(t *testing.T) {
	superAdmin := &mockUserRepo{getByID: func(ctx context.Context, id int64) (*domain.User, error) {
		if id == 1 {
			return &domain.User{ID: id, Role: domain.RoleSuperAdmin}, nil
		}
		return &domain.User{ID: id, Role: domain.RoleUser}, nil
	}}

	t.Run("super admin approves page", func(t *testing.T) {
		var approvedID int64
		pages := &mockPageRepo{setApproved: func(ctx context.Context, id int64, approved bool) error {
			approvedID = id
			return nil
		}}

		svc := NewService(pages, ownedCalendar(), emptyBlacklist(), superAdmin, nopLogger{})
		err := svc.Approve(context.Background(), 7, &models.ApprovePageRequest{UserID: 1, Approved: true})
		require.NoError(t, err)
		assert.Equal(t, int64(7), approvedID)
	})

	t.Run("regular user denied", func(t *testing.T) {
		svc := NewService(&mockPageRepo{}, ownedCalendar(), emptyBlacklist(), superAdmin, nopLogger{})
		err := svc.Approve(context.Background(), 7, &models.ApprovePageRequest{UserID: 2, Approved: true})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestUpdate(t *testing.T) {
	existing := func() *domain.BookingPage {
		return &domain.BookingPage{
			ID: 1, UserID: 10, CalendarID: 100, Alias: "intro-call",
			IsApproved: true, IsActive: true,
			DurationMinutes: 30, MaxBookingsPerVisitor: 5,
		}
	}

	t.Run("owner updates settings", func(t *testing.T) {
		pages := &mockPageRepo{
			getByID: func(ctx context.Context, id int64) (*domain.BookingPage, error) {
				return existing(), nil
			},
			update: func(ctx context.Context, page *domain.BookingPage) error {
				return nil
			},
		}

		svc := NewService(pages, ownedCalendar(), emptyBlacklist(), regularUsers(), nopLogger{})
		resp, err := svc.Update(context.Background(), 1, &models.UpdatePageRequest{
			UserID:          10,
			DurationMinutes: ptr.Ptr(45),
		})
		require.NoError(t, err)
		assert.Equal(t, 45, resp.DurationMinutes)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		pages := &mockPageRepo{getByID: func(ctx context.Context, id int64) (*domain.BookingPage, error) {
			return existing(), nil
		}}

		svc := NewService(pages, ownedCalendar(), emptyBlacklist(), regularUsers(), nopLogger{})
		_, err := svc.Update(context.Background(), 1, &models.UpdatePageRequest{
			UserID: 99,
			Alias:  ptr.Ptr("stolen"),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
