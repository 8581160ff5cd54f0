package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	pageRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/bookingpage"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/calendarprovider"
)

// Моки репозиториев

type mockPageRepo struct {
	getByAliases func(ctx context.Context, userAlias, pageAlias string) (*domain.BookingPage, error)
}

func (m *mockPageRepo) GetByAliases(ctx context.Context, userAlias, pageAlias string) (*domain.BookingPage, error) {
	return m.getByAliases(ctx, userAlias, pageAlias)
}

type mockBookingRepo struct {
	create                  func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	getByPageWithFilter     func(ctx context.Context, filter domain.PageBookingsFilter) ([]*domain.Booking, error)
	countConfirmedByVisitor func(ctx context.Context, bookingPageID int64, visitorEmail string) (int, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.create(ctx, booking)
}

func (m *mockBookingRepo) GetByPageWithFilter(ctx context.Context, filter domain.PageBookingsFilter) ([]*domain.Booking, error) {
	return m.getByPageWithFilter(ctx, filter)
}

func (m *mockBookingRepo) CountConfirmedByVisitor(ctx context.Context, bookingPageID int64, visitorEmail string) (int, error) {
	return m.countConfirmedByVisitor(ctx, bookingPageID, visitorEmail)
}

type mockMeetingRepo struct {
	getByCalendarInRange func(ctx context.Context, calendarID int64, from, to time.Time) ([]*domain.Meeting, error)
}

func (m *mockMeetingRepo) GetByCalendarInRange(ctx context.Context, calendarID int64, from, to time.Time) ([]*domain.Meeting, error) {
	return m.getByCalendarInRange(ctx, calendarID, from, to)
}

type mockAvailabilityRepo struct {
	getByUserAndWeekday func(ctx context.Context, userID int64, dayOfWeek int) (*domain.WorkingHoursRule, error)
}

func (m *mockAvailabilityRepo) GetByUserAndWeekday(ctx context.Context, userID int64, dayOfWeek int) (*domain.WorkingHoursRule, error) {
	return m.getByUserAndWeekday(ctx, userID, dayOfWeek)
}

type mockUserRepo struct {
	getByID func(ctx context.Context, id int64) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.getByID(ctx, id)
}

type mockProviderClient struct {
	getBusyIntervals func(ctx context.Context, calendarID int64, date time.Time) ([]calendarprovider.BusyInterval, error)
}

func (m *mockProviderClient) GetBusyIntervals(ctx context.Context, calendarID int64, date time.Time) ([]calendarprovider.BusyInterval, error) {
	return m.getBusyIntervals(ctx, calendarID, date)
}

// mockTxManager выполняет функцию без реальной транзакции
type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Фикстуры: одобренная страница с часовым правилом на понедельник 2026-03-02

func testPage() *domain.BookingPage {
	return &domain.BookingPage{
		ID:                    1,
		UserID:                10,
		CalendarID:            100,
		Alias:                 "intro-call",
		IsApproved:            true,
		IsActive:              true,
		DurationMinutes:       30,
		BufferBeforeMinutes:   0,
		BufferAfterMinutes:    0,
		MaxBookingsPerVisitor: 5,
	}
}

func newTestUseCase() *UseCase {
	uc := NewUseCase(
		&mockPageRepo{getByAliases: func(ctx context.Context, userAlias, pageAlias string) (*domain.BookingPage, error) {
			return testPage(), nil
		}},
		&mockBookingRepo{
			create: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
				created := *booking
				created.ID = 42
				created.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
				created.UpdatedAt = created.CreatedAt
				return &created, nil
			},
			getByPageWithFilter: func(ctx context.Context, filter domain.PageBookingsFilter) ([]*domain.Booking, error) {
				return nil, nil
			},
			countConfirmedByVisitor: func(ctx context.Context, bookingPageID int64, visitorEmail string) (int, error) {
				return 0, nil
			},
		},
		&mockMeetingRepo{getByCalendarInRange: func(ctx context.Context, calendarID int64, from, to time.Time) ([]*domain.Meeting, error) {
			return nil, nil
		}},
		&mockAvailabilityRepo{getByUserAndWeekday: func(ctx context.Context, userID int64, dayOfWeek int) (*domain.WorkingHoursRule, error) {
			return &domain.WorkingHoursRule{
				UserID:      10,
				DayOfWeek:   1,
				StartTime:   "09:00",
				EndTime:     "17:00",
				IsAvailable: true,
			}, nil
		}},
		&mockUserRepo{getByID: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: 10, Timezone: "UTC"}, nil
		}},
		&mockProviderClient{getBusyIntervals: func(ctx context.Context, calendarID int64, date time.Time) ([]calendarprovider.BusyInterval, error) {
			return []calendarprovider.BusyInterval{}, nil
		}},
		&mockTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &stubClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func testRequest() *Request {
	return &Request{
		UserAlias:    "alice",
		PageAlias:    "intro-call",
		VisitorEmail: "visitor@example.com",
		StartTime:    time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(1), resp.BookingPageID)
	assert.Equal(t, "visitor@example.com", resp.VisitorEmail)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), resp.StartTime)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC), resp.EndTime)
}

func TestExecute_MisalignedStartRejected(t *testing.T) {
	uc := newTestUseCase()

	// 10:15 не совпадает ни с одним стартом слота при шаге 30 минут
	req := testRequest()
	req.StartTime = time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	uc := newTestUseCase()
	uc.bookingRepo = &mockBookingRepo{
		create: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			t.Fatal("create must not be called for a busy slot")
			return nil, nil
		},
		getByPageWithFilter: func(ctx context.Context, filter domain.PageBookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{{
				BookingPageID: 1,
				StartTime:     time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
				EndTime:       time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
				Status:        domain.StatusConfirmed,
			}}, nil
		},
		countConfirmedByVisitor: func(ctx context.Context, bookingPageID int64, visitorEmail string) (int, error) {
			return 0, nil
		},
	}

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_ConcurrentInsertLosesRace(t *testing.T) {
	uc := newTestUseCase()
	uc.bookingRepo = &mockBookingRepo{
		create: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			// Exclusion constraint сработал на параллельной вставке
			return nil, bookingRepo.ErrSlotTaken
		},
		getByPageWithFilter: func(ctx context.Context, filter domain.PageBookingsFilter) ([]*domain.Booking, error) {
			return nil, nil
		},
		countConfirmedByVisitor: func(ctx context.Context, bookingPageID int64, visitorEmail string) (int, error) {
			return 0, nil
		},
	}

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_VisitorAtLimit(t *testing.T) {
	uc := newTestUseCase()
	uc.bookingRepo = &mockBookingRepo{
		create: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			t.Fatal("create must not be called past the limit")
			return nil, nil
		},
		getByPageWithFilter: func(ctx context.Context, filter domain.PageBookingsFilter) ([]*domain.Booking, error) {
			return nil, nil
		},
		countConfirmedByVisitor: func(ctx context.Context, bookingPageID int64, visitorEmail string) (int, error) {
			return 5, nil
		},
	}

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrBookingLimitReached)
}

func TestExecute_PageNotFound(t *testing.T) {
	uc := newTestUseCase()
	uc.pageRepo = &mockPageRepo{getByAliases: func(ctx context.Context, userAlias, pageAlias string) (*domain.BookingPage, error) {
		return nil, pageRepo.ErrPageNotFound
	}}

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestExecute_PageNotBookable(t *testing.T) {
	uc := newTestUseCase()
	uc.pageRepo = &mockPageRepo{getByAliases: func(ctx context.Context, userAlias, pageAlias string) (*domain.BookingPage, error) {
		page := testPage()
		page.IsActive = false
		return page, nil
	}}

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrPageUnavailable)
}

func TestExecute_PastStartRejected(t *testing.T) {
	uc := newTestUseCase()
	uc.timeProvider = &stubClock{now: time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ProviderUnavailable(t *testing.T) {
	uc := newTestUseCase()
	uc.providerClient = &mockProviderClient{
		getBusyIntervals: func(ctx context.Context, calendarID int64, date time.Time) ([]calendarprovider.BusyInterval, error) {
			return nil, calendarprovider.ErrProviderUnavailable
		},
	}

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestExecute_ProviderInvalidResponse(t *testing.T) {
	uc := newTestUseCase()
	uc.providerClient = &mockProviderClient{
		getBusyIntervals: func(ctx context.Context, calendarID int64, date time.Time) ([]calendarprovider.BusyInterval, error) {
			return nil, calendarprovider.ErrInvalidResponse
		},
	}

	// Нечитаемый ответ провайдера означает "не смогли проверить занятость",
	// а не внутреннюю ошибку сервиса
	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestExecute_SerializationFailureStaysRetryable(t *testing.T) {
	uc := newTestUseCase()
	uc.bookingRepo = &mockBookingRepo{
		create: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			t.Fatal("create must not be reached after a failed read")
			return nil, nil
		},
		getByPageWithFilter: func(ctx context.Context, filter domain.PageBookingsFilter) ([]*domain.Booking, error) {
			// SQLSTATE 40001 на чтении внутри сериализуемой транзакции,
			// обернутый так же, как это делает репозиторий
			return nil, fmt.Errorf("%w: GetByPageWithFilter - execute query: %w",
				bookingRepo.ErrExecQuery, &pq.Error{Code: pq.ErrorCode(pgerrcode.SerializationFailure)})
		},
		countConfirmedByVisitor: func(ctx context.Context, bookingPageID int64, visitorEmail string) (int, error) {
			return 0, nil
		},
	}

	_, err := uc.Execute(context.Background(), testRequest())
	require.Error(t, err)

	// Ошибка драйвера должна сохраниться в цепочке: по ней txmanager решает о ретрае
	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pgerrcode.SerializationFailure, string(pqErr.Code))
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	uc := newTestUseCase()

	req := testRequest()
	req.StartTime = time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase()

	t.Run("missing visitor email", func(t *testing.T) {
		req := testRequest()
		req.VisitorEmail = ""
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("malformed visitor email", func(t *testing.T) {
		req := testRequest()
		req.VisitorEmail = "not-an-email"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing aliases", func(t *testing.T) {
		req := testRequest()
		req.PageAlias = ""
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
