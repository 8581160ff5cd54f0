package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/calendarprovider"
)

// BookingPageRepository интерфейс репозитория страниц бронирования
type BookingPageRepository interface {
	// GetByAliases получает страницу по паре алиасов владельца и страницы
	GetByAliases(ctx context.Context, userAlias, pageAlias string) (*domain.BookingPage, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByPageWithFilter получает бронирования страницы за период
	GetByPageWithFilter(ctx context.Context, filter domain.PageBookingsFilter) ([]*domain.Booking, error)
	// CountConfirmedByVisitor подсчитывает подтвержденные бронирования посетителя на странице
	CountConfirmedByVisitor(ctx context.Context, bookingPageID int64, visitorEmail string) (int, error)
}

// MeetingRepository интерфейс репозитория встреч
type MeetingRepository interface {
	// GetByCalendarInRange получает запланированные встречи календаря за период
	GetByCalendarInRange(ctx context.Context, calendarID int64, from, to time.Time) ([]*domain.Meeting, error)
}

// AvailabilityRepository интерфейс репозитория рабочих часов
type AvailabilityRepository interface {
	// GetByUserAndWeekday получает правило рабочих часов на день недели (0 = воскресенье)
	GetByUserAndWeekday(ctx context.Context, userID int64, dayOfWeek int) (*domain.WorkingHoursRule, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// CalendarProviderClient интерфейс клиента провайдера внешних календарей
type CalendarProviderClient interface {
	GetBusyIntervals(ctx context.Context, calendarID int64, date time.Time) ([]calendarprovider.BusyInterval, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
