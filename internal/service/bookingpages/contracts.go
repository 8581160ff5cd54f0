package bookingpages

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// PageRepository интерфейс репозитория страниц бронирования
type PageRepository interface {
	Create(ctx context.Context, page *domain.BookingPage) (*domain.BookingPage, error)
	GetByID(ctx context.Context, id int64) (*domain.BookingPage, error)
	GetByAliases(ctx context.Context, userAlias, pageAlias string) (*domain.BookingPage, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.BookingPage, error)
	GetPending(ctx context.Context) ([]*domain.BookingPage, error)
	Update(ctx context.Context, page *domain.BookingPage) error
	SetApproved(ctx context.Context, id int64, approved bool) error
}

// CalendarRepository интерфейс репозитория календарей
type CalendarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Calendar, error)
}

// BlacklistRepository интерфейс репозитория черного списка алиасов
type BlacklistRepository interface {
	Contains(ctx context.Context, alias string) (bool, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
