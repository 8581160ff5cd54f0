package calendars

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// CalendarRepository интерфейс репозитория календарей
type CalendarRepository interface {
	Create(ctx context.Context, calendar *domain.Calendar) (*domain.Calendar, error)
	GetByID(ctx context.Context, id int64) (*domain.Calendar, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Calendar, error)
	Update(ctx context.Context, calendar *domain.Calendar) error
	Delete(ctx context.Context, id int64) error
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
