package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// MeetingRepository интерфейс репозитория встреч
type MeetingRepository interface {
	CountScheduledByUserInRange(ctx context.Context, userID int64, from, to time.Time) (int, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountConfirmedByOwner(ctx context.Context, ownerID int64) (int, error)
}

// TeamRepository интерфейс репозитория команд
type TeamRepository interface {
	CountByUserID(ctx context.Context, userID int64) (int, error)
}

// CalendarRepository интерфейс репозитория календарей
type CalendarRepository interface {
	CountByUserID(ctx context.Context, userID int64) (int, error)
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
