package meetings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// MeetingRepository интерфейс репозитория встреч
type MeetingRepository interface {
	Create(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error)
	GetByID(ctx context.Context, id int64) (*domain.Meeting, error)
	GetByUserInRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.Meeting, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MeetingStatus) error
}

// CalendarRepository интерфейс репозитория календарей
type CalendarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Calendar, error)
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
