package availability

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория рабочих часов
type AvailabilityRepository interface {
	ReplaceWeek(ctx context.Context, userID int64, rules []*domain.WorkingHoursRule) error
	GetByUserID(ctx context.Context, userID int64) ([]*domain.WorkingHoursRule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
