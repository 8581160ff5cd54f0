package teams

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// TeamRepository интерфейс репозитория команд
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) (*domain.Team, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Team, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
