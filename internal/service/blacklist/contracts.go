package blacklist

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BlacklistRepository интерфейс репозитория черного списка алиасов
type BlacklistRepository interface {
	Add(ctx context.Context, entry *domain.AliasBlacklistEntry) (*domain.AliasBlacklistEntry, error)
	Remove(ctx context.Context, alias string) error
	List(ctx context.Context) ([]*domain.AliasBlacklistEntry, error)
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
