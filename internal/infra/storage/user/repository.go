package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

var userColumns = []string{
	"id",
	"name",
	"email",
	"alias",
	"role",
	"timezone",
	"created_at",
}

// Repository read-only репозиторий пользователей
// Учетные записи создает и изменяет upstream auth-сервис; scheduling-ядру
// нужны только identity, алиас, роль и таймзона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByAlias получает пользователя по публичному алиасу
func (r *Repository) GetByAlias(ctx context.Context, alias string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"alias": alias}, "GetByAlias")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	var u domain.User
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Alias,
		&u.Role,
		&u.Timezone,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %w", ErrScanRow, op, err)
	}

	if u.Timezone == "" {
		u.Timezone = domain.DefaultTimezone
	}
	u.CreatedAt = createdAt.Time

	return &u, nil
}
