package blacklist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

var blacklistColumns = []string{
	"id",
	"alias",
	"reason",
	"created_by",
	"created_at",
}

// Repository репозиторий черного списка алиасов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черного списка
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Add добавляет алиас в черный список
func (r *Repository) Add(ctx context.Context, entry *domain.AliasBlacklistEntry) (*domain.AliasBlacklistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("alias_blacklist").
		Columns("alias", "reason", "created_by").
		Values(entry.Alias, entry.Reason, entry.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Add - build insert query: %w", ErrBuildQuery, err)
	}

	created := *entry
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: alias = %s", ErrAliasAlreadyBlocked, entry.Alias)
		}
		return nil, fmt.Errorf("%w: Add - scan returned row: %w", ErrScanRow, err)
	}

	return &created, nil
}

// Remove удаляет алиас из черного списка
func (r *Repository) Remove(ctx context.Context, alias string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("alias_blacklist").
		Where(squirrel.Eq{"alias": alias}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Remove - execute query: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Remove - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: alias = %s", ErrEntryNotFound, alias)
	}

	return nil
}

// List возвращает все записи черного списка
func (r *Repository) List(ctx context.Context) ([]*domain.AliasBlacklistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blacklistColumns...).
		From("alias_blacklist").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.AliasBlacklistEntry, 0)
	for rows.Next() {
		var e domain.AliasBlacklistEntry
		if err := rows.Scan(&e.ID, &e.Alias, &e.Reason, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return entries, nil
}

// Contains проверяет, находится ли алиас в черном списке
func (r *Repository) Contains(ctx context.Context, alias string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("alias_blacklist").
		Where(squirrel.Eq{"alias": alias}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Contains - build select query: %w", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Contains - scan row: %w", ErrScanRow, err)
	}

	return true, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgerrcode.UniqueViolation
	}
	return false
}
