package calendar

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

var calendarColumns = []string{
	"id",
	"user_id",
	"alias",
	"is_primary",
	"created_at",
	"updated_at",
}

// Repository репозиторий календарей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календарей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый календарь
// Нарушение уникальности (user_id, alias) транслируется в ErrAliasTaken
func (r *Repository) Create(ctx context.Context, calendar *domain.Calendar) (*domain.Calendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendars").
		Columns(
			"user_id",
			"alias",
			"is_primary",
		).
		Values(
			calendar.UserID,
			calendar.Alias,
			calendar.IsPrimary,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&calendar.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgerrcode.UniqueViolation {
			return nil, ErrAliasTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	calendar.CreatedAt = createdAt.Time
	calendar.UpdatedAt = updatedAt.Time

	return calendar, nil
}

// Update обновляет алиас и признак основного календаря
func (r *Repository) Update(ctx context.Context, calendar *domain.Calendar) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("calendars").
		Set("alias", calendar.Alias).
		Set("is_primary", calendar.IsPrimary).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": calendar.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgerrcode.UniqueViolation {
			return ErrAliasTaken
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCalendarNotFound
	}

	return nil
}

// Delete удаляет календарь; связанные страницы и встречи удаляются каскадом в БД
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCalendarNotFound
	}

	return nil
}

// CountByUserID возвращает количество календарей пользователя
func (r *Repository) CountByUserID(ctx context.Context, userID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("calendars").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByUserID - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByUserID - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// GetByID получает календарь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Calendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(calendarColumns...).
		From("calendars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var c domain.Calendar
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.UserID,
		&c.Alias,
		&c.IsPrimary,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCalendarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan calendar: %w", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// GetByUserID получает все календари пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Calendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(calendarColumns...).
		From("calendars").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("is_primary DESC, created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	calendars := make([]*domain.Calendar, 0)
	for rows.Next() {
		var c domain.Calendar
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&c.ID, &c.UserID, &c.Alias, &c.IsPrimary, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %w", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time
		calendars = append(calendars, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %w", ErrScanRow, err)
	}

	return calendars, nil
}
