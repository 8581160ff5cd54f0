package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

var ruleColumns = []string{
	"id",
	"user_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил рабочих часов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ReplaceWeek заменяет все правила недели пользователя: delete + insert.
// Семантика replace-on-write: одно правило на день недели, неделя пишется целиком.
// Должен вызываться внутри транзакции (txmanager.Do), чтобы не оставить
// пользователя без расписания при сбое вставки.
func (r *Repository) ReplaceWeek(ctx context.Context, userID int64, rules []*domain.WorkingHoursRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("user_availability").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build delete query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute delete: %w", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("user_availability").
		Columns("user_id", "day_of_week", "start_time", "end_time", "is_available")

	for _, rule := range rules {
		insertBuilder = insertBuilder.Values(
			userID,
			rule.DayOfWeek,
			rule.StartTime,
			rule.EndTime,
			rule.IsAvailable,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// GetByUserID получает все правила недели пользователя, отсортированные по дню
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.WorkingHoursRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("user_availability").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows)
}

// GetByUserAndWeekday получает правило пользователя для конкретного дня недели
// Отсутствие правила - штатная ситуация (день недоступен), возвращается ErrRuleNotFound
func (r *Repository) GetByUserAndWeekday(ctx context.Context, userID int64, dayOfWeek int) (*domain.WorkingHoursRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("user_availability").
		Where(squirrel.Eq{"user_id": userID, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndWeekday - build select query: %w", ErrBuildQuery, err)
	}

	var rule domain.WorkingHoursRule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&rule.UserID,
		&rule.DayOfWeek,
		&rule.StartTime,
		&rule.EndTime,
		&rule.IsAvailable,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndWeekday - scan rule: %w", ErrScanRow, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}

func (r *Repository) scanRules(rows *sql.Rows) ([]*domain.WorkingHoursRule, error) {
	rules := make([]*domain.WorkingHoursRule, 0)

	for rows.Next() {
		var rule domain.WorkingHoursRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.UserID,
			&rule.DayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&rule.IsAvailable,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRules - scan row: %w", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRules - rows error: %w", ErrScanRow, err)
	}

	return rules, nil
}
