package team

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

var teamColumns = []string{
	"id",
	"user_id",
	"name",
	"description",
	"emails",
	"created_at",
	"updated_at",
}

// Repository репозиторий команд
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория команд
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую команду
func (r *Repository) Create(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("teams").
		Columns(
			"user_id",
			"name",
			"description",
			"emails",
		).
		Values(
			team.UserID,
			team.Name,
			team.Description,
			pq.Array(team.Emails),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&team.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	team.CreatedAt = createdAt.Time
	team.UpdatedAt = updatedAt.Time

	return team, nil
}

// GetByUserID получает все команды пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Team, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(teamColumns...).
		From("teams").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		var t domain.Team
		var emails pq.StringArray
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &emails, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %w", ErrScanRow, err)
		}

		t.Emails = emails
		t.CreatedAt = createdAt.Time
		t.UpdatedAt = updatedAt.Time
		teams = append(teams, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %w", ErrScanRow, err)
	}

	return teams, nil
}

// CountByUserID возвращает количество команд пользователя
func (r *Repository) CountByUserID(ctx context.Context, userID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("teams").
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
