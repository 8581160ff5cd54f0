package bookingpage

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

var pageColumns = []string{
	"id",
	"user_id",
	"calendar_id",
	"alias",
	"is_approved",
	"is_active",
	"duration_minutes",
	"buffer_before_minutes",
	"buffer_after_minutes",
	"max_bookings_per_visitor",
	"description",
	"created_at",
	"updated_at",
}

// Repository репозиторий страниц бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория страниц бронирования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую страницу бронирования
// Нарушение уникальности (user_id, alias) транслируется в ErrAliasTaken
func (r *Repository) Create(ctx context.Context, page *domain.BookingPage) (*domain.BookingPage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_pages").
		Columns(
			"user_id",
			"calendar_id",
			"alias",
			"is_approved",
			"is_active",
			"duration_minutes",
			"buffer_before_minutes",
			"buffer_after_minutes",
			"max_bookings_per_visitor",
			"description",
		).
		Values(
			page.UserID,
			page.CalendarID,
			page.Alias,
			page.IsApproved,
			page.IsActive,
			page.DurationMinutes,
			page.BufferBeforeMinutes,
			page.BufferAfterMinutes,
			page.MaxBookingsPerVisitor,
			page.Description,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&page.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgerrcode.UniqueViolation {
			return nil, ErrAliasTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	page.CreatedAt = createdAt.Time
	page.UpdatedAt = updatedAt.Time

	return page, nil
}

// GetByID получает страницу бронирования по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingPage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(pageColumns...).
		From("booking_pages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	return r.scanPageRow(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByAliases получает публичную страницу по алиасу владельца и алиасу страницы
// Выполняет join с users: именно так публичный URL /{userAlias}/{pageAlias}
// резолвится в страницу
func (r *Repository) GetByAliases(ctx context.Context, userAlias, pageAlias string) (*domain.BookingPage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cols := make([]string, len(pageColumns))
	for i, c := range pageColumns {
		cols[i] = "bp." + c
	}

	query, args, err := psqlbuilder.Select(cols...).
		From("booking_pages bp").
		Join("users u ON u.id = bp.user_id").
		Where(squirrel.Eq{"u.alias": userAlias, "bp.alias": pageAlias}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByAliases - build select query: %w", ErrBuildQuery, err)
	}

	return r.scanPageRow(executor.QueryRowContext(ctx, query, args...), "GetByAliases")
}

// GetByUserID получает все страницы бронирования пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.BookingPage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(pageColumns...).
		From("booking_pages").
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

	return r.scanPages(rows)
}

// GetPending получает страницы, ожидающие одобрения администратором
func (r *Repository) GetPending(ctx context.Context) ([]*domain.BookingPage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(pageColumns...).
		From("booking_pages").
		Where(squirrel.Eq{"is_approved": false}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPending - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPending - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPages(rows)
}

// Update обновляет настройки страницы бронирования
func (r *Repository) Update(ctx context.Context, page *domain.BookingPage) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_pages").
		Set("alias", page.Alias).
		Set("is_active", page.IsActive).
		Set("duration_minutes", page.DurationMinutes).
		Set("buffer_before_minutes", page.BufferBeforeMinutes).
		Set("buffer_after_minutes", page.BufferAfterMinutes).
		Set("max_bookings_per_visitor", page.MaxBookingsPerVisitor).
		Set("description", page.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": page.ID}).
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

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPageNotFound
	}

	return nil
}

// SetApproved выставляет флаг одобрения страницы
func (r *Repository) SetApproved(ctx context.Context, id int64, approved bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_pages").
		Set("is_approved", approved).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetApproved - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetApproved - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetApproved - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPageNotFound
	}

	return nil
}

func (r *Repository) scanPageRow(row *sql.Row, op string) (*domain.BookingPage, error) {
	var page domain.BookingPage
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&page.ID,
		&page.UserID,
		&page.CalendarID,
		&page.Alias,
		&page.IsApproved,
		&page.IsActive,
		&page.DurationMinutes,
		&page.BufferBeforeMinutes,
		&page.BufferAfterMinutes,
		&page.MaxBookingsPerVisitor,
		&page.Description,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan page: %w", ErrScanRow, op, err)
	}

	page.CreatedAt = createdAt.Time
	page.UpdatedAt = updatedAt.Time

	return &page, nil
}

func (r *Repository) scanPages(rows *sql.Rows) ([]*domain.BookingPage, error) {
	pages := make([]*domain.BookingPage, 0)

	for rows.Next() {
		var page domain.BookingPage
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&page.ID,
			&page.UserID,
			&page.CalendarID,
			&page.Alias,
			&page.IsApproved,
			&page.IsActive,
			&page.DurationMinutes,
			&page.BufferBeforeMinutes,
			&page.BufferAfterMinutes,
			&page.MaxBookingsPerVisitor,
			&page.Description,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanPages - scan row: %w", ErrScanRow, err)
		}

		page.CreatedAt = createdAt.Time
		page.UpdatedAt = updatedAt.Time

		pages = append(pages, &page)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPages - rows error: %w", ErrScanRow, err)
	}

	return pages, nil
}
