package booking

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

var bookingColumns = []string{
	"id",
	"booking_page_id",
	"visitor_email",
	"visitor_name",
	"start_time",
	"end_time",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
//
// Нарушение constraint bookings_no_overlap (пересечение с подтвержденным
// бронированием) транслируется в ErrSlotTaken, а не в общую ошибку запроса:
// для admission-пути это ожидаемый исход конкурентной гонки, а не сбой.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_page_id",
			"visitor_email",
			"visitor_name",
			"start_time",
			"end_time",
			"status",
			"notes",
		).
		Values(
			booking.BookingPageID,
			booking.VisitorEmail,
			booking.VisitorName,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isOverlapViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// GetByPageWithFilter получает бронирования страницы с фильтрацией по периоду и статусу
//
// Внутри транзакции при выборке за ограниченный период добавляется FOR UPDATE:
// admission-путь блокирует бронирования дня, чтобы конкурентная вставка
// дождалась завершения проверки пересечений.
func (r *Repository) GetByPageWithFilter(ctx context.Context, filter domain.PageBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_page_id": filter.BookingPageID})

	// Фильтрация по периоду: берем все бронирования, пересекающие [StartTime, EndTime)
	if filter.StartTime != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_time": *filter.StartTime})
	}
	if filter.EndTime != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.EndTime})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusConfirmed})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.StartTime != nil && filter.EndTime != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPageWithFilter - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPageWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CountConfirmedByVisitor считает подтвержденные бронирования посетителя на странице
// Используется для проверки лимита maxBookingsPerVisitor
func (r *Repository) CountConfirmedByVisitor(ctx context.Context, bookingPageID int64, visitorEmail string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{
			"booking_page_id": bookingPageID,
			"visitor_email":   visitorEmail,
			"status":          domain.StatusConfirmed,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountConfirmedByVisitor - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountConfirmedByVisitor - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// CountConfirmedByOwner считает подтвержденные бронирования по всем страницам владельца
func (r *Repository) CountConfirmedByOwner(ctx context.Context, ownerID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings b").
		Join("booking_pages p ON p.id = b.booking_page_id").
		Where(squirrel.Eq{
			"p.user_id": ownerID,
			"b.status":  domain.StatusConfirmed,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountConfirmedByOwner - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountConfirmedByOwner - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку результата в бронирование
func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BookingPageID,
		&booking.VisitorEmail,
		&booking.VisitorName,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.BookingPageID,
			&booking.VisitorEmail,
			&booking.VisitorName,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// isOverlapViolation проверяет, что ошибка - нарушение exclusion/unique constraint
func isOverlapViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	code := string(pqErr.Code)
	return code == pgerrcode.ExclusionViolation || code == pgerrcode.UniqueViolation
}
