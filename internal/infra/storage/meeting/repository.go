package meeting

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

var meetingColumns = []string{
	"id",
	"user_id",
	"calendar_id",
	"title",
	"description",
	"start_time",
	"end_time",
	"meeting_type",
	"location",
	"video_url",
	"participants",
	"buffer_before_minutes",
	"buffer_after_minutes",
	"travel_buffer_minutes",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со встречами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория встреч
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую встречу
func (r *Repository) Create(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("meetings").
		Columns(
			"user_id",
			"calendar_id",
			"title",
			"description",
			"start_time",
			"end_time",
			"meeting_type",
			"location",
			"video_url",
			"participants",
			"buffer_before_minutes",
			"buffer_after_minutes",
			"travel_buffer_minutes",
			"status",
		).
		Values(
			meeting.UserID,
			meeting.CalendarID,
			meeting.Title,
			meeting.Description,
			meeting.StartTime,
			meeting.EndTime,
			meeting.MeetingType,
			meeting.Location,
			meeting.VideoURL,
			pq.Array(meeting.Participants),
			meeting.BufferBeforeMinutes,
			meeting.BufferAfterMinutes,
			meeting.TravelBufferMinutes,
			meeting.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&meeting.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	meeting.CreatedAt = createdAt.Time
	meeting.UpdatedAt = updatedAt.Time

	return meeting, nil
}

// GetByID получает встречу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(meetingColumns...).
		From("meetings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	meetings, err := r.scanMeetings(rows)
	if err != nil {
		return nil, err
	}
	if len(meetings) == 0 {
		return nil, ErrMeetingNotFound
	}

	return meetings[0], nil
}

// GetByUserInRange получает встречи пользователя, пересекающие период [from, to)
func (r *Repository) GetByUserInRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(meetingColumns...).
		From("meetings").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Gt{"end_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserInRange - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserInRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanMeetings(rows)
}

// CountScheduledByUserInRange считает запланированные встречи пользователя в периоде [from, to)
func (r *Repository) CountScheduledByUserInRange(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("meetings").
		Where(squirrel.Eq{"user_id": userID, "status": domain.MeetingScheduled}).
		Where(squirrel.Gt{"end_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountScheduledByUserInRange - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountScheduledByUserInRange - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// GetByCalendarInRange получает запланированные встречи календаря, пересекающие [from, to)
// Используется conflict filter при вычислении доступности
func (r *Repository) GetByCalendarInRange(ctx context.Context, calendarID int64, from, to time.Time) ([]*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(meetingColumns...).
		From("meetings").
		Where(squirrel.Eq{"calendar_id": calendarID, "status": domain.MeetingScheduled}).
		Where(squirrel.Gt{"end_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCalendarInRange - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCalendarInRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanMeetings(rows)
}

// UpdateStatus обновляет статус встречи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.MeetingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("meetings").
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
		return ErrMeetingNotFound
	}

	return nil
}

func (r *Repository) scanMeetings(rows *sql.Rows) ([]*domain.Meeting, error) {
	meetings := make([]*domain.Meeting, 0)

	for rows.Next() {
		var meeting domain.Meeting
		var createdAt, updatedAt sql.NullTime
		var participants pq.StringArray

		err := rows.Scan(
			&meeting.ID,
			&meeting.UserID,
			&meeting.CalendarID,
			&meeting.Title,
			&meeting.Description,
			&meeting.StartTime,
			&meeting.EndTime,
			&meeting.MeetingType,
			&meeting.Location,
			&meeting.VideoURL,
			&participants,
			&meeting.BufferBeforeMinutes,
			&meeting.BufferAfterMinutes,
			&meeting.TravelBufferMinutes,
			&meeting.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanMeetings - scan row: %w", ErrScanRow, err)
		}

		meeting.Participants = participants
		meeting.CreatedAt = createdAt.Time
		meeting.UpdatedAt = updatedAt.Time

		meetings = append(meetings, &meeting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanMeetings - rows error: %w", ErrScanRow, err)
	}

	return meetings, nil
}
