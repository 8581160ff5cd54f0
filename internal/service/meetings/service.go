package meetings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/calendar"
	meetingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/meeting"
	"github.com/m04kA/SMC-SchedulingService/internal/service/meetings/models"
)

// Окно листинга по умолчанию, когда границы периода не заданы
const (
	defaultListPastDays   = 30
	defaultListFutureDays = 90
)

// Service сервис для работы со встречами владельца календаря
type Service struct {
	meetingRepo  MeetingRepository
	calendarRepo CalendarRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса встреч
func NewService(
	meetingRepository MeetingRepository,
	calendarRepository CalendarRepository,
	logger Logger,
) *Service {
	return &Service{
		meetingRepo:  meetingRepository,
		calendarRepo: calendarRepository,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает новую встречу
// Встреча сразу занимает время в календаре и исключает пересекающиеся слоты
// из публичной доступности владельца
func (s *Service) Create(ctx context.Context, req *models.CreateMeetingRequest) (*models.MeetingResponse, error) {
	s.logger.Info("Create: creating meeting for user=%d, calendar=%d, start=%s",
		req.UserID, req.CalendarID, req.StartTime.Format(time.RFC3339))

	meetingType, err := validateCreateRequest(req)
	if err != nil {
		s.logger.Warn("Create: validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	// Календарь должен существовать и принадлежать пользователю
	if err := s.checkCalendarOwnership(ctx, req.CalendarID, req.UserID); err != nil {
		return nil, err
	}

	meeting := &domain.Meeting{
		UserID:              req.UserID,
		CalendarID:          req.CalendarID,
		Title:               req.Title,
		Description:         req.Description,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		MeetingType:         meetingType,
		Location:            req.Location,
		VideoURL:            req.VideoURL,
		Participants:        req.Participants,
		BufferBeforeMinutes: req.BufferBeforeMinutes,
		BufferAfterMinutes:  req.BufferAfterMinutes,
		TravelBufferMinutes: req.TravelBufferMinutes,
		Status:              domain.MeetingScheduled,
	}

	// Travel buffer имеет смысл только для очных встреч
	if meetingType != domain.MeetingInPerson {
		meeting.TravelBufferMinutes = 0
	}

	created, err := s.meetingRepo.Create(ctx, meeting)
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created meeting id=%d for user=%d", created.ID, req.UserID)
	return models.FromDomainMeeting(created), nil
}

// List получает встречи пользователя за период
// Незаданные границы периода заменяются окном по умолчанию
func (s *Service) List(ctx context.Context, req *models.ListMeetingsRequest) (*models.MeetingListResponse, error) {
	now := s.timeProvider.Now()

	from := now.AddDate(0, 0, -defaultListPastDays)
	if req.From != nil {
		from = *req.From
	}
	to := now.AddDate(0, 0, defaultListFutureDays)
	if req.To != nil {
		to = *req.To
	}

	s.logger.Info("List: fetching meetings for user=%d, period=%s to %s",
		req.UserID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	if !to.After(from) {
		s.logger.Warn("List: invalid period for user=%d", req.UserID)
		return nil, fmt.Errorf("%w: 'to' must be after 'from'", ErrInvalidInput)
	}

	meetings, err := s.meetingRepo.GetByUserInRange(ctx, req.UserID, from, to)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d meetings for user=%d", len(meetings), req.UserID)
	return models.FromDomainMeetingList(meetings), nil
}

// Cancel отменяет встречу
// Доступно только создателю встречи; занятое время освобождается
func (s *Service) Cancel(ctx context.Context, meetingID int64, req *models.CancelMeetingRequest) error {
	s.logger.Info("Cancel: cancelling meeting id=%d by user=%d", meetingID, req.UserID)

	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
			s.logger.Warn("Cancel: meeting id=%d not found", meetingID)
			return ErrMeetingNotFound
		}
		s.logger.Error("Cancel: repository error for meeting id=%d: %v", meetingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if meeting.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to meeting id=%d", req.UserID, meetingID)
		return ErrAccessDenied
	}

	if !meeting.CanBeCancelled() {
		s.logger.Warn("Cancel: meeting id=%d cannot be cancelled, status=%s", meetingID, meeting.Status)
		return ErrCannotCancel
	}

	if err := s.meetingRepo.UpdateStatus(ctx, meetingID, domain.MeetingCancelled); err != nil {
		if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
			return ErrMeetingNotFound
		}
		s.logger.Error("Cancel: repository error for meeting id=%d: %v", meetingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled meeting id=%d", meetingID)
	return nil
}

// Вспомогательные методы

// checkCalendarOwnership проверяет, что календарь существует и принадлежит пользователю
func (s *Service) checkCalendarOwnership(ctx context.Context, calendarID, userID int64) error {
	cal, err := s.calendarRepo.GetByID(ctx, calendarID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			s.logger.Warn("checkCalendarOwnership: calendar id=%d not found", calendarID)
			return ErrCalendarNotFound
		}
		s.logger.Error("checkCalendarOwnership: repository error for calendar id=%d: %v", calendarID, err)
		return fmt.Errorf("%w: checkCalendarOwnership - repository error: %v", ErrInternal, err)
	}

	if cal.UserID != userID {
		s.logger.Warn("checkCalendarOwnership: calendar id=%d does not belong to user=%d", calendarID, userID)
		return ErrAccessDenied
	}

	return nil
}

// validateCreateRequest проверяет бизнес-ограничения создаваемой встречи
func validateCreateRequest(req *models.CreateMeetingRequest) (domain.MeetingType, error) {
	if req.Title == "" {
		return "", fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxMeetingTitleLength {
		return "", fmt.Errorf("%w: title is too long (max %d characters)", ErrInvalidInput, domain.MaxMeetingTitleLength)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return "", fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if !req.EndTime.After(req.StartTime) {
		return "", ErrInvalidTimeRange
	}

	meetingType, err := models.ToDomainMeetingType(req.MeetingType)
	if err != nil {
		return "", fmt.Errorf("%w: meetingType must be 'virtual' or 'in_person'", ErrInvalidInput)
	}

	if req.BufferBeforeMinutes < domain.MinBufferMinutes || req.BufferBeforeMinutes > domain.MaxBufferMinutes {
		return "", fmt.Errorf("%w: bufferBeforeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}
	if req.BufferAfterMinutes < domain.MinBufferMinutes || req.BufferAfterMinutes > domain.MaxBufferMinutes {
		return "", fmt.Errorf("%w: bufferAfterMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}
	if req.TravelBufferMinutes < 0 || req.TravelBufferMinutes > domain.MaxTravelBufferMinutes {
		return "", fmt.Errorf("%w: travelBufferMinutes must be between 0 and %d",
			ErrInvalidInput, domain.MaxTravelBufferMinutes)
	}

	if len(req.Participants) > domain.MaxParticipantsPerMeeting {
		return "", fmt.Errorf("%w: too many participants (max %d)", ErrInvalidInput, domain.MaxParticipantsPerMeeting)
	}

	return meetingType, nil
}
