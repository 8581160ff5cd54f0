package calendars

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-SchedulingService/internal/service/calendars/models"
)

var aliasPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Service сервис для работы с календарями пользователя
type Service struct {
	calendarRepo CalendarRepository
	userRepo     UserRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса календарей
func NewService(
	calendarRepository CalendarRepository,
	userRepository UserRepository,
	logger Logger,
) *Service {
	return &Service{
		calendarRepo: calendarRepository,
		userRepo:     userRepository,
		logger:       logger,
	}
}

// Create создает новый календарь пользователя
func (s *Service) Create(ctx context.Context, req *models.CreateCalendarRequest) (*models.CalendarResponse, error) {
	s.logger.Info("Create: creating calendar alias=%s for user=%d", req.Alias, req.UserID)

	if err := validateAlias(req.Alias); err != nil {
		s.logger.Warn("Create: alias %q rejected for user=%d: %v", req.Alias, req.UserID, err)
		return nil, err
	}

	calendar := &domain.Calendar{
		UserID:    req.UserID,
		Alias:     req.Alias,
		IsPrimary: req.IsPrimary,
	}

	created, err := s.calendarRepo.Create(ctx, calendar)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrAliasTaken) {
			s.logger.Warn("Create: alias %q already taken for user=%d", req.Alias, req.UserID)
			return nil, ErrAliasTaken
		}
		s.logger.Error("Create: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created calendar id=%d for user=%d", created.ID, req.UserID)
	return models.FromDomainCalendar(created), nil
}

// ListByUser получает все календари пользователя
func (s *Service) ListByUser(ctx context.Context, userID int64) (*models.CalendarListResponse, error) {
	s.logger.Info("ListByUser: fetching calendars for user=%d", userID)

	calendars, err := s.calendarRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCalendarList(calendars), nil
}

// Update обновляет календарь; доступно владельцу и супер-администратору
func (s *Service) Update(ctx context.Context, calendarID int64, req *models.UpdateCalendarRequest) (*models.CalendarResponse, error) {
	s.logger.Info("Update: updating calendar id=%d by user=%d", calendarID, req.UserID)

	calendar, err := s.getVisibleCalendar(ctx, calendarID, req.UserID, "Update")
	if err != nil {
		return nil, err
	}

	if req.Alias != nil && *req.Alias != calendar.Alias {
		if err := validateAlias(*req.Alias); err != nil {
			s.logger.Warn("Update: alias %q rejected for calendar id=%d: %v", *req.Alias, calendarID, err)
			return nil, err
		}
		calendar.Alias = *req.Alias
	}
	if req.IsPrimary != nil {
		calendar.IsPrimary = *req.IsPrimary
	}

	if err := s.calendarRepo.Update(ctx, calendar); err != nil {
		if errors.Is(err, calendarRepo.ErrAliasTaken) {
			s.logger.Warn("Update: alias %q already taken for calendar id=%d", calendar.Alias, calendarID)
			return nil, ErrAliasTaken
		}
		s.logger.Error("Update: repository error for calendar id=%d: %v", calendarID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated calendar id=%d", calendarID)
	return models.FromDomainCalendar(calendar), nil
}

// Delete удаляет календарь; доступно владельцу и супер-администратору
// Связанные страницы бронирования и встречи удаляются каскадом
func (s *Service) Delete(ctx context.Context, calendarID, userID int64) error {
	s.logger.Info("Delete: deleting calendar id=%d by user=%d", calendarID, userID)

	if _, err := s.getVisibleCalendar(ctx, calendarID, userID, "Delete"); err != nil {
		return err
	}

	if err := s.calendarRepo.Delete(ctx, calendarID); err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			return ErrCalendarNotFound
		}
		s.logger.Error("Delete: repository error for calendar id=%d: %v", calendarID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted calendar id=%d", calendarID)
	return nil
}

// getVisibleCalendar получает календарь, доступный пользователю
// Чужой календарь для обычного пользователя неотличим от несуществующего
func (s *Service) getVisibleCalendar(ctx context.Context, calendarID, userID int64, op string) (*domain.Calendar, error) {
	calendar, err := s.calendarRepo.GetByID(ctx, calendarID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			s.logger.Warn("%s: calendar id=%d not found", op, calendarID)
			return nil, ErrCalendarNotFound
		}
		s.logger.Error("%s: repository error for calendar id=%d: %v", op, calendarID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if calendar.UserID != userID {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil || !user.IsSuperAdmin() {
			s.logger.Warn("%s: calendar id=%d hidden from user=%d", op, calendarID, userID)
			return nil, ErrCalendarNotFound
		}
	}

	return calendar, nil
}

func validateAlias(alias string) error {
	if alias == "" || len(alias) > domain.MaxAliasLength {
		return fmt.Errorf("%w: alias must be 1-%d characters", ErrInvalidInput, domain.MaxAliasLength)
	}
	if !aliasPattern.MatchString(alias) {
		return fmt.Errorf("%w: alias must contain only lowercase letters, digits and hyphens", ErrInvalidInput)
	}
	return nil
}
