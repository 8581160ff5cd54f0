package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/service/dashboard/models"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Service собирает сводку дашборда из реальных данных репозиториев
type Service struct {
	meetingRepo  MeetingRepository
	bookingRepo  BookingRepository
	teamRepo     TeamRepository
	calendarRepo CalendarRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса дашборда
func NewService(
	meetingRepository MeetingRepository,
	bookingRepository BookingRepository,
	teamRepository TeamRepository,
	calendarRepository CalendarRepository,
	userRepository UserRepository,
	logger Logger,
) *Service {
	return &Service{
		meetingRepo:  meetingRepository,
		bookingRepo:  bookingRepository,
		teamRepo:     teamRepository,
		calendarRepo: calendarRepository,
		userRepo:     userRepository,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetStats возвращает сводку по данным пользователя
// "Сегодня" считается в таймзоне пользователя, а не сервера
func (s *Service) GetStats(ctx context.Context, userID int64) (*models.StatsResponse, error) {
	s.logger.Info("GetStats: building dashboard stats for user=%d", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("GetStats: failed to get user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetStats - failed to get user: %v", ErrInternal, err)
	}

	loc, err := user.Location()
	if err != nil {
		s.logger.Error("GetStats: invalid timezone %q for user=%d: %v", user.Timezone, userID, err)
		return nil, fmt.Errorf("%w: GetStats - invalid user timezone: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now().In(loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	todayMeetings, err := s.meetingRepo.CountScheduledByUserInRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("GetStats: failed to count meetings for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetStats - failed to count meetings: %v", ErrInternal, err)
	}

	confirmedBookings, err := s.bookingRepo.CountConfirmedByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("GetStats: failed to count bookings for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetStats - failed to count bookings: %v", ErrInternal, err)
	}

	teams, err := s.teamRepo.CountByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetStats: failed to count teams for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetStats - failed to count teams: %v", ErrInternal, err)
	}

	calendars, err := s.calendarRepo.CountByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetStats: failed to count calendars for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetStats - failed to count calendars: %v", ErrInternal, err)
	}

	return &models.StatsResponse{
		TodayMeetings:     todayMeetings,
		ConfirmedBookings: confirmedBookings,
		Teams:             teams,
		Calendars:         calendars,
	}, nil
}
