package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	pageRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/bookingpage"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями со стороны владельца страницы
type Service struct {
	bookingRepo BookingRepository
	pageRepo    PageRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepository BookingRepository,
	pageRepository PageRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepository,
		pageRepo:    pageRepository,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Доступно только владельцу страницы, на которой сделано бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if err := s.checkPageOwnership(ctx, booking.BookingPageID, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetPageBookings получает бронирования страницы с фильтрацией по периоду и статусу
// Доступно только владельцу страницы
//
// Примеры использования:
// - Все подтвержденные бронирования: GetPageBookings(ctx, &GetPageBookingsRequest{BookingPageID: 1, UserID: 2})
// - Бронирования за период: указать StartTime и EndTime
// - Включая отмененные: IncludeInactive = true
func (s *Service) GetPageBookings(ctx context.Context, req *models.GetPageBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetPageBookings: fetching bookings for page=%d, user=%d", req.BookingPageID, req.UserID)

	if err := s.checkPageOwnership(ctx, req.BookingPageID, req.UserID); err != nil {
		s.logger.Warn("GetPageBookings: access denied for user=%d to page=%d", req.UserID, req.BookingPageID)
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetPageBookings: invalid filter for page=%d: %v", req.BookingPageID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByPageWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetPageBookings: repository error for page=%d: %v", req.BookingPageID, err)
		return nil, fmt.Errorf("%w: GetPageBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPageBookings: fetched %d bookings for page=%d", len(bookings), req.BookingPageID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Доступно только владельцу страницы; слот снова становится доступным
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.getBooking(ctx, bookingID, "Cancel")
	if err != nil {
		return err
	}

	if err := s.checkPageOwnership(ctx, booking.BookingPageID, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkPageOwnership проверяет, что пользователь владеет страницей бронирования
func (s *Service) checkPageOwnership(ctx context.Context, pageID, userID int64) error {
	page, err := s.pageRepo.GetByID(ctx, pageID)
	if err != nil {
		if errors.Is(err, pageRepo.ErrPageNotFound) {
			return ErrPageNotFound
		}
		return fmt.Errorf("%w: checkPageOwnership - repository error: %v", ErrInternal, err)
	}

	if page.UserID != userID {
		return ErrAccessDenied
	}

	return nil
}
