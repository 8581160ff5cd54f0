package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	pageRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/bookingpage"
	providerClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/calendarprovider"
	"github.com/m04kA/SMC-SchedulingService/internal/slots"
)

// UseCase use case для получения доступных слотов страницы бронирования
type UseCase struct {
	pageRepo         BookingPageRepository
	bookingRepo      BookingRepository
	meetingRepo      MeetingRepository
	availabilityRepo AvailabilityRepository
	userRepo         UserRepository
	providerClient   CalendarProviderClient
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pageRepository BookingPageRepository,
	bookingRepository BookingRepository,
	meetingRepository MeetingRepository,
	availabilityRepository AvailabilityRepository,
	userRepository UserRepository,
	provider CalendarProviderClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		pageRepo:         pageRepository,
		bookingRepo:      bookingRepository,
		meetingRepo:      meetingRepository,
		availabilityRepo: availabilityRepository,
		userRepo:         userRepository,
		providerClient:   provider,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%s, page=%s, date=%s",
		req.UserAlias, req.PageAlias, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем страницу бронирования по паре алиасов
	page, err := uc.pageRepo.GetByAliases(ctx, req.UserAlias, req.PageAlias)
	if err != nil {
		if errors.Is(err, pageRepo.ErrPageNotFound) {
			uc.logger.Warn("GetAvailableSlots: page %s/%s not found", req.UserAlias, req.PageAlias)
			return nil, ErrPageNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get page %s/%s: %v", req.UserAlias, req.PageAlias, err)
		return nil, fmt.Errorf("%w: failed to get booking page: %w", ErrInternal, err)
	}

	// 4. Страница должна быть одобрена и включена владельцем
	if !page.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: page id=%d is not bookable (approved=%t, active=%t)",
			page.ID, page.IsApproved, page.IsActive)
		return nil, ErrPageUnavailable
	}

	// 5. Получаем владельца и его таймзону
	owner, err := uc.userRepo.GetByID(ctx, page.UserID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get page owner id=%d: %v", page.UserID, err)
		return nil, fmt.Errorf("%w: failed to get page owner: %w", ErrInternal, err)
	}

	loc, err := owner.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid timezone %q for user id=%d: %v", owner.Timezone, owner.ID, err)
		return nil, fmt.Errorf("%w: invalid owner timezone: %w", ErrInternal, err)
	}

	// 6. Валидация даты: слоты в прошлом не выдаются
	if err := validateDate(req.Date, now, loc); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 7. Проверяем лимит бронирований посетителя, если известен его email
	if req.VisitorEmail != nil && page.MaxBookingsPerVisitor > 0 {
		count, err := uc.bookingRepo.CountConfirmedByVisitor(ctx, page.ID, *req.VisitorEmail)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to count visitor bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to count visitor bookings: %w", ErrInternal, err)
		}
		if count >= page.MaxBookingsPerVisitor {
			uc.logger.Info("GetAvailableSlots: visitor reached booking limit %d/%d on page id=%d",
				count, page.MaxBookingsPerVisitor, page.ID)
			return nil, ErrBookingLimitReached
		}
	}

	// 8. Получаем правило рабочих часов на день недели даты (в таймзоне владельца)
	// Дата приходит как полночь UTC: конвертация через In() сдвинула бы день
	// для западных таймзон, поэтому дата собирается из компонент заново
	dateLocal := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)
	rule, err := uc.availabilityRepo.GetByUserAndWeekday(ctx, owner.ID, domain.WeekdayOf(dateLocal))
	if err != nil && !errors.Is(err, availabilityRepo.ErrRuleNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %w", ErrInternal, err)
	}

	// 9. Получаем занятость внешнего календаря
	// Отсутствие интеграции провайдер отдает как пустой список - это не ошибка
	providerIntervals, err := uc.providerClient.GetBusyIntervals(ctx, page.CalendarID, dateLocal)
	if err != nil {
		// Некорректный ответ провайдера - та же ситуация "не смогли проверить",
		// что и недоступность: показывать ложную свободу нельзя
		if errors.Is(err, providerClient.ErrProviderUnavailable) || errors.Is(err, providerClient.ErrInvalidResponse) {
			uc.logger.Error("GetAvailableSlots: provider unavailable for calendar id=%d: %v", page.CalendarID, err)
			return nil, ErrProviderUnavailable
		}
		uc.logger.Error("GetAvailableSlots: failed to get provider busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get provider busy intervals: %w", ErrInternal, err)
	}

	// 10. Вычисляем открытые интервалы дня
	open, err := slots.ResolveOpenIntervals(rule, dateLocal, loc, providerBusyRanges(providerIntervals))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve open intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve open intervals: %w", ErrInternal, err)
	}

	// 11. Собираем занятость из бронирований и встреч владельца
	from, to := busyFetchWindow(dateLocal, loc)

	filter := domain.PageBookingsFilter{
		BookingPageID: page.ID,
		StartTime:     &from,
		EndTime:       &to,
	}
	bookings, err := uc.bookingRepo.GetByPageWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
	}

	meetings, err := uc.meetingRepo.GetByCalendarInRange(ctx, page.CalendarID, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get meetings: %v", err)
		return nil, fmt.Errorf("%w: failed to get meetings: %w", ErrInternal, err)
	}

	busy := slots.BusyFromBookings(bookings, page)
	busy = append(busy, slots.BusyFromMeetings(meetings)...)

	// 12. Вычитаем занятость и нарезаем слоты
	free := slots.FilterConflicts(open, busy)

	generated, err := slots.GenerateSlots(
		free,
		page.DurationMinutes,
		page.BufferBeforeMinutes,
		page.BufferAfterMinutes,
		0, 0,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %w", ErrInternal, err)
	}

	// 13. Для сегодняшней даты отбрасываем слоты, начинающиеся в прошлом
	result := make([]Slot, 0, len(generated))
	for _, s := range generated {
		if s.Start.Before(now) {
			continue
		}
		result = append(result, Slot{StartTime: s.Start, EndTime: s.End})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for page id=%d, date=%s",
		len(result), page.ID, dateLocal.Format(domain.DateFormat))

	return &Response{
		UserAlias:       req.UserAlias,
		PageAlias:       req.PageAlias,
		Date:            dateLocal,
		Timezone:        owner.Timezone,
		DurationMinutes: page.DurationMinutes,
		Slots:           result,
	}, nil
}
