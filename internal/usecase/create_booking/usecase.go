package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	pageRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/bookingpage"
	providerClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/calendarprovider"
	"github.com/m04kA/SMC-SchedulingService/internal/slots"
)

// UseCase use case для создания бронирования
type UseCase struct {
	pageRepo         BookingPageRepository
	bookingRepo      BookingRepository
	meetingRepo      MeetingRepository
	availabilityRepo AvailabilityRepository
	userRepo         UserRepository
	providerClient   CalendarProviderClient
	txManager        TransactionManager
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
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		pageRepo:         pageRepository,
		bookingRepo:      bookingRepository,
		meetingRepo:      meetingRepository,
		availabilityRepo: availabilityRepository,
		userRepo:         userRepository,
		providerClient:   provider,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности слота и вставка выполняются в сериализуемой транзакции,
// чтобы два посетителя не забронировали одно и то же время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, page=%s, start=%s",
		req.UserAlias, req.PageAlias, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем страницу бронирования по паре алиасов
	page, err := uc.pageRepo.GetByAliases(ctx, req.UserAlias, req.PageAlias)
	if err != nil {
		if errors.Is(err, pageRepo.ErrPageNotFound) {
			uc.logger.Warn("CreateBooking: page %s/%s not found", req.UserAlias, req.PageAlias)
			return nil, ErrPageNotFound
		}
		uc.logger.Error("CreateBooking: failed to get page %s/%s: %v", req.UserAlias, req.PageAlias, err)
		return nil, fmt.Errorf("%w: failed to get booking page: %w", ErrInternal, err)
	}

	// 4. Страница должна быть одобрена и включена владельцем
	if !page.IsBookable() {
		uc.logger.Warn("CreateBooking: page id=%d is not bookable (approved=%t, active=%t)",
			page.ID, page.IsApproved, page.IsActive)
		return nil, ErrPageUnavailable
	}

	// 5. Получаем владельца и его таймзону
	owner, err := uc.userRepo.GetByID(ctx, page.UserID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get page owner id=%d: %v", page.UserID, err)
		return nil, fmt.Errorf("%w: failed to get page owner: %w", ErrInternal, err)
	}

	loc, err := owner.Location()
	if err != nil {
		uc.logger.Error("CreateBooking: invalid timezone %q for user id=%d: %v", owner.Timezone, owner.ID, err)
		return nil, fmt.Errorf("%w: invalid owner timezone: %w", ErrInternal, err)
	}

	// 6. Бронировать время в прошлом нельзя
	if !req.StartTime.After(now) {
		uc.logger.Warn("CreateBooking: start time %s is in the past", req.StartTime.Format(time.RFC3339))
		return nil, ErrInvalidDate
	}

	// 7. Получаем занятость внешнего календаря до открытия транзакции,
	// чтобы не держать блокировки на время сетевого вызова
	startLocal := req.StartTime.In(loc)

	providerIntervals, err := uc.providerClient.GetBusyIntervals(ctx, page.CalendarID, startLocal)
	if err != nil {
		// Некорректный ответ провайдера - та же ситуация "не смогли проверить",
		// что и недоступность: показывать ложную свободу нельзя
		if errors.Is(err, providerClient.ErrProviderUnavailable) || errors.Is(err, providerClient.ErrInvalidResponse) {
			uc.logger.Error("CreateBooking: provider unavailable for calendar id=%d: %v", page.CalendarID, err)
			return nil, ErrProviderUnavailable
		}
		uc.logger.Error("CreateBooking: failed to get provider busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get provider busy intervals: %w", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 8. Выполняем проверку доступности и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Правило рабочих часов на день недели слота
		rule, err := uc.availabilityRepo.GetByUserAndWeekday(txCtx, owner.ID, domain.WeekdayOf(startLocal))
		if err != nil && !errors.Is(err, availabilityRepo.ErrRuleNotFound) {
			uc.logger.Error("CreateBooking: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %w", ErrInternal, err)
		}

		// 8.2. Открытые интервалы дня
		open, err := slots.ResolveOpenIntervals(rule, startLocal, loc, providerBusyRanges(providerIntervals))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to resolve open intervals: %v", err)
			return fmt.Errorf("%w: failed to resolve open intervals: %w", ErrInternal, err)
		}

		// 8.3. Бронирования дня с блокировкой (FOR UPDATE)
		from, to := busyFetchWindow(startLocal, loc)

		filter := domain.PageBookingsFilter{
			BookingPageID: page.ID,
			StartTime:     &from,
			EndTime:       &to,
		}
		bookings, err := uc.bookingRepo.GetByPageWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 8.4. Встречи владельца за то же окно
		meetings, err := uc.meetingRepo.GetByCalendarInRange(txCtx, page.CalendarID, from, to)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get meetings: %v", err)
			return fmt.Errorf("%w: failed to get meetings: %w", ErrInternal, err)
		}

		// 8.5. Пересчитываем доступные слоты по текущему состоянию
		busy := slots.BusyFromBookings(bookings, page)
		busy = append(busy, slots.BusyFromMeetings(meetings)...)

		free := slots.FilterConflicts(open, busy)

		available, err := slots.GenerateSlots(
			free,
			page.DurationMinutes,
			page.BufferBeforeMinutes,
			page.BufferAfterMinutes,
			0, 0,
		)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate slots: %v", err)
			return fmt.Errorf("%w: failed to generate slots: %w", ErrInternal, err)
		}

		// 8.6. Запрошенное время должно совпадать со стартом доступного слота
		if !slots.ContainsStart(available, req.StartTime) {
			uc.logger.Warn("CreateBooking: start %s is not an available slot on page id=%d",
				req.StartTime.Format(time.RFC3339), page.ID)
			return ErrSlotConflict
		}

		// 8.7. Проверяем лимит бронирований посетителя
		if page.MaxBookingsPerVisitor > 0 {
			count, err := uc.bookingRepo.CountConfirmedByVisitor(txCtx, page.ID, req.VisitorEmail)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to count visitor bookings: %v", err)
				return fmt.Errorf("%w: failed to count visitor bookings: %w", ErrInternal, err)
			}
			if count >= page.MaxBookingsPerVisitor {
				uc.logger.Warn("CreateBooking: visitor reached booking limit %d/%d on page id=%d",
					count, page.MaxBookingsPerVisitor, page.ID)
				return ErrBookingLimitReached
			}
		}

		// 8.8. Создаем подтвержденное бронирование
		booking := &domain.Booking{
			BookingPageID: page.ID,
			VisitorEmail:  req.VisitorEmail,
			VisitorName:   req.VisitorName,
			StartTime:     req.StartTime,
			EndTime:       req.StartTime.Add(time.Duration(page.DurationMinutes) * time.Minute),
			Status:        domain.StatusConfirmed,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Exclusion constraint в БД - последний рубеж против гонки
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot taken concurrently on page id=%d", page.ID)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d on page id=%d", result.ID, page.ID)

	return &Response{
		ID:            result.ID,
		BookingPageID: result.BookingPageID,
		VisitorEmail:  result.VisitorEmail,
		VisitorName:   result.VisitorName,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Status:        string(result.Status),
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
