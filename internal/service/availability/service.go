package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Service сервис для работы с расписанием рабочих часов
type Service struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(
	availabilityRepository AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepository,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetWeek получает расписание недели пользователя
func (s *Service) GetWeek(ctx context.Context, userID int64) (*models.WeekResponse, error) {
	s.logger.Info("GetWeek: fetching availability for user=%d", userID)

	rules, err := s.availabilityRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWeek: fetched %d rules for user=%d", len(rules), userID)
	return models.FromDomainRules(rules), nil
}

// SetWeek заменяет расписание недели целиком
// Delete + insert выполняются в одной транзакции, чтобы сбой вставки
// не оставил пользователя без расписания
func (s *Service) SetWeek(ctx context.Context, req *models.SetWeekRequest) (*models.WeekResponse, error) {
	s.logger.Info("SetWeek: replacing availability for user=%d, rules=%d", req.UserID, len(req.Rules))

	rules, err := toDomainRules(req)
	if err != nil {
		s.logger.Warn("SetWeek: validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.availabilityRepo.ReplaceWeek(txCtx, req.UserID, rules)
	})
	if err != nil {
		s.logger.Error("SetWeek: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: SetWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetWeek: successfully replaced availability for user=%d", req.UserID)
	return models.FromDomainRules(rules), nil
}

// toDomainRules валидирует запрос и конвертирует правила в domain модели
func toDomainRules(req *models.SetWeekRequest) ([]*domain.WorkingHoursRule, error) {
	seen := make(map[int]bool, len(req.Rules))
	rules := make([]*domain.WorkingHoursRule, 0, len(req.Rules))

	for _, input := range req.Rules {
		if input.DayOfWeek < 0 || input.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
		}
		if seen[input.DayOfWeek] {
			return nil, fmt.Errorf("%w: duplicate rule for dayOfWeek=%d", ErrInvalidInput, input.DayOfWeek)
		}
		seen[input.DayOfWeek] = true

		start, err := types.NewTimeStringFromString(input.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid startTime for dayOfWeek=%d", ErrInvalidInput, input.DayOfWeek)
		}
		end, err := types.NewTimeStringFromString(input.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endTime for dayOfWeek=%d", ErrInvalidInput, input.DayOfWeek)
		}

		// Интервалы через полночь не поддерживаются: конец дня не раньше начала
		if input.IsAvailable && start.IsAfter(end) {
			return nil, fmt.Errorf("%w: endTime must not be before startTime for dayOfWeek=%d",
				ErrInvalidRule, input.DayOfWeek)
		}

		rules = append(rules, &domain.WorkingHoursRule{
			UserID:      req.UserID,
			DayOfWeek:   input.DayOfWeek,
			StartTime:   start,
			EndTime:     end,
			IsAvailable: input.IsAvailable,
		})
	}

	return rules, nil
}
