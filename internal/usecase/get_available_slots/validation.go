package get_available_slots

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserAlias == "" {
		return fmt.Errorf("%w: userAlias is required", ErrInvalidInput)
	}

	if req.PageAlias == "" {
		return fmt.Errorf("%w: pageAlias is required", ErrInvalidInput)
	}

	if len(req.UserAlias) > domain.MaxAliasLength || len(req.PageAlias) > domain.MaxAliasLength {
		return fmt.Errorf("%w: alias is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.VisitorEmail != nil {
		if _, err := mail.ParseAddress(*req.VisitorEmail); err != nil {
			return fmt.Errorf("%w: invalid visitorEmail format", ErrInvalidInput)
		}
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом (в таймзоне владельца)
func validateDate(date time.Time, now time.Time, loc *time.Location) error {
	nowLocal := now.In(loc)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	nowOnly := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}
