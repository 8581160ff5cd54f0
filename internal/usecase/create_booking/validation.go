package create_booking

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/calendarprovider"
	"github.com/m04kA/SMC-SchedulingService/pkg/timerange"
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

	if req.VisitorEmail == "" {
		return fmt.Errorf("%w: visitorEmail is required", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(req.VisitorEmail); err != nil {
		return fmt.Errorf("%w: invalid visitorEmail format", ErrInvalidInput)
	}

	if req.VisitorName != nil && len(*req.VisitorName) > domain.MaxVisitorNameLength {
		return fmt.Errorf("%w: visitorName is too long (max %d characters)", ErrInvalidInput, domain.MaxVisitorNameLength)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long (max %d characters)", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// busyFetchWindow возвращает расширенное окно выборки занятости вокруг даты слота.
// Бронирование или встреча соседних суток может залезать буферами в запрошенный
// день, поэтому окно расширяется на максимально возможный буферный след.
func busyFetchWindow(date time.Time, loc *time.Location) (time.Time, time.Time) {
	margin := time.Duration(domain.MaxBufferMinutes+domain.MaxTravelBufferMinutes) * time.Minute

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	return dayStart.Add(-margin), dayEnd.Add(margin)
}

// providerBusyRanges конвертирует интервалы провайдера во внутреннее представление
// Интервалы нулевой или отрицательной длины отбрасываются
func providerBusyRanges(intervals []calendarprovider.BusyInterval) []timerange.Range {
	busy := make([]timerange.Range, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.End.After(iv.Start) {
			continue
		}
		busy = append(busy, timerange.Range{Start: iv.Start, End: iv.End})
	}
	return busy
}
