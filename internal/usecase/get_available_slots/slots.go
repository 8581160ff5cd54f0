package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/calendarprovider"
	"github.com/m04kA/SMC-SchedulingService/pkg/timerange"
)

// busyFetchWindow возвращает расширенное окно выборки занятости на дату.
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
