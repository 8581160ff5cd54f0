package slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/timerange"
)

// ResolveOpenIntervals вычисляет открытые (еще не занятые) интервалы пользователя
// на конкретную дату по правилу рабочих часов для дня недели этой даты.
//
// Все вычисления выполняются в таймзоне владельца календаря (loc), а не сервера,
// иначе возможны ошибки на границе суток и при переходе на летнее время.
//
// Отсутствующее правило или isAvailable=false означает пустую доступность (не ошибку).
// Правило с одинаковым началом и концом тоже дает пустой результат.
func ResolveOpenIntervals(
	rule *domain.WorkingHoursRule,
	date time.Time,
	loc *time.Location,
	providerBusy []timerange.Range,
) ([]timerange.Range, error) {
	if rule == nil || !rule.IsAvailable {
		return []timerange.Range{}, nil
	}

	if rule.StartTime == rule.EndTime {
		return []timerange.Range{}, nil
	}

	if rule.StartTime.IsAfter(rule.EndTime) {
		return nil, ErrInvalidWorkingHours
	}

	dayStart, err := rule.StartTime.AtDate(date, loc)
	if err != nil {
		return nil, err
	}
	dayEnd, err := rule.EndTime.AtDate(date, loc)
	if err != nil {
		return nil, err
	}

	baseline, err := timerange.New(dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return timerange.Subtract(baseline, providerBusy), nil
}
