package slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/timerange"
)

// Slot один бронируемый слот
// Start и End задают видимое посетителю окно (без буферов)
type Slot struct {
	Start time.Time
	End   time.Time
}

// GenerateSlots нарезает открытые интервалы на бронируемые слоты.
//
// Полный календарный след одного слота F = duration + bufferBefore + bufferAfter.
// Старты идут от начала каждого интервала с фиксированным шагом F, пока слот
// целиком помещается в интервал. Видимое посетителю окно сдвинуто на bufferBefore
// и имеет длину duration. Никакого выравнивания по границам часов сверх того,
// что уже закодировано в рабочих часах, не выполняется.
//
// Если посетитель уже держит maxPerVisitor подтвержденных бронирований,
// слоты не выдаются - вызывающая сторона сообщает о достижении лимита.
func GenerateSlots(
	open []timerange.Range,
	durationMinutes, bufferBeforeMinutes, bufferAfterMinutes int,
	visitorBookings, maxPerVisitor int,
) ([]Slot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	if maxPerVisitor > 0 && visitorBookings >= maxPerVisitor {
		return []Slot{}, nil
	}

	duration := time.Duration(durationMinutes) * time.Minute
	before := time.Duration(bufferBeforeMinutes) * time.Minute
	footprint := duration + before + time.Duration(bufferAfterMinutes)*time.Minute

	result := make([]Slot, 0)

	// Интервалы приходят непересекающимися и отсортированными,
	// поэтому итоговый список упорядочен по возрастанию без дополнительной сортировки
	for _, interval := range open {
		for start := interval.Start; !start.Add(footprint).After(interval.End); start = start.Add(footprint) {
			result = append(result, Slot{
				Start: start.Add(before),
				End:   start.Add(before + duration),
			})
		}
	}

	return result, nil
}

// ContainsStart проверяет, что среди слотов есть слот с указанным началом
func ContainsStart(slots []Slot, start time.Time) bool {
	for _, s := range slots {
		if s.Start.Equal(start) {
			return true
		}
	}
	return false
}
