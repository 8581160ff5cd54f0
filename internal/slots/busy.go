package slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/timerange"
)

// BusyFromBookings превращает подтвержденные бронирования страницы в busy-интервалы,
// расширенные буферами страницы. Отмененные и завершенные бронирования
// календарное время не занимают.
func BusyFromBookings(bookings []*domain.Booking, page *domain.BookingPage) []timerange.Range {
	busy := make([]timerange.Range, 0, len(bookings))

	before := time.Duration(page.BufferBeforeMinutes) * time.Minute
	after := time.Duration(page.BufferAfterMinutes) * time.Minute

	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		r := timerange.Range{Start: b.StartTime, End: b.EndTime}
		busy = append(busy, r.Expand(before, after))
	}

	return busy
}

// BusyFromMeetings превращает запланированные встречи в busy-интервалы,
// расширенные собственными буферами встречи. Для очных встреч travel buffer
// добавляется симметрично с обеих сторон.
func BusyFromMeetings(meetings []*domain.Meeting) []timerange.Range {
	busy := make([]timerange.Range, 0, len(meetings))

	for _, m := range meetings {
		if !m.OccupiesTime() {
			continue
		}
		beforeMin, afterMin := m.EffectiveBuffers()
		r := timerange.Range{Start: m.StartTime, End: m.EndTime}
		busy = append(busy, r.Expand(
			time.Duration(beforeMin)*time.Minute,
			time.Duration(afterMin)*time.Minute,
		))
	}

	return busy
}

// FilterConflicts вычитает busy-интервалы из каждого открытого интервала
// Результат отсортирован по возрастанию начала (интервалы не пересекаются)
func FilterConflicts(open []timerange.Range, busy []timerange.Range) []timerange.Range {
	result := make([]timerange.Range, 0, len(open))
	for _, o := range open {
		result = append(result, timerange.Subtract(o, busy)...)
	}
	return result
}
