package timerange

import (
	"errors"
	"sort"
	"time"
)

var (
	// ErrInvalidRange возвращается, когда конец интервала не позже начала
	ErrInvalidRange = errors.New("timerange: end must be after start")
)

// Range полуоткрытый временной интервал [Start, End)
// Интервалы, соприкасающиеся границами, не считаются пересекающимися
type Range struct {
	Start time.Time
	End   time.Time
}

// New создает интервал с валидацией: End должен быть строго позже Start
func New(start, end time.Time) (Range, error) {
	if !end.After(start) {
		return Range{}, ErrInvalidRange
	}
	return Range{Start: start, End: end}, nil
}

// Duration возвращает длительность интервала
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// IsZero возвращает true для нулевого интервала
func (r Range) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Overlaps проверяет пересечение двух интервалов
// Полуоткрытая семантика: a.Start < b.End && b.Start < a.End
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains проверяет, что other целиком лежит внутри r
func (r Range) Contains(other Range) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

// Expand расширяет интервал на before минут влево и after минут вправо
// Отрицательные значения не поддерживаются семантикой буферов и трактуются как 0
func (r Range) Expand(before, after time.Duration) Range {
	if before < 0 {
		before = 0
	}
	if after < 0 {
		after = 0
	}
	return Range{
		Start: r.Start.Add(-before),
		End:   r.End.Add(after),
	}
}

// Subtract вычитает из свободного интервала все пересекающиеся busy-интервалы
// Возвращает ноль или более непересекающихся остатков, отсортированных по Start
func Subtract(free Range, busy []Range) []Range {
	result := []Range{free}

	// Сортируем busy-интервалы по началу, чтобы проход был детерминированным
	sorted := make([]Range, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	for _, b := range sorted {
		next := make([]Range, 0, len(result))
		for _, f := range result {
			if !f.Overlaps(b) {
				next = append(next, f)
				continue
			}
			// Левый остаток до начала busy-интервала
			if f.Start.Before(b.Start) {
				next = append(next, Range{Start: f.Start, End: b.Start})
			}
			// Правый остаток после конца busy-интервала
			if b.End.Before(f.End) {
				next = append(next, Range{Start: b.End, End: f.End})
			}
		}
		result = next
	}

	return result
}
