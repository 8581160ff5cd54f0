package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// WorkingHoursRule represents a user's availability for one weekday.
// One rule per weekday; the full week is replaced on write.
type WorkingHoursRule struct {
	ID          int64
	UserID      int64
	DayOfWeek   int // 0-6, Sunday-Saturday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeekdayOf returns the rule weekday index for a date (0=Sunday)
func WeekdayOf(date time.Time) int {
	return int(date.Weekday())
}
