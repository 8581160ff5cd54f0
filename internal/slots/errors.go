package slots

import "errors"

var (
	// ErrInvalidWorkingHours возвращается, когда начало рабочего дня позже его конца
	// Переход рабочих часов через полночь не поддерживается
	ErrInvalidWorkingHours = errors.New("slots: working hours start is after end")

	// ErrInvalidDuration возвращается при некорректной длительности слота
	ErrInvalidDuration = errors.New("slots: duration must be positive")
)
