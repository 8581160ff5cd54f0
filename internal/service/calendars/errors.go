package calendars

import "errors"

var (
	// ErrCalendarNotFound возвращается, когда календарь не найден или скрыт от пользователя
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrAliasTaken возвращается, когда алиас календаря уже занят
	ErrAliasTaken = errors.New("calendar alias already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service: internal error")
)
