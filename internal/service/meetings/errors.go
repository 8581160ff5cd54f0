package meetings

import "errors"

var (
	// ErrMeetingNotFound возвращается, когда встреча не найдена
	ErrMeetingNotFound = errors.New("meeting not found")

	// ErrCalendarNotFound возвращается, когда календарь не найден
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда встреча не может быть отменена
	ErrCannotCancel = errors.New("meeting cannot be cancelled")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне встречи
	ErrInvalidTimeRange = errors.New("invalid meeting time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
