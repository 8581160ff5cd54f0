package bookingpages

import "errors"

var (
	// ErrPageNotFound возвращается, когда страница бронирования не найдена
	ErrPageNotFound = errors.New("booking page not found")

	// ErrCalendarNotFound возвращается, когда календарь не найден
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrAliasTaken возвращается, когда алиас страницы уже занят у этого пользователя
	ErrAliasTaken = errors.New("page alias already taken")

	// ErrAliasBlocked возвращается, когда алиас находится в черном списке
	ErrAliasBlocked = errors.New("alias is not allowed")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
