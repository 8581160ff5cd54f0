package get_available_slots

import "errors"

var (
	// ErrPageNotFound возвращается, когда страница бронирования не найдена
	ErrPageNotFound = errors.New("booking page not found")

	// ErrPageUnavailable возвращается, когда страница не одобрена или отключена владельцем
	ErrPageUnavailable = errors.New("booking page is not available")

	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("invalid date")

	// ErrProviderUnavailable возвращается, когда провайдер внешнего календаря недоступен
	ErrProviderUnavailable = errors.New("calendar provider unavailable")

	// ErrBookingLimitReached возвращается, когда посетитель исчерпал лимит бронирований на странице
	ErrBookingLimitReached = errors.New("booking limit reached for this visitor")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
