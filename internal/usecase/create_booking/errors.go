package create_booking

import "errors"

var (
	// ErrPageNotFound возвращается, когда страница бронирования не найдена
	ErrPageNotFound = errors.New("booking page not found")

	// ErrPageUnavailable возвращается, когда страница не одобрена или отключена владельцем
	ErrPageUnavailable = errors.New("booking page is not available")

	// ErrSlotConflict возвращается, когда запрошенный слот уже занят
	// или не входит в доступность владельца
	ErrSlotConflict = errors.New("slot is not available")

	// ErrBookingLimitReached возвращается, когда посетитель исчерпал лимит бронирований на странице
	ErrBookingLimitReached = errors.New("booking limit reached for this visitor")

	// ErrProviderUnavailable возвращается, когда провайдер внешнего календаря недоступен
	ErrProviderUnavailable = errors.New("calendar provider unavailable")

	// ErrInvalidDate возвращается при попытке забронировать время в прошлом
	ErrInvalidDate = errors.New("invalid booking time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
