package calendarprovider

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarprovider client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("calendarprovider client: invalid response")

	// ErrProviderUnavailable возвращается, когда провайдер внешнего календаря недоступен
	ErrProviderUnavailable = errors.New("calendarprovider client: provider unavailable")
)
