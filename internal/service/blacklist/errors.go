package blacklist

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись в черном списке не найдена
	ErrEntryNotFound = errors.New("blacklist entry not found")

	// ErrAliasAlreadyBlocked возвращается при попытке повторно заблокировать алиас
	ErrAliasAlreadyBlocked = errors.New("alias already blocked")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
