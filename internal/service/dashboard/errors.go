package dashboard

import "errors"

var (
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service: internal error")
)
