package bookingpage

import "errors"

var (
	// ErrPageNotFound возвращается, когда страница бронирования не найдена
	ErrPageNotFound = errors.New("bookingpage.repository: booking page not found")

	// ErrAliasTaken возвращается, когда алиас уже занят у этого владельца
	ErrAliasTaken = errors.New("bookingpage.repository: alias already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bookingpage.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bookingpage.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bookingpage.repository: failed to scan row")
)
