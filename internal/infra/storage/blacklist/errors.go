package blacklist

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись в черном списке не найдена
	ErrEntryNotFound = errors.New("blacklist.repository: entry not found")

	// ErrAliasAlreadyBlocked возвращается при попытке повторно заблокировать алиас
	ErrAliasAlreadyBlocked = errors.New("blacklist.repository: alias already blocked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blacklist.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blacklist.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blacklist.repository: failed to scan row")
)
