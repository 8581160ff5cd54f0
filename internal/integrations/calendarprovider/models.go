package calendarprovider

import "time"

// BusyInterval занятый интервал внешнего календаря
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type busyResponse struct {
	Intervals []BusyInterval `json:"intervals"`
}

// ErrorResponse модель ошибки от провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
