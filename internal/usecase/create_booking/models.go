package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserAlias    string    // Публичный алиас владельца страницы
	PageAlias    string    // Алиас страницы бронирования
	VisitorEmail string    // Email посетителя
	VisitorName  *string   // Имя посетителя (опционально)
	StartTime    time.Time // Начало встречи (должно совпадать со стартом доступного слота)
	Notes        *string   // Заметки посетителя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	BookingPageID int64
	VisitorEmail  string
	VisitorName   *string
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
