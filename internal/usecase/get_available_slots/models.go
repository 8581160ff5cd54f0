package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	UserAlias    string    // Публичный алиас владельца страницы
	PageAlias    string    // Алиас страницы бронирования
	Date         time.Time // Дата, на которую запрашиваются слоты (без времени)
	VisitorEmail *string   // Email посетителя (опционально, для проверки лимита)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	UserAlias       string    // Алиас владельца
	PageAlias       string    // Алиас страницы
	Date            time.Time // Дата, на которую запрашивались слоты
	Timezone        string    // Таймзона владельца, в которой вычислены слоты
	DurationMinutes int       // Длительность встречи на этой странице
	Slots           []Slot    // Список доступных слотов
}

// Slot модель доступного слота (видимое посетителю окно, без буферов)
type Slot struct {
	StartTime time.Time // Начало встречи
	EndTime   time.Time // Конец встречи
}
