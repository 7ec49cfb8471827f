package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	Date     string  // Дата сессии (YYYY-MM-DD)
	TimeSlot string  // Метка слота (например, "5-6pm")
	Name     string  // Имя клиента
	Email    string  // Email клиента
	Note     *string // Дополнительная заметка (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string    // ID созданного бронирования
	Date      string    // Дата сессии
	TimeSlot  string    // Метка слота
	Name      string    // Имя (после trim)
	Email     string    // Email (trim + lower-case)
	Status    string    // Всегда "pending" при создании
	Note      *string   // Заметка
	CreatedAt time.Time // Время создания
}
