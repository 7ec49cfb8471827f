package get_availability

// BookedSlot занятая пара (дата, слот) - минимальная проекция бронирования
// для публичного UI
type BookedSlot struct {
	Date     string
	TimeSlot string
}

// Response модель ответа со списком занятых слотов
type Response struct {
	BookedSlots []BookedSlot
}
