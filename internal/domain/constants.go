package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TimeSlots фиксированный упорядоченный набор слотов на будний день.
// Четыре часовых окна, ранний вечер - поздний вечер.
var TimeSlots = []string{"4-5pm", "5-6pm", "6-7pm", "7-8pm"}

// ActiveStatuses список статусов, при которых бронирование занимает слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
