package domain

import "time"

// Политика слотов: чистые функции без I/O. Используется и usecase'ом
// создания бронирования, и клиентской стороной (зеркально).

// IsValidTimeSlot returns true if the label is one of the fixed time slots
func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ParseDate parses a date-only string (YYYY-MM-DD) and anchors it at noon UTC.
// Фиксированное время суток (полдень) исключает дрейф дня недели на границах
// часовых поясов при разборе строки без времени.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
}

// IsWeekday returns true if the date falls on Monday through Friday inclusive
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// MinBookableDate returns the earliest date that may be booked: the calendar
// day after now. A booking date strictly earlier is rejected.
func MinBookableDate(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}

// IsSlotTaken returns true if any active booking in the list already occupies
// the (date, slot) pair. Pending блокирует слот так же, как confirmed - это
// осознанное бизнес-правило, а не недосмотр.
func IsSlotTaken(bookings []*Booking, date, slot string) bool {
	for _, b := range bookings {
		if b.Date == date && b.TimeSlot == slot && b.IsActive() {
			return true
		}
	}
	return false
}
