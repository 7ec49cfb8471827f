package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
)

// Booking represents a tutoring session booking in the system.
// Бронирования никогда не удаляются; единственная мутация - переход
// статуса pending -> confirmed.
type Booking struct {
	ID        string        `json:"id"`
	Date      string        `json:"date"`     // YYYY-MM-DD
	TimeSlot  string        `json:"timeSlot"` // one of TimeSlots
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Status    BookingStatus `json:"status"`
	Note      *string       `json:"note,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// IsActive returns true if the booking occupies its slot.
// Pending counts as active: the slot stays blocked while the claim
// awaits out-of-band payment confirmation.
func (b *Booking) IsActive() bool {
	for _, status := range ActiveStatuses {
		if b.Status == status {
			return true
		}
	}
	return false
}

// IsConfirmed returns true if the booking has been confirmed by the admin
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}
