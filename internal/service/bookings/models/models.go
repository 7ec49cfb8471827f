package models

import (
	"time"

	"github.com/m04kA/ASTB-BookingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:        b.ID,
		Date:      b.Date,
		TimeSlot:  b.TimeSlot,
		Name:      b.Name,
		Email:     b.Email,
		Status:    string(b.Status),
		Note:      b.Note,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
