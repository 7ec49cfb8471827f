package create_booking

import (
	"time"

	createBooking "github.com/m04kA/ASTB-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date     string  `json:"date"`     // "2025-03-10"
	TimeSlot string  `json:"timeSlot"` // "5-6pm"
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Note     *string `json:"note,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	TimeSlot  string  `json:"timeSlot"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Status    string  `json:"status"`
	Note      *string `json:"note,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// CreateBookingResponse обёртка ответа, как её ждёт публичная страница
type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:     r.Date,
		TimeSlot: r.TimeSlot,
		Name:     r.Name,
		Email:    r.Email,
		Note:     r.Note,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking: BookingResponse{
			ID:        resp.ID,
			Date:      resp.Date,
			TimeSlot:  resp.TimeSlot,
			Name:      resp.Name,
			Email:     resp.Email,
			Status:    resp.Status,
			Note:      resp.Note,
			CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		},
	}
}
