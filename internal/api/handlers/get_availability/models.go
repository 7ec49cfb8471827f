package get_availability

import (
	getAvailability "github.com/m04kA/ASTB-BookingService/internal/usecase/get_availability"
)

// BookedSlot занятая пара (дата, слот)
type BookedSlot struct {
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
}

// GetAvailabilityResponse ответ публичной ручки доступности
type GetAvailabilityResponse struct {
	BookedSlots []BookedSlot `json:"bookedSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *GetAvailabilityResponse {
	out := &GetAvailabilityResponse{
		BookedSlots: make([]BookedSlot, 0, len(resp.BookedSlots)),
	}

	for _, slot := range resp.BookedSlots {
		out.BookedSlots = append(out.BookedSlots, BookedSlot{
			Date:     slot.Date,
			TimeSlot: slot.TimeSlot,
		})
	}

	return out
}
