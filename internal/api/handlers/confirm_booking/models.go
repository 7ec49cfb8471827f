package confirm_booking

// ConfirmBookingRequest тело запроса подтверждения
type ConfirmBookingRequest struct {
	ID string `json:"id"`
}

// ConfirmBookingResponse ответ на успешное подтверждение
type ConfirmBookingResponse struct {
	Success bool `json:"success"`
}
