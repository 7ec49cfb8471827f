package resend

// BookingNotification публичные поля бронирования для письма владельцу
type BookingNotification struct {
	Name     string
	Email    string
	Date     string // YYYY-MM-DD
	TimeSlot string
	Note     *string
}

// sendEmailRequest модель запроса POST /emails
type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// errorResponse модель ошибки от Resend API
type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
