package create_booking

import (
	"strings"

	"github.com/m04kA/ASTB-BookingService/internal/domain"
)

// normalizeRequest приводит контактные поля к каноническому виду:
// все строки обрезаются, email опускается в нижний регистр
func normalizeRequest(req *Request) {
	req.Date = strings.TrimSpace(req.Date)
	req.TimeSlot = strings.TrimSpace(req.TimeSlot)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Note != nil {
		note := strings.TrimSpace(*req.Note)
		if note == "" {
			req.Note = nil
		} else {
			req.Note = &note
		}
	}
}

// validateRequest проверяет наличие обязательных полей.
// Порядок проверок фиксирован: сначала отсутствующие поля, затем слот, затем дата.
func validateRequest(req *Request) error {
	if req.Date == "" || req.TimeSlot == "" || req.Name == "" || req.Email == "" {
		return ErrMissingField
	}

	if !domain.IsValidTimeSlot(req.TimeSlot) {
		return ErrInvalidSlot
	}

	return nil
}
