package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/ASTB-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/ASTB-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "обязательные поля: date, timeSlot, name, email"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgInvalidDate        = "дата должна быть будним днём"
	msgTooSoon            = "бронирование возможно минимум за один день"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrMissingField):
			h.logger.Warn("POST /bookings - Missing required field")
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: %q", req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrTooSoon):
			h.logger.Warn("POST /bookings - Date too soon: %q", req.Date)
			handlers.RespondBadRequest(w, msgTooSoon)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, slot=%s", req.Date, req.TimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, slot=%s, error=%v",
				req.Date, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, slot=%s",
		result.ID, result.Date, result.TimeSlot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
