package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/ASTB-BookingService/internal/api/handlers"
	"github.com/m04kA/ASTB-BookingService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingID          = "обязательное поле: id"
	msgBookingNotFound    = "бронирование не найдено"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/confirm (админская ручка, за AdminAuth middleware)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ID == "" {
		h.logger.Warn("POST /bookings/confirm - Missing booking id")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	if _, err := h.service.Confirm(r.Context(), req.ID); err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("POST /bookings/confirm - Booking not found: id=%s", req.ID)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}

		h.logger.Error("POST /bookings/confirm - Failed to confirm booking: id=%s, error=%v", req.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings/confirm - Booking confirmed: id=%s", req.ID)
	handlers.RespondJSON(w, http.StatusOK, ConfirmBookingResponse{Success: true})
}
