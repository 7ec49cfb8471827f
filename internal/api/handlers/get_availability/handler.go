package get_availability

import (
	"net/http"

	"github.com/m04kA/ASTB-BookingService/internal/api/handlers"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
//
// Всегда отвечает 200: при недоступном хранилище use case возвращает
// пустой список, и публичная страница показывает все слоты свободными.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.useCase.Execute(r.Context())

	h.logger.Info("GET /availability - Returned %d booked slots", len(result.BookedSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
