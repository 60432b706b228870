package get_barbershops

import (
	"net/http"

	"github.com/m04kA/Barber-BookingService/internal/api/handlers"
)

type Handler struct {
	service BarbershopService
	logger  Logger
}

func NewHandler(service BarbershopService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /barbershops - Failed to list barbershops: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbershops - Barbershops listed: count=%d", len(result.Barbershops))
	handlers.RespondJSON(w, http.StatusOK, result)
}
