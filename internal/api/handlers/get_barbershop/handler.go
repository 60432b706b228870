package get_barbershop

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Barber-BookingService/internal/api/handlers"
	"github.com/m04kA/Barber-BookingService/internal/service/barbershops"
)

const (
	msgInvalidBarbershopID = "некорректный ID барбершопа"
	msgBarbershopNotFound  = "барбершоп не найден"
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

// Handle GET /api/v1/barbershops/{barbershopId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barbershopIDStr := vars["barbershopId"]
	barbershopID, err := strconv.ParseInt(barbershopIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbershops/{id} - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	result, err := h.service.GetByID(r.Context(), barbershopID)
	if err != nil {
		switch {
		case errors.Is(err, barbershops.ErrBarbershopNotFound):
			h.logger.Warn("GET /barbershops/{id} - Barbershop not found: barbershop_id=%d", barbershopID)
			handlers.RespondNotFound(w, msgBarbershopNotFound)

		default:
			h.logger.Error("GET /barbershops/{id} - Failed to get barbershop: barbershop_id=%d, error=%v", barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id} - Barbershop retrieved: barbershop_id=%d", barbershopID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
