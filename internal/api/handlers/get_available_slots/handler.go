package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Barber-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/Barber-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidBarbershopID = "некорректный ID барбершопа"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBarbershopNotFound  = "барбершоп не найден"
	msgInvalidInput        = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops/{barbershopId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем barbershopId из URL
	barbershopIDStr := vars["barbershopId"]
	barbershopID, err := strconv.ParseInt(barbershopIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/available-slots - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /barbershops/{id}/available-slots - Missing date: barbershop_id=%d", barbershopID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(barbershopID, dateStr)
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBarbershopNotFound):
			h.logger.Warn("GET /barbershops/{id}/available-slots - Barbershop not found: barbershop_id=%d", barbershopID)
			handlers.RespondNotFound(w, msgBarbershopNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /barbershops/{id}/available-slots - Invalid input: barbershop_id=%d, error=%v", barbershopID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /barbershops/{id}/available-slots - Failed to get slots: barbershop_id=%d, date=%s, error=%v",
				barbershopID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /barbershops/{id}/available-slots - Slots retrieved: barbershop_id=%d, date=%s, count=%d",
		barbershopID, dateStr, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
