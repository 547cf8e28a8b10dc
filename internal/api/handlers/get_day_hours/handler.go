package get_day_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	getDayHours "github.com/m04kA/SMC-CalendarService/internal/usecase/get_day_hours"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBusinessNotFound  = "бизнес не найден"
)

type Handler struct {
	useCase GetDayHoursUseCase
	logger  Logger
}

func NewHandler(useCase GetDayHoursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/working-hours
// Query params: date (опционально, YYYY-MM-DD)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/working-hours - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(businessID, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/working-hours - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDayHours.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBusinessID)

		case errors.Is(err, getDayHours.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/working-hours - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/working-hours - Failed to resolve working hours: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
