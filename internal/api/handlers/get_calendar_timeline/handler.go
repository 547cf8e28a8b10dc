package get_calendar_timeline

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	getCalendarTimeline "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar_timeline"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgMissingUserID     = "не указан ID пользователя"
	msgInvalidParams     = "некорректные параметры запроса, ожидается date=YYYY-MM-DD и includePending=true|false"
	msgBusinessNotFound  = "бизнес не найден"
	msgAccessDenied      = "календарь доступен только владельцу бизнеса"
)

type Handler struct {
	useCase GetCalendarTimelineUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarTimelineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/calendar/timeline
// Query params: date (опционально, YYYY-MM-DD), includePending (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем businessId из URL
	vars := mux.Vars(r)
	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/calendar/timeline - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /businesses/{id}/calendar/timeline - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(userID, businessID, query.Get("date"), query.Get("includePending"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/calendar/timeline - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendarTimeline.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/calendar/timeline - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBusinessID)

		case errors.Is(err, getCalendarTimeline.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/calendar/timeline - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getCalendarTimeline.ErrAccessDenied):
			h.logger.Warn("GET /businesses/{id}/calendar/timeline - Access denied: user_id=%d, business_id=%d",
				userID, businessID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /businesses/{id}/calendar/timeline - Failed to build timeline: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /businesses/{id}/calendar/timeline - Timeline built: business_id=%d, date=%s, slots_count=%d, request_id=%s",
		businessID, response.Date, len(response.Slots), middleware.GetRequestID(r.Context()))
	handlers.RespondJSON(w, http.StatusOK, response)
}
