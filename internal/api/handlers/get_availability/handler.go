package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Nackalalalong/KK-BackEnd/internal/api/handlers"
	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	getAvailability "github.com/Nackalalalong/KK-BackEnd/internal/usecase/get_availability"
)

const (
	msgInvalidCourtID   = "некорректный ID корта"
	msgInvalidDayOfWeek = "некорректный день недели, ожидается 0-6 (0 = понедельник)"
	msgInvalidUnits     = "некорректный диапазон юнитов"
	msgNotFound         = "корт не найден"
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

// Handle GET /api/v1/courts/{courtId}/availability?dayOfWeek=&start=&end=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	query := r.URL.Query()

	dayOfWeek, err := strconv.Atoi(query.Get("dayOfWeek"))
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid dayOfWeek: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	// start/end опциональны, но идут только парой
	var startPtr, endPtr *int
	if query.Get("start") != "" || query.Get("end") != "" {
		start, err := strconv.Atoi(query.Get("start"))
		if err != nil {
			h.logger.Warn("GET /courts/{id}/availability - Invalid start: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUnits)
			return
		}
		end, err := strconv.Atoi(query.Get("end"))
		if err != nil {
			h.logger.Warn("GET /courts/{id}/availability - Invalid end: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUnits)
			return
		}
		startPtr, endPtr = &start, &end
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		CourtID:   courtID,
		Weekday:   domain.Weekday(dayOfWeek),
		StartUnit: startPtr,
		EndUnit:   endPtr,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/availability - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getAvailability.ErrInvalidRange):
			h.logger.Warn("GET /courts/{id}/availability - Invalid range: court_id=%d", courtID)
			handlers.RespondBadRequest(w, msgInvalidUnits)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/availability - Invalid input: court_id=%d", courtID)
			handlers.RespondBadRequest(w, msgInvalidUnits)

		default:
			h.logger.Error("GET /courts/{id}/availability - Failed to get availability: court_id=%d, error=%v",
				courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/availability - Availability retrieved: court_id=%d, day_of_week=%d",
		courtID, dayOfWeek)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
