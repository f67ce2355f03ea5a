package add_racket

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Nackalalalong/KK-BackEnd/internal/api/handlers"
	"github.com/Nackalalalong/KK-BackEnd/internal/api/middleware"
	"github.com/Nackalalalong/KK-BackEnd/internal/service/courts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCourtID     = "некорректный ID корта"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCourtNotFound      = "корт не найден"
	msgForbidden          = "доступ запрещен"
	msgDuplicateName      = "ракетка с таким именем уже существует"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/courts/{courtId}/rackets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /courts/{id}/rackets - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /courts/{id}/rackets - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddRacketRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courts/{id}/rackets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddRacket(r.Context(), courtID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			h.logger.Warn("POST /courts/{id}/rackets - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, courts.ErrAccessDenied):
			h.logger.Warn("POST /courts/{id}/rackets - Access denied: court_id=%d, user_id=%d", courtID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, courts.ErrDuplicateName):
			h.logger.Warn("POST /courts/{id}/rackets - Duplicate name: court_id=%d, name=%q", courtID, req.Name)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		case errors.Is(err, courts.ErrInvalidInput):
			h.logger.Warn("POST /courts/{id}/rackets - Invalid input: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /courts/{id}/rackets - Failed to add racket: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /courts/{id}/rackets - Racket added successfully: racket_id=%d, court_id=%d", result.ID, courtID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
