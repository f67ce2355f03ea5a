package topup_shuttlecock

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
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidShuttlecockID = "некорректный ID позиции воланов"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "позиция воланов не найдена"
	msgForbidden            = "доступ запрещен"
	msgInvalidInput         = "некорректные входные данные"
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

// Handle POST /api/v1/courts/{courtId}/shuttlecocks/{shuttlecockId}/topup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shuttlecockID, err := strconv.ParseInt(vars["shuttlecockId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /courts/{id}/shuttlecocks/{sid}/topup - Invalid shuttlecock ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShuttlecockID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /courts/{id}/shuttlecocks/{sid}/topup - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req TopUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courts/{id}/shuttlecocks/{sid}/topup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.TopUpShuttlecock(r.Context(), shuttlecockID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrShuttlecockNotFound), errors.Is(err, courts.ErrCourtNotFound):
			h.logger.Warn("POST /courts/{id}/shuttlecocks/{sid}/topup - Not found: shuttlecock_id=%d", shuttlecockID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, courts.ErrAccessDenied):
			h.logger.Warn("POST /courts/{id}/shuttlecocks/{sid}/topup - Access denied: shuttlecock_id=%d, user_id=%d",
				shuttlecockID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, courts.ErrInvalidInput):
			h.logger.Warn("POST /courts/{id}/shuttlecocks/{sid}/topup - Invalid input: shuttlecock_id=%d, error=%v",
				shuttlecockID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /courts/{id}/shuttlecocks/{sid}/topup - Failed to top up: shuttlecock_id=%d, error=%v",
				shuttlecockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /courts/{id}/shuttlecocks/{sid}/topup - Stock topped up: shuttlecock_id=%d, count=%d",
		shuttlecockID, result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
