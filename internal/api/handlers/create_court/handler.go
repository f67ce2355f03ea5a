package create_court

import (
	"errors"
	"net/http"

	"github.com/Nackalalalong/KK-BackEnd/internal/api/handlers"
	"github.com/Nackalalalong/KK-BackEnd/internal/api/middleware"
	"github.com/Nackalalalong/KK-BackEnd/internal/service/courts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgDuplicateName      = "площадка с таким именем уже существует"
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

// Handle POST /api/v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /courts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrDuplicateName):
			h.logger.Warn("POST /courts - Duplicate name: name=%q, owner_id=%d", req.Name, userID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		case errors.Is(err, courts.ErrInvalidInput):
			h.logger.Warn("POST /courts - Invalid input: owner_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /courts - Failed to create court: owner_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /courts - Court created successfully: court_id=%d, owner_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
