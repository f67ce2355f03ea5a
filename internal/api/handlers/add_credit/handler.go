package add_credit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Nackalalalong/KK-BackEnd/internal/api/handlers"
	"github.com/Nackalalalong/KK-BackEnd/internal/api/middleware"
	"github.com/Nackalalalong/KK-BackEnd/internal/service/users"
	"github.com/Nackalalalong/KK-BackEnd/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "пользователь не найден"
	msgInvalidAmount      = "сумма пополнения должна быть положительной"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleTopUp POST /api/v1/users/{userId}/credit
func (h *Handler) HandleTopUp(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r, "POST")
	if !ok {
		return
	}

	var req models.AddCreditRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/{userId}/credit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddCredit(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users/{userId}/credit - Invalid amount: user_id=%d, amount=%.2f", userID, req.Amount)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		default:
			h.logger.Error("POST /users/{userId}/credit - Failed to add credit: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/{userId}/credit - Credit added: user_id=%d, balance=%.2f", userID, result.Credit)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGetBalance GET /api/v1/users/{userId}/credit
func (h *Handler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r, "GET")
	if !ok {
		return
	}

	result, err := h.service.GetBalance(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("GET /users/{userId}/credit - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /users/{userId}/credit - Failed to get balance: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/credit - Balance retrieved: user_id=%d, balance=%.2f", userID, result.Credit)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// pathUserID извлекает userId из URL и проверяет, что он совпадает с
// аутентифицированным пользователем
func (h *Handler) pathUserID(w http.ResponseWriter, r *http.Request, method string) (int64, bool) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s /users/{userId}/credit - Invalid user ID: %v", method, err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return 0, false
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s /users/{userId}/credit - Missing user ID", method)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, false
	}
	if requesterID != userID {
		h.logger.Warn("%s /users/{userId}/credit - Access denied: user_id=%d, requester_id=%d", method, userID, requesterID)
		handlers.RespondForbidden(w, msgForbidden)
		return 0, false
	}

	return userID, true
}
