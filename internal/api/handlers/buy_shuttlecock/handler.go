package buy_shuttlecock

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Nackalalalong/KK-BackEnd/internal/api/handlers"
	"github.com/Nackalalalong/KK-BackEnd/internal/api/middleware"
	buyShuttlecock "github.com/Nackalalalong/KK-BackEnd/internal/usecase/buy_shuttlecock"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgBookingNotFound     = "бронирование не найдено"
	msgShuttlecockNotFound = "воланы не найдены"
	msgForbidden           = "доступ запрещен"
	msgWrongCourt          = "воланы принадлежат другому корту"
	msgNotParent           = "запись не является бронированием корта"
	msgOutOfStock          = "на складе недостаточно туб"
	msgInsufficientFunds   = "недостаточно кредитов"
)

type Handler struct {
	useCase BuyShuttlecockUseCase
	logger  Logger
}

func NewHandler(useCase BuyShuttlecockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/shuttlecocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/shuttlecocks - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/shuttlecocks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BuyShuttlecockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/shuttlecocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &buyShuttlecock.Request{
		UserID:        userID,
		BookingID:     bookingID,
		ShuttlecockID: req.ShuttlecockID,
		Count:         req.Count,
	})
	if err != nil {
		switch {
		case errors.Is(err, buyShuttlecock.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/shuttlecocks - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, buyShuttlecock.ErrShuttlecockNotFound):
			h.logger.Warn("POST /bookings/{id}/shuttlecocks - Shuttlecock not found: shuttlecock_id=%d", req.ShuttlecockID)
			handlers.RespondNotFound(w, msgShuttlecockNotFound)

		case errors.Is(err, buyShuttlecock.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/shuttlecocks - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, buyShuttlecock.ErrWrongCourt):
			h.logger.Warn("POST /bookings/{id}/shuttlecocks - Wrong court: booking_id=%d, shuttlecock_id=%d", bookingID, req.ShuttlecockID)
			handlers.RespondBadRequest(w, msgWrongCourt)

		case errors.Is(err, buyShuttlecock.ErrNotParent):
			h.logger.Warn("POST /bookings/{id}/shuttlecocks - Not a court booking: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNotParent)

		case errors.Is(err, buyShuttlecock.ErrOutOfStock):
			h.logger.Warn("POST /bookings/{id}/shuttlecocks - Out of stock: shuttlecock_id=%d, count=%d", req.ShuttlecockID, req.Count)
			handlers.RespondError(w, http.StatusConflict, msgOutOfStock)

		case errors.Is(err, buyShuttlecock.ErrInsufficientFunds):
			h.logger.Warn("POST /bookings/{id}/shuttlecocks - Insufficient funds: user_id=%d", userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientFunds)

		case errors.Is(err, buyShuttlecock.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/shuttlecocks - Invalid input: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/{id}/shuttlecocks - Failed to buy shuttlecock: booking_id=%d, shuttlecock_id=%d, error=%v",
				bookingID, req.ShuttlecockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/shuttlecocks - Shuttlecocks purchased successfully: entry_id=%d, booking_id=%d, count=%d",
		result.BookingID, bookingID, result.Count)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
