package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Nackalalalong/KK-BackEnd/internal/api/handlers"
	"github.com/Nackalalalong/KK-BackEnd/internal/api/middleware"
	cancelBooking "github.com/Nackalalalong/KK-BackEnd/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "бронирование не найдено"
	msgForbidden         = "доступ запрещен"
	msgWindowClosed      = "дата бронирования уже наступила, отмена невозможна"
	msgInsufficientFunds = "владелец корта не может покрыть возврат"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		RequesterID: userID,
		BookingID:   bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/cancel - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelBooking.ErrWindowClosed):
			h.logger.Warn("POST /bookings/{id}/cancel - Window closed: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgWindowClosed)

		case errors.Is(err, cancelBooking.ErrInsufficientFunds):
			h.logger.Warn("POST /bookings/{id}/cancel - Owner cannot cover refund: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientFunds)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/cancel - Invalid input: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%d, user_id=%d, refund=%.2f",
		bookingID, userID, result.Refund)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
