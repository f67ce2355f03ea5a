package book_racket

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Nackalalalong/KK-BackEnd/internal/api/handlers"
	"github.com/Nackalalalong/KK-BackEnd/internal/api/middleware"
	bookRacket "github.com/Nackalalalong/KK-BackEnd/internal/usecase/book_racket"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBookingNotFound    = "бронирование не найдено"
	msgRacketNotFound     = "ракетка не найдена"
	msgForbidden          = "доступ запрещен"
	msgWrongCourt         = "ракетка принадлежит другому корту"
	msgNotParent          = "запись не является бронированием корта"
	msgNotFree            = "ракетка занята на выбранный диапазон"
	msgInsufficientFunds  = "недостаточно кредитов"
)

type Handler struct {
	useCase BookRacketUseCase
	logger  Logger
}

func NewHandler(useCase BookRacketUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/rackets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/rackets - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/rackets - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BookRacketRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/rackets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookRacket.Request{
		UserID:    userID,
		BookingID: bookingID,
		RacketID:  req.RacketID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookRacket.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/rackets - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookRacket.ErrRacketNotFound):
			h.logger.Warn("POST /bookings/{id}/rackets - Racket not found: racket_id=%d", req.RacketID)
			handlers.RespondNotFound(w, msgRacketNotFound)

		case errors.Is(err, bookRacket.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/rackets - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookRacket.ErrWrongCourt):
			h.logger.Warn("POST /bookings/{id}/rackets - Wrong court: booking_id=%d, racket_id=%d", bookingID, req.RacketID)
			handlers.RespondBadRequest(w, msgWrongCourt)

		case errors.Is(err, bookRacket.ErrNotParent):
			h.logger.Warn("POST /bookings/{id}/rackets - Not a court booking: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNotParent)

		case errors.Is(err, bookRacket.ErrNotFree):
			h.logger.Warn("POST /bookings/{id}/rackets - Racket busy: racket_id=%d", req.RacketID)
			handlers.RespondError(w, http.StatusConflict, msgNotFree)

		case errors.Is(err, bookRacket.ErrInsufficientFunds):
			h.logger.Warn("POST /bookings/{id}/rackets - Insufficient funds: user_id=%d", userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientFunds)

		case errors.Is(err, bookRacket.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/rackets - Invalid input: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/{id}/rackets - Failed to book racket: booking_id=%d, racket_id=%d, error=%v",
				bookingID, req.RacketID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/rackets - Racket rented successfully: entry_id=%d, booking_id=%d, racket_id=%d",
		result.BookingID, bookingID, req.RacketID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
