package create_booking

import (
	"errors"
	"net/http"

	"github.com/Nackalalalong/KK-BackEnd/internal/api/handlers"
	"github.com/Nackalalalong/KK-BackEnd/internal/api/middleware"
	bookCourt "github.com/Nackalalalong/KK-BackEnd/internal/usecase/book_court"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgCourtNotFound       = "корт не найден"
	msgInvalidRange        = "некорректный диапазон юнитов"
	msgOutsideOpenHours    = "диапазон вне окна работы корта"
	msgNotFree             = "нет свободного корта на выбранный диапазон"
	msgInsufficientFunds   = "недостаточно кредитов"
	msgInvalidInput        = "некорректные входные данные"
)

type Handler struct {
	useCase BookCourtUseCase
	logger  Logger
}

func NewHandler(useCase BookCourtUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, bookCourt.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, bookCourt.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid range: user_id=%d, units=[%d, %d]", userID, req.StartUnit, req.EndUnit)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, bookCourt.ErrOutsideOpenHours):
			h.logger.Warn("POST /bookings - Outside open hours: court_id=%d, units=[%d, %d]", req.CourtID, req.StartUnit, req.EndUnit)
			handlers.RespondBadRequest(w, msgOutsideOpenHours)

		case errors.Is(err, bookCourt.ErrNotFree):
			h.logger.Warn("POST /bookings - No free court: court_id=%d, user_id=%d", req.CourtID, userID)
			handlers.RespondError(w, http.StatusConflict, msgNotFree)

		case errors.Is(err, bookCourt.ErrInsufficientFunds):
			h.logger.Warn("POST /bookings - Insufficient funds: user_id=%d", userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientFunds)

		case errors.Is(err, bookCourt.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, court_id=%d, error=%v",
				userID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, court_id=%d",
		result.BookingID, userID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
