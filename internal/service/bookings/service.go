package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	bookingRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/booking"
	"github.com/Nackalalalong/KK-BackEnd/internal/service/bookings/models"
)

// Service сервис для чтения журнала бронирований
type Service struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID вместе с дочерними записями
// Проверяет права доступа - запись видит плательщик или владелец корта
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, []*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, nil, err
	}

	var children []*models.BookingResponse
	if booking.Kind == domain.BookingCourt {
		kids, err := s.bookingRepo.GetChildren(ctx, booking.ID)
		if err != nil {
			s.logger.Error("GetByID: failed to get children of booking id=%d: %v", id, err)
			return nil, nil, fmt.Errorf("%w: GetByID - children: %v", ErrInternal, err)
		}
		children = models.FromDomainBookingList(kids).Bookings
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d with %d children", id, len(children))
	return models.FromDomainBooking(booking), children, nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по типу записи
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, kind=%v", req.UserID, req.Kind)

	var domainKind *domain.BookingKind
	if req.Kind != nil {
		kind, err := models.ToDomainBookingKind(*req.Kind)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid kind=%s for user=%d", *req.Kind, req.UserID)
			return nil, fmt.Errorf("%w: invalid kind", ErrInvalidInput)
		}
		domainKind = &kind
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainKind)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// checkUserAccess проверяет, что пользователь имеет доступ к записи журнала
// Запись видит её плательщик или владелец корта
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	court, err := s.courtRepo.GetCourtByID(ctx, booking.CourtID)
	if err != nil {
		s.logger.Error("checkUserAccess: failed to get court id=%d: %v", booking.CourtID, err)
		return ErrAccessDenied
	}
	if court.OwnerID != userID {
		return ErrAccessDenied
	}
	return nil
}
