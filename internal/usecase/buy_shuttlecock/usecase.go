package buy_shuttlecock

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	bookingRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/booking"
	courtRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/court"
	userRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/user"
)

// UseCase use case покупки воланов к бронированию корта
//
// Воланы не занимают расписание: покупка уменьшает остаток на складе,
// отмена родительского бронирования возвращает тубы обратно.
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	balanceRepo  BalanceRepository
	txManager    TransactionManager
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	balanceRepo BalanceRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		balanceRepo:  balanceRepo,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет покупку воланов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BuyShuttlecock: user=%d, booking=%d, shuttlecock=%d, count=%d",
		req.UserID, req.BookingID, req.ShuttlecockID, req.Count)

	if req.UserID <= 0 || req.BookingID <= 0 || req.ShuttlecockID <= 0 {
		return nil, fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
	}
	if req.Count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		parent, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("BuyShuttlecock: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("BuyShuttlecock: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: get booking: %v", ErrInternal, err)
		}

		if parent.Kind != domain.BookingCourt {
			uc.logger.Warn("BuyShuttlecock: booking id=%d has kind %s, expected court", parent.ID, parent.Kind)
			return ErrNotParent
		}
		if parent.UserID != req.UserID {
			uc.logger.Warn("BuyShuttlecock: user=%d is not payer of booking id=%d", req.UserID, parent.ID)
			return ErrAccessDenied
		}

		s, err := uc.courtRepo.GetShuttlecockByID(txCtx, req.ShuttlecockID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrShuttlecockNotFound) {
				uc.logger.Warn("BuyShuttlecock: shuttlecock id=%d not found", req.ShuttlecockID)
				return ErrShuttlecockNotFound
			}
			uc.logger.Error("BuyShuttlecock: failed to get shuttlecock id=%d: %v", req.ShuttlecockID, err)
			return fmt.Errorf("%w: get shuttlecock: %v", ErrInternal, err)
		}
		if s.CourtID != parent.CourtID {
			uc.logger.Warn("BuyShuttlecock: shuttlecock id=%d belongs to court=%d, booking is for court=%d",
				s.ID, s.CourtID, parent.CourtID)
			return ErrWrongCourt
		}

		price := s.Price * float64(req.Count)

		if err := uc.balanceRepo.Debit(txCtx, req.UserID, price); err != nil {
			if errors.Is(err, userRepo.ErrInsufficientFunds) || errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("BuyShuttlecock: user=%d cannot pay %.2f", req.UserID, price)
				return ErrInsufficientFunds
			}
			uc.logger.Error("BuyShuttlecock: debit failed for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: debit payer: %v", ErrInternal, err)
		}

		court, err := uc.courtRepo.GetCourtByID(txCtx, parent.CourtID)
		if err != nil {
			uc.logger.Error("BuyShuttlecock: failed to get court id=%d: %v", parent.CourtID, err)
			return fmt.Errorf("%w: get court: %v", ErrInternal, err)
		}
		if _, err := uc.balanceRepo.AddCredit(txCtx, court.OwnerID, price); err != nil {
			uc.logger.Error("BuyShuttlecock: credit failed for owner=%d: %v", court.OwnerID, err)
			return fmt.Errorf("%w: credit owner: %v", ErrInternal, err)
		}

		// Списание со склада с проверкой остатка в одном UPDATE
		if err := uc.courtRepo.DecrementShuttlecockStock(txCtx, s.ID, req.Count); err != nil {
			if errors.Is(err, courtRepo.ErrOutOfStock) {
				uc.logger.Warn("BuyShuttlecock: shuttlecock id=%d has less than %d tubes", s.ID, req.Count)
				return ErrOutOfStock
			}
			uc.logger.Error("BuyShuttlecock: failed to decrement stock id=%d: %v", s.ID, err)
			return fmt.Errorf("%w: decrement stock: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			UserID:    req.UserID,
			CourtID:   parent.CourtID,
			Kind:      domain.BookingShuttlecock,
			RentalID:  &s.ID,
			ParentID:  &parent.ID,
			Weekday:   parent.Weekday,
			StartUnit: parent.StartUnit,
			EndUnit:   parent.EndUnit,
			Count:     req.Count,
			Price:     price,
			BookedAt:  now,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("BuyShuttlecock: failed to create booking: %v", err)
			return fmt.Errorf("%w: create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BuyShuttlecock: %d tubes of shuttlecock=%d sold for booking=%d, entry id=%d, price=%.2f",
		result.Count, req.ShuttlecockID, req.BookingID, result.ID, result.Price)

	_ = uc.publisher.PublishJSON(ctx, "rental.reserved", map[string]any{
		"booking_id": result.ID,
		"parent_id":  req.BookingID,
		"kind":       string(domain.BookingShuttlecock),
		"rental_id":  req.ShuttlecockID,
		"count":      result.Count,
		"price":      result.Price,
	})

	return &Response{
		BookingID:     result.ID,
		ParentID:      req.BookingID,
		ShuttlecockID: req.ShuttlecockID,
		Count:         result.Count,
		Price:         result.Price,
		BookedAt:      result.BookedAt,
	}, nil
}
