package book_racket

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	bookingRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/booking"
	courtRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/court"
	userRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/user"
)

// UseCase use case аренды ракетки поверх бронирования корта
//
// Ракетка резервируется на тот же (день недели, диапазон юнитов), что и
// родительское бронирование. Экземпляр один, поэтому расписание ракетки
// всегда использует номер экземпляра 0.
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	scheduleRepo ScheduleRepository
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
	scheduleRepo ScheduleRepository,
	balanceRepo BalanceRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		scheduleRepo: scheduleRepo,
		balanceRepo:  balanceRepo,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет аренду ракетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookRacket: user=%d, booking=%d, racket=%d", req.UserID, req.BookingID, req.RacketID)

	if req.UserID <= 0 || req.BookingID <= 0 || req.RacketID <= 0 {
		return nil, fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Родительское бронирование под блокировкой
		parent, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("BookRacket: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("BookRacket: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: get booking: %v", ErrInternal, err)
		}

		if parent.Kind != domain.BookingCourt {
			uc.logger.Warn("BookRacket: booking id=%d has kind %s, expected court", parent.ID, parent.Kind)
			return ErrNotParent
		}
		if parent.UserID != req.UserID {
			uc.logger.Warn("BookRacket: user=%d is not payer of booking id=%d", req.UserID, parent.ID)
			return ErrAccessDenied
		}

		// 2. Ракетка должна принадлежать корту родительского бронирования
		racket, err := uc.courtRepo.GetRacketByID(txCtx, req.RacketID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrRacketNotFound) {
				uc.logger.Warn("BookRacket: racket id=%d not found", req.RacketID)
				return ErrRacketNotFound
			}
			uc.logger.Error("BookRacket: failed to get racket id=%d: %v", req.RacketID, err)
			return fmt.Errorf("%w: get racket: %v", ErrInternal, err)
		}
		if racket.CourtID != parent.CourtID {
			uc.logger.Warn("BookRacket: racket id=%d belongs to court=%d, booking is for court=%d",
				racket.ID, racket.CourtID, parent.CourtID)
			return ErrWrongCourt
		}

		price := domain.PriceForRange(racket.UnitPrice, parent.StartUnit, parent.EndUnit)

		// 3. Деньги до резервирования
		if err := uc.balanceRepo.Debit(txCtx, req.UserID, price); err != nil {
			if errors.Is(err, userRepo.ErrInsufficientFunds) || errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("BookRacket: user=%d cannot pay %.2f", req.UserID, price)
				return ErrInsufficientFunds
			}
			uc.logger.Error("BookRacket: debit failed for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: debit payer: %v", ErrInternal, err)
		}

		court, err := uc.courtRepo.GetCourtByID(txCtx, parent.CourtID)
		if err != nil {
			uc.logger.Error("BookRacket: failed to get court id=%d: %v", parent.CourtID, err)
			return fmt.Errorf("%w: get court: %v", ErrInternal, err)
		}
		if _, err := uc.balanceRepo.AddCredit(txCtx, court.OwnerID, price); err != nil {
			uc.logger.Error("BookRacket: credit failed for owner=%d: %v", court.OwnerID, err)
			return fmt.Errorf("%w: credit owner: %v", ErrInternal, err)
		}

		// 4. Резервируем расписание ракетки на диапазон родителя
		sched, err := uc.scheduleRepo.GetOrCreate(txCtx, domain.KindRacket, racket.ID, 0, parent.Weekday)
		if err != nil {
			uc.logger.Error("BookRacket: failed to get schedule racket=%d: %v", racket.ID, err)
			return fmt.Errorf("%w: get schedule: %v", ErrInternal, err)
		}

		sched.Rollover(now)
		reserved := sched.Reserve(parent.StartUnit, parent.EndUnit)

		if err := uc.scheduleRepo.Save(txCtx, sched); err != nil {
			uc.logger.Error("BookRacket: failed to save schedule id=%d: %v", sched.ID, err)
			return fmt.Errorf("%w: save schedule: %v", ErrInternal, err)
		}

		if !reserved {
			uc.logger.Warn("BookRacket: racket id=%d busy on weekday=%s units=[%d, %d]",
				racket.ID, parent.Weekday, parent.StartUnit, parent.EndUnit)
			return ErrNotFree
		}

		// 5. Дочерняя запись журнала
		booking := &domain.Booking{
			UserID:    req.UserID,
			CourtID:   parent.CourtID,
			Kind:      domain.BookingRacket,
			RentalID:  &racket.ID,
			ParentID:  &parent.ID,
			Weekday:   parent.Weekday,
			StartUnit: parent.StartUnit,
			EndUnit:   parent.EndUnit,
			Price:     price,
			BookedAt:  now,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("BookRacket: failed to create booking: %v", err)
			return fmt.Errorf("%w: create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookRacket: racket=%d rented for booking=%d, entry id=%d, price=%.2f",
		req.RacketID, req.BookingID, result.ID, result.Price)

	_ = uc.publisher.PublishJSON(ctx, "rental.reserved", map[string]any{
		"booking_id": result.ID,
		"parent_id":  req.BookingID,
		"kind":       string(domain.BookingRacket),
		"rental_id":  req.RacketID,
		"price":      result.Price,
	})

	return &Response{
		BookingID: result.ID,
		ParentID:  req.BookingID,
		RacketID:  req.RacketID,
		Weekday:   result.Weekday,
		StartUnit: result.StartUnit,
		EndUnit:   result.EndUnit,
		Price:     result.Price,
		BookedAt:  result.BookedAt,
	}, nil
}
