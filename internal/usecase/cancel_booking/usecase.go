package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	bookingRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/booking"
	courtRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/court"
	userRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/user"
)

// UseCase use case отмены бронирования
//
// Отмена родительского бронирования корта каскадно отменяет дочерние записи
// (аренда ракеток, воланы). Размер возврата зависит от дистанции между
// моментом отмены и датой бронирования: полный возврат за FullRefundMinDays
// и более дней, половина ближе. Дочерние записи при каскаде возвращаются по
// тарифу родителя. После наступления даты бронирования отмена невозможна.
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

// Execute выполняет отмену бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: requester=%d, booking=%d", req.RequesterID, req.BookingID)

	if req.RequesterID <= 0 || req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Забираем бронирование под блокировкой
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: get booking: %v", ErrInternal, err)
		}

		court, err := uc.courtRepo.GetCourtByID(txCtx, booking.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				return fmt.Errorf("%w: court id=%d gone", ErrInternal, booking.CourtID)
			}
			uc.logger.Error("CancelBooking: failed to get court id=%d: %v", booking.CourtID, err)
			return fmt.Errorf("%w: get court: %v", ErrInternal, err)
		}

		// 2. Отменять может плательщик или владелец корта
		if req.RequesterID != booking.UserID && req.RequesterID != court.OwnerID {
			uc.logger.Warn("CancelBooking: user=%d is neither payer=%d nor owner=%d",
				req.RequesterID, booking.UserID, court.OwnerID)
			return ErrAccessDenied
		}

		// 3. Окно отмены закрывается в полночь даты бронирования
		if now.After(booking.EffectiveDate()) {
			uc.logger.Warn("CancelBooking: booking id=%d effective date %s already passed",
				booking.ID, booking.EffectiveDate().Format(time.DateOnly))
			return ErrWindowClosed
		}

		// Тариф возврата считается от момента отмены, а не от момента
		// бронирования: чем ближе дата, тем меньше возврат
		dist := booking.RefundDistance(now)

		// 4. Освобождаем ресурс самой записи
		if err := uc.releaseEntry(txCtx, booking, now); err != nil {
			return err
		}
		refund := domain.RefundAmount(booking.Price, dist)
		cancelled := 1

		// 5. Каскад: дочерние записи освобождаются и возвращаются по
		// тарифу родителя
		if booking.Kind == domain.BookingCourt {
			children, err := uc.bookingRepo.GetChildren(txCtx, booking.ID)
			if err != nil {
				uc.logger.Error("CancelBooking: failed to get children of id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: get children: %v", ErrInternal, err)
			}

			for _, child := range children {
				if err := uc.releaseEntry(txCtx, child, now); err != nil {
					return err
				}
				refund += domain.RefundAmount(child.Price, dist)

				if err := uc.bookingRepo.Delete(txCtx, child.ID); err != nil {
					uc.logger.Error("CancelBooking: failed to delete child id=%d: %v", child.ID, err)
					return fmt.Errorf("%w: delete child: %v", ErrInternal, err)
				}
				cancelled++
			}
		}

		if err := uc.bookingRepo.Delete(txCtx, booking.ID); err != nil {
			uc.logger.Error("CancelBooking: failed to delete booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: delete booking: %v", ErrInternal, err)
		}

		// 6. Возврат: списываем с владельца, зачисляем плательщику.
		// Дочерние записи создаются плательщиком родительского
		// бронирования, поэтому получатель один.
		if err := uc.balanceRepo.Debit(txCtx, court.OwnerID, refund); err != nil {
			if errors.Is(err, userRepo.ErrInsufficientFunds) || errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("CancelBooking: owner=%d cannot cover refund %.2f", court.OwnerID, refund)
				return ErrInsufficientFunds
			}
			uc.logger.Error("CancelBooking: debit owner=%d failed: %v", court.OwnerID, err)
			return fmt.Errorf("%w: debit owner: %v", ErrInternal, err)
		}
		if err := uc.balanceRepo.Credit(txCtx, booking.UserID, refund); err != nil {
			uc.logger.Error("CancelBooking: credit payer=%d failed: %v", booking.UserID, err)
			return fmt.Errorf("%w: credit payer: %v", ErrInternal, err)
		}

		result = &Response{
			BookingID: booking.ID,
			Refund:    refund,
			Cancelled: cancelled,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled, %d entries, refund=%.2f",
		result.BookingID, result.Cancelled, result.Refund)

	_ = uc.publisher.PublishJSON(ctx, "booking.cancelled", map[string]any{
		"booking_id": result.BookingID,
		"entries":    result.Cancelled,
		"refund":     result.Refund,
	})

	return result, nil
}

// releaseEntry освобождает ресурс одной записи журнала: снимает биты у
// расписания корта или ракетки, возвращает воланы на склад
func (uc *UseCase) releaseEntry(ctx context.Context, b *domain.Booking, now time.Time) error {
	switch b.Kind {
	case domain.BookingCourt:
		return uc.releaseSchedule(ctx, domain.KindCourt, b.CourtID, b.CourtNumber, b, now)
	case domain.BookingRacket:
		if b.RentalID == nil {
			return fmt.Errorf("%w: racket entry id=%d has no rental id", ErrInternal, b.ID)
		}
		return uc.releaseSchedule(ctx, domain.KindRacket, *b.RentalID, 0, b, now)
	case domain.BookingShuttlecock:
		if b.RentalID == nil {
			return fmt.Errorf("%w: shuttlecock entry id=%d has no rental id", ErrInternal, b.ID)
		}
		if err := uc.courtRepo.AddShuttlecockStock(ctx, *b.RentalID, b.Count); err != nil {
			uc.logger.Error("CancelBooking: failed to restock shuttlecock id=%d: %v", *b.RentalID, err)
			return fmt.Errorf("%w: restock shuttlecock: %v", ErrInternal, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown booking kind %q", ErrInternal, b.Kind)
	}
}

func (uc *UseCase) releaseSchedule(ctx context.Context, kind domain.ResourceKind, resourceID int64, instance int, b *domain.Booking, now time.Time) error {
	sched, err := uc.scheduleRepo.GetOrCreate(ctx, kind, resourceID, instance, b.Weekday)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to get schedule %s/%d/%d: %v", kind, resourceID, instance, err)
		return fmt.Errorf("%w: get schedule: %v", ErrInternal, err)
	}

	// После rollover биты прошедшей недели уже сброшены, повторный
	// Release безопасен
	sched.Rollover(now)
	sched.Release(b.StartUnit, b.EndUnit)

	if err := uc.scheduleRepo.Save(ctx, sched); err != nil {
		uc.logger.Error("CancelBooking: failed to save schedule id=%d: %v", sched.ID, err)
		return fmt.Errorf("%w: save schedule: %v", ErrInternal, err)
	}
	return nil
}
