package book_court

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	courtRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/court"
	userRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/user"
)

// UseCase use case бронирования корта
//
// Аллокация first-fit: номера кортов перебираются по возрастанию, занимается
// первый свободный. Вся последовательность списание -> rollover -> проверка
// коллизии -> резервирование -> запись в журнал выполняется в одной
// сериализуемой транзакции: два конкурентных бронирования пересекающихся
// диапазонов на одном корте никогда не проходят оба.
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

// Execute выполняет бронирование корта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookCourt: user=%d, court=%d, weekday=%s, units=[%d, %d]",
		req.UserID, req.CourtID, req.Weekday, req.StartUnit, req.EndUnit)

	// 1. Валидация до любого обращения к состоянию
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookCourt: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт
	court, err := uc.courtRepo.GetCourtByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("BookCourt: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("BookCourt: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Диапазон должен лежать в окне работы корта
	if !court.InWindow(req.StartUnit, req.EndUnit) {
		uc.logger.Warn("BookCourt: units [%d, %d] outside open window [%d, %d)",
			req.StartUnit, req.EndUnit, court.OpenUnit, court.CloseUnit)
		return nil, ErrOutsideOpenHours
	}

	price := domain.PriceForRange(court.UnitPrice, req.StartUnit, req.EndUnit)
	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 4. Деньги, маска и журнал двигаются в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Списываем с плательщика до резервирования: при нехватке
		// кредитов расписание не трогаем
		if err := uc.balanceRepo.Debit(txCtx, req.UserID, price); err != nil {
			if errors.Is(err, userRepo.ErrInsufficientFunds) || errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("BookCourt: user=%d cannot pay %.2f", req.UserID, price)
				return ErrInsufficientFunds
			}
			uc.logger.Error("BookCourt: debit failed for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: debit payer: %v", ErrInternal, err)
		}

		// 4.2. Зачисляем владельцу (запись баланса создается при необходимости)
		if _, err := uc.balanceRepo.AddCredit(txCtx, court.OwnerID, price); err != nil {
			uc.logger.Error("BookCourt: credit failed for owner=%d: %v", court.OwnerID, err)
			return fmt.Errorf("%w: credit owner: %v", ErrInternal, err)
		}

		// 4.3. First-fit по номерам кортов; строки расписаний блокируются
		// FOR UPDATE на время всей итерации
		courtNumber := -1
		for n := 0; n < court.CourtCount; n++ {
			sched, err := uc.scheduleRepo.GetOrCreate(txCtx, domain.KindCourt, court.ID, n, req.Weekday)
			if err != nil {
				uc.logger.Error("BookCourt: failed to get schedule court=%d n=%d: %v", court.ID, n, err)
				return fmt.Errorf("%w: get schedule: %v", ErrInternal, err)
			}

			sched.Rollover(now)
			reserved := sched.Reserve(req.StartUnit, req.EndUnit)

			// last_update обновляется при каждом обращении, поэтому
			// сохраняем и при неудачной попытке
			if err := uc.scheduleRepo.Save(txCtx, sched); err != nil {
				uc.logger.Error("BookCourt: failed to save schedule id=%d: %v", sched.ID, err)
				return fmt.Errorf("%w: save schedule: %v", ErrInternal, err)
			}

			if reserved {
				courtNumber = n
				break
			}
		}

		if courtNumber < 0 {
			uc.logger.Warn("BookCourt: no free court for court=%d weekday=%s units=[%d, %d]",
				court.ID, req.Weekday, req.StartUnit, req.EndUnit)
			return ErrNotFree
		}

		// 4.4. Записываем бронирование в журнал
		booking := &domain.Booking{
			UserID:      req.UserID,
			CourtID:     court.ID,
			Kind:        domain.BookingCourt,
			CourtNumber: courtNumber,
			Weekday:     req.Weekday,
			StartUnit:   req.StartUnit,
			EndUnit:     req.EndUnit,
			Price:       price,
			BookedAt:    now,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("BookCourt: failed to create booking: %v", err)
			return fmt.Errorf("%w: create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookCourt: booked court=%d number=%d for user=%d, booking id=%d, price=%.2f",
		result.CourtID, result.CourtNumber, result.UserID, result.ID, result.Price)

	// Событие публикуется после коммита, best-effort
	_ = uc.publisher.PublishJSON(ctx, "booking.created", map[string]any{
		"booking_id":   result.ID,
		"user_id":      result.UserID,
		"court_id":     result.CourtID,
		"court_number": result.CourtNumber,
		"day_of_week":  int(result.Weekday),
		"start_unit":   result.StartUnit,
		"end_unit":     result.EndUnit,
		"price":        result.Price,
	})

	return &Response{
		BookingID:   result.ID,
		CourtID:     result.CourtID,
		CourtNumber: result.CourtNumber,
		Weekday:     result.Weekday,
		StartUnit:   result.StartUnit,
		EndUnit:     result.EndUnit,
		Price:       result.Price,
		BookedAt:    result.BookedAt,
	}, nil
}
