package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	courtRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/court"
)

// UseCase use case запроса доступности корта
//
// Запрос только читает: rollover применяется к маскам в памяти и не
// сохраняется, last_update строк не трогается. Корт без строки расписания
// считается полностью свободным.
type UseCase struct {
	courtRepo    CourtRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(courtRepo CourtRepository, scheduleRepo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		courtRepo:    courtRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает поюнитную доступность корта на день недели
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: court=%d, weekday=%s", req.CourtID, req.Weekday)

	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: court id must be positive", ErrInvalidInput)
	}
	if !req.Weekday.Valid() {
		return nil, fmt.Errorf("%w: weekday %d out of range", ErrInvalidRange, req.Weekday)
	}
	if (req.StartUnit == nil) != (req.EndUnit == nil) {
		return nil, fmt.Errorf("%w: start and end units must be passed together", ErrInvalidInput)
	}
	if req.StartUnit != nil && !domain.ValidUnitRange(*req.StartUnit, *req.EndUnit) {
		return nil, fmt.Errorf("%w: units [%d, %d]", ErrInvalidRange, *req.StartUnit, *req.EndUnit)
	}

	court, err := uc.courtRepo.GetCourtByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailability: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailability: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: get court: %v", ErrInternal, err)
	}

	scheds, err := uc.scheduleRepo.GetAllForResource(ctx, domain.KindCourt, req.CourtID, req.Weekday)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get schedules court=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: get schedules: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// Маски по номерам кортов; отсутствующая строка эквивалентна нулевой
	// маске
	masks := make(map[int]uint64, len(scheds))
	for _, s := range scheds {
		s.Rollover(now)
		masks[s.InstanceNumber] = s.Status
	}

	units := make([]UnitAvailability, 0, court.CloseUnit-court.OpenUnit)
	for u := court.OpenUnit; u < court.CloseUnit; u++ {
		free := 0
		for n := 0; n < court.CourtCount; n++ {
			if masks[n]&(uint64(1)<<uint(u)) == 0 {
				free++
			}
		}
		units = append(units, UnitAvailability{Unit: u, Free: free})
	}

	resp := &Response{
		CourtID:    court.ID,
		Weekday:    req.Weekday,
		CourtCount: court.CourtCount,
		Units:      units,
	}

	if req.StartUnit != nil {
		free := false
		if court.InWindow(*req.StartUnit, *req.EndUnit) {
			for n := 0; n < court.CourtCount && !free; n++ {
				busy := false
				for u := *req.StartUnit; u <= *req.EndUnit; u++ {
					if masks[n]&(uint64(1)<<uint(u)) != 0 {
						busy = true
						break
					}
				}
				free = !busy
			}
		}
		resp.Free = &free
	}

	return resp, nil
}
