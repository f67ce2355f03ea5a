package courts

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	courtRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/court"
	"github.com/Nackalalalong/KK-BackEnd/internal/service/courts/models"
)

// Service сервис для работы с площадками и их каталогами аренды
type Service struct {
	courtRepo CourtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// Create создает новую площадку
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Create: creating court %q for owner=%d", req.Name, req.OwnerID)

	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	court, err := s.courtRepo.CreateCourt(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, courtRepo.ErrDuplicateName) {
			s.logger.Warn("Create: court name %q already taken", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: court id=%d created", court.ID)
	return models.FromDomainCourt(court), nil
}

// GetByID получает площадку вместе с каталогами ракеток и воланов
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtDetailsResponse, error) {
	s.logger.Info("GetByID: fetching court id=%d", id)

	court, err := s.getCourt(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	rackets, err := s.courtRepo.ListRacketsByCourt(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list rackets for court=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - rackets: %v", ErrInternal, err)
	}

	shuttlecocks, err := s.courtRepo.ListShuttlecocksByCourt(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list shuttlecocks for court=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - shuttlecocks: %v", ErrInternal, err)
	}

	return &models.CourtDetailsResponse{
		Court:        models.FromDomainCourt(court),
		Rackets:      models.FromDomainRacketList(rackets),
		Shuttlecocks: models.FromDomainShuttlecockList(shuttlecocks),
	}, nil
}

// AddRacket добавляет ракетку в каталог площадки
// Доступно только владельцу площадки
func (s *Service) AddRacket(ctx context.Context, courtID int64, req *models.AddRacketRequest) (*models.RacketResponse, error) {
	s.logger.Info("AddRacket: adding racket %q to court=%d by user=%d", req.Name, courtID, req.UserID)

	if err := req.Validate(); err != nil {
		s.logger.Warn("AddRacket: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	court, err := s.getCourt(ctx, courtID, "AddRacket")
	if err != nil {
		return nil, err
	}
	if court.OwnerID != req.UserID {
		s.logger.Warn("AddRacket: user=%d is not owner of court=%d", req.UserID, courtID)
		return nil, ErrAccessDenied
	}

	racket, err := s.courtRepo.CreateRacket(ctx, &domain.Racket{
		CourtID:   courtID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		if errors.Is(err, courtRepo.ErrDuplicateName) {
			s.logger.Warn("AddRacket: racket name %q already taken on court=%d", req.Name, courtID)
			return nil, ErrDuplicateName
		}
		s.logger.Error("AddRacket: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddRacket - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddRacket: racket id=%d added to court=%d", racket.ID, courtID)
	return models.FromDomainRacket(racket), nil
}

// AddShuttlecock добавляет позицию воланов в каталог площадки
// Доступно только владельцу площадки
func (s *Service) AddShuttlecock(ctx context.Context, courtID int64, req *models.AddShuttlecockRequest) (*models.ShuttlecockResponse, error) {
	s.logger.Info("AddShuttlecock: adding shuttlecock %q to court=%d by user=%d", req.Name, courtID, req.UserID)

	if err := req.Validate(); err != nil {
		s.logger.Warn("AddShuttlecock: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	court, err := s.getCourt(ctx, courtID, "AddShuttlecock")
	if err != nil {
		return nil, err
	}
	if court.OwnerID != req.UserID {
		s.logger.Warn("AddShuttlecock: user=%d is not owner of court=%d", req.UserID, courtID)
		return nil, ErrAccessDenied
	}

	item, err := s.courtRepo.CreateShuttlecock(ctx, &domain.Shuttlecock{
		CourtID:      courtID,
		Name:         req.Name,
		CountPerUnit: req.CountPerUnit,
		Count:        req.Count,
		Price:        req.Price,
	})
	if err != nil {
		if errors.Is(err, courtRepo.ErrDuplicateName) {
			s.logger.Warn("AddShuttlecock: name %q already taken on court=%d", req.Name, courtID)
			return nil, ErrDuplicateName
		}
		s.logger.Error("AddShuttlecock: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddShuttlecock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddShuttlecock: shuttlecock id=%d added to court=%d", item.ID, courtID)
	return models.FromDomainShuttlecock(item), nil
}

// TopUpShuttlecock пополняет складской остаток позиции воланов
// Доступно только владельцу площадки
func (s *Service) TopUpShuttlecock(ctx context.Context, shuttlecockID int64, req *models.TopUpShuttlecockRequest) (*models.ShuttlecockResponse, error) {
	s.logger.Info("TopUpShuttlecock: adding %d tubes to shuttlecock=%d by user=%d", req.Count, shuttlecockID, req.UserID)

	if err := req.Validate(); err != nil {
		s.logger.Warn("TopUpShuttlecock: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, err := s.courtRepo.GetShuttlecockByID(ctx, shuttlecockID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrShuttlecockNotFound) {
			s.logger.Warn("TopUpShuttlecock: shuttlecock id=%d not found", shuttlecockID)
			return nil, ErrShuttlecockNotFound
		}
		s.logger.Error("TopUpShuttlecock: repository error: %v", err)
		return nil, fmt.Errorf("%w: TopUpShuttlecock - repository error: %v", ErrInternal, err)
	}

	court, err := s.getCourt(ctx, item.CourtID, "TopUpShuttlecock")
	if err != nil {
		return nil, err
	}
	if court.OwnerID != req.UserID {
		s.logger.Warn("TopUpShuttlecock: user=%d is not owner of court=%d", req.UserID, court.ID)
		return nil, ErrAccessDenied
	}

	if err := s.courtRepo.AddShuttlecockStock(ctx, shuttlecockID, req.Count); err != nil {
		s.logger.Error("TopUpShuttlecock: failed to add stock: %v", err)
		return nil, fmt.Errorf("%w: TopUpShuttlecock - add stock: %v", ErrInternal, err)
	}

	item.Count += req.Count
	s.logger.Info("TopUpShuttlecock: shuttlecock id=%d now has %d tubes", shuttlecockID, item.Count)
	return models.FromDomainShuttlecock(item), nil
}

func (s *Service) getCourt(ctx context.Context, id int64, op string) (*domain.Court, error) {
	court, err := s.courtRepo.GetCourtByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("%s: court id=%d not found", op, id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("%s: repository error for court id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return court, nil
}
