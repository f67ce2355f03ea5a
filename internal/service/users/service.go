package users

import (
	"context"
	"errors"
	"fmt"

	userRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/user"
	"github.com/Nackalalalong/KK-BackEnd/internal/service/users/models"
)

// Service сервис для работы с кредитными балансами пользователей
type Service struct {
	balanceRepo BalanceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(balanceRepo BalanceRepository, logger Logger) *Service {
	return &Service{
		balanceRepo: balanceRepo,
		logger:      logger,
	}
}

// GetBalance возвращает текущий баланс пользователя
func (s *Service) GetBalance(ctx context.Context, userID int64) (*models.BalanceResponse, error) {
	s.logger.Info("GetBalance: fetching balance for user=%d", userID)

	user, err := s.balanceRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetBalance: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetBalance: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetBalance - repository error: %v", ErrInternal, err)
	}

	return &models.BalanceResponse{UserID: user.ID, Credit: user.Credit}, nil
}

// AddCredit пополняет баланс пользователя
// Запись баланса создается при первом пополнении
func (s *Service) AddCredit(ctx context.Context, userID int64, req *models.AddCreditRequest) (*models.BalanceResponse, error) {
	s.logger.Info("AddCredit: adding %.2f credits to user=%d", req.Amount, userID)

	if req.Amount <= 0 {
		s.logger.Warn("AddCredit: non-positive amount %.2f for user=%d", req.Amount, userID)
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	credit, err := s.balanceRepo.AddCredit(ctx, userID, req.Amount)
	if err != nil {
		s.logger.Error("AddCredit: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: AddCredit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddCredit: user=%d balance is now %.2f", userID, credit)
	return &models.BalanceResponse{UserID: userID, Credit: credit}, nil
}
