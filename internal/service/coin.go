package service

import (
	"context"
	"errors"
	"fmt"

	"placereview-backend/internal/domain"
	"placereview-backend/internal/repository"
)

const recentTransactionLimit = 10

type coinService struct {
	coinRepo repository.CoinRepository
	userRepo repository.UserRepository
}

func NewCoinService(coinRepo repository.CoinRepository, userRepo repository.UserRepository) CoinService {
	return &coinService{coinRepo: coinRepo, userRepo: userRepo}
}

func (s *coinService) GetUserBalance(ctx context.Context, userID int32) (*domain.CoinBalance, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	earned, spent, err := s.coinRepo.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.coinRepo.ListByUser(ctx, userID, recentTransactionLimit, 0)
	if err != nil {
		return nil, err
	}

	return &domain.CoinBalance{
		UserID:             userID,
		CurrentBalance:     user.CoinBalance,
		TotalEarned:        earned,
		TotalSpent:         spent,
		RecentTransactions: recent,
	}, nil
}

func (s *coinService) AddTransaction(ctx context.Context, userID, amount int32, txType domain.TransactionType, description string, referenceID *int32, referenceType string) (*domain.CoinTransaction, error) {
	if amount == 0 {
		return nil, domain.ErrZeroAmount
	}
	if description == "" {
		return nil, domain.NewValidationError("description is required")
	}

	tx := &domain.CoinTransaction{
		UserID:        userID,
		Amount:        amount,
		Type:          txType,
		Description:   description,
		ReferenceID:   referenceID,
		ReferenceType: referenceType,
	}
	if err := s.coinRepo.Apply(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *coinService) RewardUser(ctx context.Context, userID, amount int32, description string, referenceID *int32, referenceType string) (*domain.CoinTransaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.AddTransaction(ctx, userID, amount, domain.TransactionTypeReward, description, referenceID, referenceType)
}

func (s *coinService) SpendCoins(ctx context.Context, userID, amount int32, description string, referenceID *int32, referenceType string) (*domain.CoinTransaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.AddTransaction(ctx, userID, -amount, domain.TransactionTypeSpent, description, referenceID, referenceType)
}

func (s *coinService) CanAfford(ctx context.Context, userID, amount int32) (bool, error) {
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

func (s *coinService) TransferCoins(ctx context.Context, fromUserID, toUserID, amount int32, description string) (*domain.CoinTransaction, *domain.CoinTransaction, error) {
	if amount <= 0 {
		return nil, nil, domain.ErrInvalidAmount
	}

	// Sender balance is checked before any mutation. The conditional
	// update inside ApplyTransfer re-checks it under the transaction,
	// so a concurrent spend cannot slip an overdraw through.
	affordable, err := s.CanAfford(ctx, fromUserID, amount)
	if err != nil {
		return nil, nil, err
	}
	if !affordable {
		return nil, nil, domain.ErrInsufficientBalance
	}

	if _, err := s.userRepo.GetByID(ctx, toUserID); err != nil {
		return nil, nil, err
	}

	debit := &domain.CoinTransaction{
		UserID:        fromUserID,
		Amount:        -amount,
		Type:          domain.TransactionTypeSpent,
		Description:   fmt.Sprintf("Tip sent: %s", description),
		ReferenceID:   &toUserID,
		ReferenceType: "user_tip",
	}
	credit := &domain.CoinTransaction{
		UserID:        toUserID,
		Amount:        amount,
		Type:          domain.TransactionTypeEarned,
		Description:   fmt.Sprintf("Tip received: %s", description),
		ReferenceID:   &fromUserID,
		ReferenceType: "user_tip",
	}

	if err := s.coinRepo.ApplyTransfer(ctx, debit, credit); err != nil {
		return nil, nil, err
	}
	return debit, credit, nil
}

func (s *coinService) ListTransactions(ctx context.Context, userID, limit, offset int32) ([]domain.CoinTransaction, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.coinRepo.ListByUser(ctx, userID, limit, offset)
}

func (s *coinService) PurchasePackage(ctx context.Context, userID int32, packageID string) (*domain.CoinTransaction, error) {
	var pkg *domain.CoinPackage
	for i := range domain.CoinPackages {
		if domain.CoinPackages[i].ID == packageID {
			pkg = &domain.CoinPackages[i]
			break
		}
	}
	if pkg == nil {
		return nil, domain.ErrPackageNotFound
	}

	// Mock purchase: payment processing would go here.
	total := pkg.Coins + pkg.BonusCoins
	description := fmt.Sprintf("Purchased %s - %d coins + %d bonus", pkg.Name, pkg.Coins, pkg.BonusCoins)
	return s.AddTransaction(ctx, userID, total, domain.TransactionTypePurchase, description, nil, "purchase")
}
