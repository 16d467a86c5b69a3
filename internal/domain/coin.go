package domain

import "time"

type TransactionType string

const (
	TransactionTypePurchase TransactionType = "PURCHASE"
	TransactionTypeEarned   TransactionType = "EARNED"
	TransactionTypeSpent    TransactionType = "SPENT"
	TransactionTypeReward   TransactionType = "REWARD"
	TransactionTypeRefund   TransactionType = "REFUND"
)

// CoinTransaction is an immutable ledger entry. Amount is signed:
// positive for credit, negative for debit, never zero.
type CoinTransaction struct {
	ID            int32           `json:"id"`
	UserID        int32           `json:"user_id"`
	Amount        int32           `json:"amount"`
	Type          TransactionType `json:"transaction_type"`
	Description   string          `json:"description"`
	ReferenceID   *int32          `json:"reference_id,omitempty"`
	ReferenceType string          `json:"reference_type,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CoinBalance is the read model for a user's ledger position. The
// current balance is the cached projection on the user row; the totals
// are aggregated from the transaction history.
type CoinBalance struct {
	UserID             int32             `json:"user_id"`
	CurrentBalance     int32             `json:"current_balance"`
	TotalEarned        int32             `json:"total_earned"`
	TotalSpent         int32             `json:"total_spent"`
	RecentTransactions []CoinTransaction `json:"recent_transactions"`
}

// CoinPackage is a purchasable bundle of coins. Payment processing is
// mocked; purchasing a package only records a PURCHASE transaction.
type CoinPackage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Coins       int32  `json:"coins"`
	BonusCoins  int32  `json:"bonus_coins"`
	Description string `json:"description"`
	Popular     bool   `json:"popular"`
}

var CoinPackages = []CoinPackage{
	{ID: "package_starter", Name: "Starter Pack", Coins: 500, BonusCoins: 0, Description: "Basic pack to get going"},
	{ID: "package_popular", Name: "Popular Pack", Coins: 1000, BonusCoins: 100, Description: "10% bonus", Popular: true},
	{ID: "package_saver", Name: "Saver Pack", Coins: 2000, BonusCoins: 300, Description: "15% bonus"},
}
