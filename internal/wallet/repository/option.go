package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"marketplace-bot/internal/model"
)

type CreateDepositOptions struct {
	UserID    string
	Username  string
	Coin      string
	Amount    decimal.Decimal
	AmountUSD decimal.Decimal
	Address   string
}

// FindDepositsOptions filters deposits; zero fields match everything.
// CreatedBefore is exclusive.
type FindDepositsOptions struct {
	UserID        string
	Status        model.DepositStatus
	CreatedFrom   time.Time
	CreatedBefore time.Time
}

// UpdateDepositStatusOptions moves a deposit to To only if it is currently in one of From.
// A non-empty TxHash or FailureReason is stored with the change. CreditUSD credits the
// deposit's USD value to its owner in the same step.
type UpdateDepositStatusOptions struct {
	ID            string
	From          []model.DepositStatus
	To            model.DepositStatus
	TxHash        string
	FailureReason string
	CreditUSD     bool
}
