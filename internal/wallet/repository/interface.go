package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"marketplace-bot/internal/model"
)

type DepositRepository interface {
	CreateDeposit(ctx context.Context, opt CreateDepositOptions) (model.Deposit, error)
	GetDeposit(ctx context.Context, id string) (model.Deposit, error)
	FindDeposits(ctx context.Context, opt FindDepositsOptions) ([]model.Deposit, error)
	UpdateDepositStatus(ctx context.Context, opt UpdateDepositStatusOptions) (model.Deposit, error)
}

type BalanceRepository interface {
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
	Credit(ctx context.Context, userID string, amount decimal.Decimal) error
}

type Repository interface {
	DepositRepository
	BalanceRepository
}
