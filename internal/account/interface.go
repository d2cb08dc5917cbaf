package account

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	Logout(ctx context.Context, input LogoutInput) error
}

// BonusCrediter pays the welcome bonus into a new user's wallet.
type BonusCrediter interface {
	Credit(ctx context.Context, userID string, amountUSD decimal.Decimal) error
}
