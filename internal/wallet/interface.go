package wallet

import (
	"context"
	"time"

	"marketplace-bot/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateDepositInput) (model.Deposit, error)
	Submit(ctx context.Context, input SubmitInput) (model.Deposit, error)
	Confirm(ctx context.Context, input ConfirmInput) (model.Deposit, error)
	Fail(ctx context.Context, input FailInput) (model.Deposit, error)
	Expire(ctx context.Context, id string) (model.Deposit, error)
	ExpireStale(ctx context.Context, olderThan time.Duration) (int, error)

	Detail(ctx context.Context, id string) (model.Deposit, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Balance(ctx context.Context, userID string) (BalanceOutput, error)
}

// CustomerLookup resolves the depositing user. An unknown id is found=false, not an error.
type CustomerLookup interface {
	GetCustomer(ctx context.Context, userID string) (user model.User, found bool, err error)
}
