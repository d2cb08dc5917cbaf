package order

import (
	"context"

	"marketplace-bot/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Place(ctx context.Context, input PlaceInput) (model.Order, error)
	Complete(ctx context.Context, id string) (model.Order, error)
	Refund(ctx context.Context, id string) (model.Order, error)
	Detail(ctx context.Context, id string) (model.Order, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
}

// Inventory reserves stock for new orders and returns it on refund.
type Inventory interface {
	Reserve(ctx context.Context, productID string) (model.Product, error)
	Release(ctx context.Context, productID string) error
}

// CustomerLookup resolves the buyer. An unknown id is found=false, not an error.
type CustomerLookup interface {
	GetCustomer(ctx context.Context, userID string) (user model.User, found bool, err error)
}
