package repository

import (
	"context"

	"marketplace-bot/internal/model"
)

type Repository interface {
	CreateOrder(ctx context.Context, opt CreateOrderOptions) (model.Order, error)
	GetOrder(ctx context.Context, id string) (model.Order, error)
	FindOrders(ctx context.Context, opt FindOrdersOptions) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, opt UpdateOrderStatusOptions) (model.Order, error)
}
