package repository

import (
	"github.com/shopspring/decimal"

	"marketplace-bot/internal/model"
)

type CreateOrderOptions struct {
	UserID      string
	Customer    string
	ProductID   string
	ProductName string
	Amount      decimal.Decimal
}

// FindOrdersOptions filters by user and status; empty fields match everything.
type FindOrdersOptions struct {
	UserID string
	Status model.OrderStatus
}

// UpdateOrderStatusOptions moves an order to To only if it is currently in one of From.
type UpdateOrderStatusOptions struct {
	ID   string
	From []model.OrderStatus
	To   model.OrderStatus
}
