package order

import "marketplace-bot/internal/model"

type PlaceInput struct {
	UserID    string
	ProductID string
}

type ListInput struct {
	UserID string
	Status model.OrderStatus
}

type ListOutput struct {
	Orders []model.Order
	Total  int
}
