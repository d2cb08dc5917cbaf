package usecase

import (
	"context"
	"errors"
	"fmt"

	"marketplace-bot/internal/model"
	"marketplace-bot/internal/notification"
	"marketplace-bot/internal/order"
	repo "marketplace-bot/internal/order/repository"
	"marketplace-bot/internal/storefront"
)

// Place reserves one unit of the product and records a new order for the user.
func (uc *implUseCase) Place(ctx context.Context, input order.PlaceInput) (model.Order, error) {
	customer, found, err := uc.customers.GetCustomer(ctx, input.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.order.usecase.Place.GetCustomer: %v", err)
		return model.Order{}, err
	}
	if !found {
		return model.Order{}, order.ErrCustomerNotFound
	}

	product, err := uc.inventory.Reserve(ctx, input.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, storefront.ErrProductNotFound):
			return model.Order{}, order.ErrProductNotFound
		case errors.Is(err, storefront.ErrOutOfStock):
			return model.Order{}, order.ErrOutOfStock
		}
		uc.l.Errorf(ctx, "internal.order.usecase.Place.Reserve: %v", err)
		return model.Order{}, err
	}

	o, err := uc.repo.CreateOrder(ctx, repo.CreateOrderOptions{
		UserID:      customer.ID,
		Customer:    customerName(customer),
		ProductID:   product.ID,
		ProductName: product.Name,
		Amount:      product.Price,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.order.usecase.Place.CreateOrder: %v", err)
		if rerr := uc.inventory.Release(ctx, product.ID); rerr != nil {
			uc.l.Warnf(ctx, "internal.order.usecase.Place.Release: %v", rerr)
		}
		return model.Order{}, err
	}

	uc.notify(ctx, o)
	return o, nil
}

// Complete marks a new order as delivered.
func (uc *implUseCase) Complete(ctx context.Context, id string) (model.Order, error) {
	o, err := uc.transition(ctx, id, []model.OrderStatus{model.OrderStatusNew}, model.OrderStatusCompleted)
	if err != nil {
		return model.Order{}, err
	}
	uc.notify(ctx, o)
	return o, nil
}

// Refund reverses a new or completed order and returns its unit to stock.
func (uc *implUseCase) Refund(ctx context.Context, id string) (model.Order, error) {
	o, err := uc.transition(ctx, id, []model.OrderStatus{model.OrderStatusNew, model.OrderStatusCompleted}, model.OrderStatusRefunded)
	if err != nil {
		return model.Order{}, err
	}
	if err := uc.inventory.Release(ctx, o.ProductID); err != nil {
		uc.l.Warnf(ctx, "internal.order.usecase.Refund.Release: %s: %v", o.ProductID, err)
	}
	uc.notify(ctx, o)
	return o, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Order, error) {
	o, err := uc.repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Order{}, order.ErrOrderNotFound
		}
		uc.l.Errorf(ctx, "internal.order.usecase.Detail.GetOrder: %v", err)
		return model.Order{}, err
	}
	return o, nil
}

func (uc *implUseCase) List(ctx context.Context, input order.ListInput) (order.ListOutput, error) {
	orders, err := uc.repo.FindOrders(ctx, repo.FindOrdersOptions{UserID: input.UserID, Status: input.Status})
	if err != nil {
		uc.l.Errorf(ctx, "internal.order.usecase.List.FindOrders: %v", err)
		return order.ListOutput{}, err
	}
	return order.ListOutput{Orders: orders, Total: len(orders)}, nil
}

func (uc *implUseCase) transition(ctx context.Context, id string, from []model.OrderStatus, to model.OrderStatus) (model.Order, error) {
	o, err := uc.repo.UpdateOrderStatus(ctx, repo.UpdateOrderStatusOptions{ID: id, From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return model.Order{}, order.ErrOrderNotFound
		case errors.Is(err, repo.ErrStatusConflict):
			return model.Order{}, fmt.Errorf("%w: %s -> %s", order.ErrInvalidTransition, id, to)
		}
		uc.l.Errorf(ctx, "internal.order.usecase.transition: %v", err)
		return model.Order{}, err
	}
	return o, nil
}

func (uc *implUseCase) notify(ctx context.Context, o model.Order) {
	notification.Dispatch(ctx, uc.notifier, notification.OrderEvent{
		Status:   o.Status,
		OrderID:  o.ID,
		Customer: o.Customer,
		Product:  o.ProductName,
		Amount:   o.Amount,
		At:       uc.now(),
	})
}

func customerName(u model.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
