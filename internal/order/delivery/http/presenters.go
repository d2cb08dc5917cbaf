package http

import (
	"time"

	"marketplace-bot/internal/model"
	"marketplace-bot/internal/order"
)

// --- Request DTOs ---

type placeReq struct {
	UserID    string `json:"user_id"    binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
}

func (r placeReq) toInput() order.PlaceInput {
	return order.PlaceInput{UserID: r.UserID, ProductID: r.ProductID}
}

type listReq struct {
	UserID string `form:"user_id"`
	Status string `form:"status"`
}

func (r listReq) validate() error {
	switch model.OrderStatus(r.Status) {
	case "", model.OrderStatusNew, model.OrderStatusCompleted, model.OrderStatusRefunded:
		return nil
	}
	return errInvalidStatus
}

func (r listReq) toInput() order.ListInput {
	return order.ListInput{UserID: r.UserID, Status: model.OrderStatus(r.Status)}
}

// --- Response DTOs ---

type orderResp struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Customer    string    `json:"customer"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type listResp struct {
	Orders []orderResp `json:"orders"`
	Total  int         `json:"total"`
}

func (h *handler) newOrderResp(o model.Order) orderResp {
	return orderResp{
		ID:          o.ID,
		UserID:      o.UserID,
		Customer:    o.Customer,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Amount:      o.Amount.StringFixed(2),
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (h *handler) newListResp(out order.ListOutput) listResp {
	resp := listResp{Orders: make([]orderResp, 0, len(out.Orders)), Total: out.Total}
	for _, o := range out.Orders {
		resp.Orders = append(resp.Orders, h.newOrderResp(o))
	}
	return resp
}
