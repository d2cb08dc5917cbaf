package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"marketplace-bot/internal/model"
	"marketplace-bot/internal/order/repository"
	"marketplace-bot/internal/storefront"
)

type implRepository struct {
	mu     sync.RWMutex
	orders map[string]model.Order
	now    func() time.Time
}

var (
	_ repository.Repository = (*implRepository)(nil)
	_ storefront.OrderStore = (*implRepository)(nil)
)

func New(seed ...model.Order) *implRepository {
	r := &implRepository{orders: make(map[string]model.Order), now: time.Now}
	for _, o := range seed {
		r.orders[o.ID] = o
	}
	return r
}

func (r *implRepository) CreateOrder(ctx context.Context, opt repository.CreateOrderOptions) (model.Order, error) {
	if err := ctx.Err(); err != nil {
		return model.Order{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	o := model.Order{
		ID:          "ord-" + uuid.NewString()[:8],
		UserID:      opt.UserID,
		Customer:    opt.Customer,
		ProductID:   opt.ProductID,
		ProductName: opt.ProductName,
		Amount:      opt.Amount,
		Status:      model.OrderStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.orders[o.ID] = o
	return o, nil
}

func (r *implRepository) GetOrder(ctx context.Context, id string) (model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return model.Order{}, repository.ErrNotFound
	}
	return o, nil
}

// FindOrders returns matching orders newest first.
func (r *implRepository) FindOrders(ctx context.Context, opt repository.FindOrdersOptions) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Order, 0)
	for _, o := range r.orders {
		if opt.UserID != "" && o.UserID != opt.UserID {
			continue
		}
		if opt.Status != "" && o.Status != opt.Status {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *implRepository) UpdateOrderStatus(ctx context.Context, opt repository.UpdateOrderStatusOptions) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[opt.ID]
	if !ok {
		return model.Order{}, repository.ErrNotFound
	}
	if len(opt.From) > 0 && !slices.Contains(opt.From, o.Status) {
		return model.Order{}, repository.ErrStatusConflict
	}
	o.Status = opt.To
	o.UpdatedAt = r.now().UTC()
	r.orders[o.ID] = o
	return o, nil
}

// ListOrders serves the storefront's orders screen.
func (r *implRepository) ListOrders(ctx context.Context, userID string) ([]model.Order, error) {
	return r.FindOrders(ctx, repository.FindOrdersOptions{UserID: userID})
}
