package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"marketplace-bot/internal/model"
	"marketplace-bot/internal/wallet/repository"
)

func (r *implRepository) CreateDeposit(ctx context.Context, opt repository.CreateDepositOptions) (model.Deposit, error) {
	if err := ctx.Err(); err != nil {
		return model.Deposit{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	d := model.Deposit{
		ID:        "dep-" + uuid.NewString()[:8],
		UserID:    opt.UserID,
		Username:  opt.Username,
		Coin:      opt.Coin,
		Amount:    opt.Amount,
		AmountUSD: opt.AmountUSD,
		Status:    model.DepositStatusPending,
		Address:   opt.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.deposits[d.ID] = d
	return d, nil
}

func (r *implRepository) GetDeposit(ctx context.Context, id string) (model.Deposit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.deposits[id]
	if !ok {
		return model.Deposit{}, repository.ErrNotFound
	}
	return d, nil
}

// FindDeposits returns matching deposits oldest first.
func (r *implRepository) FindDeposits(ctx context.Context, opt repository.FindDepositsOptions) ([]model.Deposit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Deposit, 0)
	for _, d := range r.deposits {
		if opt.UserID != "" && d.UserID != opt.UserID {
			continue
		}
		if opt.Status != "" && d.Status != opt.Status {
			continue
		}
		if !opt.CreatedFrom.IsZero() && d.CreatedAt.Before(opt.CreatedFrom) {
			continue
		}
		if !opt.CreatedBefore.IsZero() && !d.CreatedAt.Before(opt.CreatedBefore) {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// ListDepositsBetween feeds the daily report with deposits created in [from, to).
func (r *implRepository) ListDepositsBetween(ctx context.Context, from, to time.Time) ([]model.Deposit, error) {
	return r.FindDeposits(ctx, repository.FindDepositsOptions{CreatedFrom: from, CreatedBefore: to})
}

func (r *implRepository) UpdateDepositStatus(ctx context.Context, opt repository.UpdateDepositStatusOptions) (model.Deposit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.deposits[opt.ID]
	if !ok {
		return model.Deposit{}, repository.ErrNotFound
	}
	if len(opt.From) > 0 && !slices.Contains(opt.From, d.Status) {
		return model.Deposit{}, repository.ErrStatusConflict
	}

	d.Status = opt.To
	if opt.TxHash != "" {
		d.TxHash = opt.TxHash
	}
	if opt.FailureReason != "" {
		d.FailureReason = opt.FailureReason
	}
	d.UpdatedAt = r.now().UTC()
	r.deposits[d.ID] = d

	if opt.CreditUSD {
		r.balances[d.UserID] = r.balances[d.UserID].Add(d.AmountUSD)
	}
	return d, nil
}
