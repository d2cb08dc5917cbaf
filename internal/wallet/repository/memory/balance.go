package memory

import (
	"context"

	"github.com/shopspring/decimal"
)

// GetBalance returns zero for users that never received funds.
func (r *implRepository) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balances[userID], nil
}

func (r *implRepository) Credit(ctx context.Context, userID string, amount decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[userID] = r.balances[userID].Add(amount)
	return nil
}
