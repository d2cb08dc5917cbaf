package memory

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"marketplace-bot/internal/account"
	"marketplace-bot/internal/model"
	"marketplace-bot/internal/notification"
	"marketplace-bot/internal/storefront"
	"marketplace-bot/internal/wallet/repository"
)

// implRepository keeps deposits and USD balances behind one lock so a
// confirmation and its credit are applied together.
type implRepository struct {
	mu       sync.RWMutex
	deposits map[string]model.Deposit
	balances map[string]decimal.Decimal
	now      func() time.Time
}

var (
	_ repository.Repository      = (*implRepository)(nil)
	_ notification.DepositSource = (*implRepository)(nil)
	_ storefront.BalanceStore    = (*implRepository)(nil)
	_ account.BonusCrediter      = (*implRepository)(nil)
)

func New(seed ...model.Deposit) *implRepository {
	r := &implRepository{
		deposits: make(map[string]model.Deposit),
		balances: make(map[string]decimal.Decimal),
		now:      time.Now,
	}
	for _, d := range seed {
		r.deposits[d.ID] = d
	}
	return r
}
