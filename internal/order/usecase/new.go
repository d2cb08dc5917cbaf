package usecase

import (
	"time"

	"marketplace-bot/internal/notification"
	"marketplace-bot/internal/order"
	"marketplace-bot/internal/order/repository"
	pkgLog "marketplace-bot/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	inventory order.Inventory
	customers order.CustomerLookup
	notifier  notification.Notifier
	now       func() time.Time
}

var _ order.UseCase = (*implUseCase)(nil)

func New(l pkgLog.Logger, repo repository.Repository, inventory order.Inventory, customers order.CustomerLookup, notifier notification.Notifier) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		inventory: inventory,
		customers: customers,
		notifier:  notifier,
		now:       time.Now,
	}
}
