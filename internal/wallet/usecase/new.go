package usecase

import (
	"time"

	"marketplace-bot/internal/notification"
	"marketplace-bot/internal/wallet"
	"marketplace-bot/internal/wallet/repository"
	pkgLog "marketplace-bot/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	customers wallet.CustomerLookup
	notifier  notification.Notifier
	now       func() time.Time
}

var _ wallet.UseCase = (*implUseCase)(nil)

func New(l pkgLog.Logger, repo repository.Repository, customers wallet.CustomerLookup, notifier notification.Notifier) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		customers: customers,
		notifier:  notifier,
		now:       time.Now,
	}
}
