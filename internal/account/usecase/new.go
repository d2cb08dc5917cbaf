package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"marketplace-bot/internal/account"
	"marketplace-bot/internal/account/repository"
	"marketplace-bot/internal/notification"
	pkgLog "marketplace-bot/pkg/log"
)

const DefaultSessionTTL = 24 * time.Hour

// Options configures the account flows.
type Options struct {
	SessionTTL   time.Duration
	WelcomeBonus decimal.Decimal
}

// implUseCase is the private implementation of account.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	notifier notification.Notifier
	bonus    account.BonusCrediter
	opts     Options
	now      func() time.Time
}

var _ account.UseCase = (*implUseCase)(nil)

// New creates the account use case. bonus may be nil when no welcome bonus is paid.
func New(l pkgLog.Logger, repo repository.Repository, notifier notification.Notifier, bonus account.BonusCrediter, opts Options) *implUseCase {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		notifier: notifier,
		bonus:    bonus,
		opts:     opts,
		now:      time.Now,
	}
}
