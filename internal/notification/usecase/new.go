package usecase

import (
	"time"

	"marketplace-bot/internal/notification"
	pkgLog "marketplace-bot/pkg/log"
)

// implUseCase is the private implementation of notification.UseCase.
type implUseCase struct {
	l         pkgLog.Logger
	settings  notification.SettingsStore
	formatter notification.Formatter
	sender    notification.Sender
	deposits  notification.DepositSource
	loc       *time.Location
	now       func() time.Time

	webhookServed bool
}

var _ notification.UseCase = (*implUseCase)(nil)

// New creates the notification use case. loc decides where a report day starts; nil means UTC.
func New(
	l pkgLog.Logger,
	settings notification.SettingsStore,
	formatter notification.Formatter,
	sender notification.Sender,
	deposits notification.DepositSource,
	loc *time.Location,
) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:         l,
		settings:  settings,
		formatter: formatter,
		sender:    sender,
		deposits:  deposits,
		loc:       loc,
		now:       time.Now,

		webhookServed: true,
	}
}

// SetClock replaces the time source. Used by tests.
func (uc *implUseCase) SetClock(now func() time.Time) {
	if now != nil {
		uc.now = now
	}
}

// SetWebhookServed records whether this instance mounts the webhook route.
// When it does not, SetWebhook is refused so Telegram is never pointed at a 404.
func (uc *implUseCase) SetWebhookServed(served bool) {
	uc.webhookServed = served
}
