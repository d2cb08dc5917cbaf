package polling

import (
	"context"
	"errors"
	"time"

	"marketplace-bot/internal/storefront"
	pkgLog "marketplace-bot/pkg/log"
	pkgTelegram "marketplace-bot/pkg/telegram"
)

const (
	DefaultLongPollTimeout = 30 * time.Second
	DefaultLimit           = 100
	DefaultRetryDelay      = 3 * time.Second
	defaultDispatchTimeout = 30 * time.Second
)

// Options tunes the long poll. Zero values pick the defaults.
type Options struct {
	LongPollTimeout time.Duration
	Limit           int
	RetryDelay      time.Duration
	AllowedUpdates  []string
}

// Poller pulls updates with getUpdates and feeds them to the router one by one.
type Poller struct {
	l       pkgLog.Logger
	updater storefront.Updater
	router  storefront.Router
	opts    Options
}

func New(l pkgLog.Logger, updater storefront.Updater, router storefront.Router, opts Options) *Poller {
	if opts.LongPollTimeout <= 0 {
		opts.LongPollTimeout = DefaultLongPollTimeout
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	if len(opts.AllowedUpdates) == 0 {
		opts.AllowedUpdates = []string{pkgTelegram.UpdateKindMessage, pkgTelegram.UpdateKindCallbackQuery}
	}
	return &Poller{l: l, updater: updater, router: router, opts: opts}
}

// Run polls until ctx is cancelled. A registered webhook makes the provider refuse
// getUpdates; that ends the loop with storefront.ErrWebhookActive so the operator can
// delete the webhook or switch to webhook mode. Other errors are retried after a delay.
func (p *Poller) Run(ctx context.Context) error {
	var offset int64
	p.l.Infof(ctx, "internal.storefront.delivery.polling.Run: started")

	for {
		updates, err := p.updater.GetUpdates(ctx, pkgTelegram.GetUpdatesRequest{
			Offset:         offset,
			Limit:          p.opts.Limit,
			Timeout:        int(p.opts.LongPollTimeout / time.Second),
			AllowedUpdates: p.opts.AllowedUpdates,
		})
		if ctx.Err() != nil {
			p.l.Infof(ctx, "internal.storefront.delivery.polling.Run: stopped")
			return nil
		}
		if err != nil {
			if pkgTelegram.IsConflict(err) {
				p.l.Errorf(ctx, "internal.storefront.delivery.polling.Run: %v: %v", storefront.ErrWebhookActive, err)
				return errors.Join(storefront.ErrWebhookActive, err)
			}
			p.l.Warnf(ctx, "internal.storefront.delivery.polling.Run: getUpdates: %v", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(p.opts.RetryDelay):
			}
			continue
		}

		for _, raw := range updates {
			if raw.UpdateID >= offset {
				offset = raw.UpdateID + 1
			}
			p.dispatch(ctx, raw)
		}
	}
}

func (p *Poller) dispatch(ctx context.Context, raw pkgTelegram.Update) {
	update, ok := storefront.NewUpdate(raw)
	if !ok {
		return
	}
	dctx, cancel := context.WithTimeout(ctx, defaultDispatchTimeout)
	defer cancel()
	if err := p.router.Dispatch(dctx, update); err != nil {
		p.l.Errorf(ctx, "internal.storefront.delivery.polling.dispatch: update %d: %v", raw.UpdateID, err)
	}
}
