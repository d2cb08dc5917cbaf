package usecase

import (
	"context"
	"fmt"

	"marketplace-bot/internal/notification"
)

// Notify renders event and delivers it with the settings current at call time.
// Nothing here can fail the caller's flow; the result only reports what happened.
func (uc *implUseCase) Notify(ctx context.Context, event notification.Event) notification.DeliveryResult {
	if event == nil {
		return notification.DeliveryResult{OK: false, ErrorDetail: "nil event"}
	}

	cfg, err := uc.settings.LoadDeliveryConfig(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.Notify.LoadDeliveryConfig: %v", err)
		return notification.DeliveryResult{OK: false, ErrorDetail: fmt.Sprintf("load delivery config: %v", err)}
	}
	if !cfg.Enabled {
		uc.l.Debugf(ctx, "internal.notification.usecase.Notify: notifications disabled, dropping %s", event.Kind())
	}

	res := uc.sender.Send(ctx, cfg, uc.formatter.Format(event))
	if !res.OK && cfg.Ready() {
		uc.l.Warnf(ctx, "internal.notification.usecase.Notify: %s not delivered: %s", event.Kind(), res.ErrorDetail)
	}
	return res
}
