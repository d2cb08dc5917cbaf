package usecase

import (
	"context"
	"net/url"

	"marketplace-bot/internal/notification"
)

// SetWebhook registers rawURL for push delivery. Telegram only accepts https endpoints.
func (uc *implUseCase) SetWebhook(ctx context.Context, rawURL string) notification.OperationResult {
	if !uc.webhookServed {
		return notification.OperationResult{Success: false, Error: notification.ErrWebhookNotServed.Error()}
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return notification.OperationResult{Success: false, Error: notification.ErrInvalidWebhookURL.Error()}
	}

	cfg, err := uc.settings.LoadDeliveryConfig(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.SetWebhook: %v", err)
		return notification.OperationResult{Success: false, Error: err.Error()}
	}
	return uc.sender.SetWebhook(ctx, cfg, u.String())
}

func (uc *implUseCase) DeleteWebhook(ctx context.Context) notification.OperationResult {
	cfg, err := uc.settings.LoadDeliveryConfig(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.DeleteWebhook: %v", err)
		return notification.OperationResult{Success: false, Error: err.Error()}
	}
	return uc.sender.DeleteWebhook(ctx, cfg)
}

func (uc *implUseCase) WebhookInfo(ctx context.Context) (notification.WebhookStatus, error) {
	cfg, err := uc.settings.LoadDeliveryConfig(ctx)
	if err != nil {
		return notification.WebhookStatus{}, err
	}
	return uc.sender.WebhookInfo(ctx, cfg)
}
