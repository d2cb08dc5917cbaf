package usecase

import (
	"context"
	"strings"

	"marketplace-bot/internal/notification"
)

func (uc *implUseCase) Settings(ctx context.Context) (notification.DeliveryConfig, error) {
	cfg, err := uc.settings.LoadDeliveryConfig(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.Settings: %v", err)
		return notification.DeliveryConfig{}, err
	}
	return cfg, nil
}

// UpdateSettings applies the non-nil fields. The next Notify call sees the change.
func (uc *implUseCase) UpdateSettings(ctx context.Context, input notification.UpdateSettingsInput) (notification.DeliveryConfig, error) {
	cfg, err := uc.settings.LoadDeliveryConfig(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.UpdateSettings.Load: %v", err)
		return notification.DeliveryConfig{}, err
	}

	if input.BotToken != nil {
		cfg.BotToken = strings.TrimSpace(*input.BotToken)
	}
	if input.DestinationID != nil {
		cfg.DestinationID = strings.TrimSpace(*input.DestinationID)
	}
	if input.Enabled != nil {
		cfg.Enabled = *input.Enabled
	}
	if cfg.Enabled && (cfg.BotToken == "" || cfg.DestinationID == "") {
		return notification.DeliveryConfig{}, notification.ErrDeliveryNotConfigured
	}

	if err := uc.settings.SaveDeliveryConfig(ctx, cfg); err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.UpdateSettings.Save: %v", err)
		return notification.DeliveryConfig{}, err
	}

	uc.l.Infof(ctx, "internal.notification.usecase.UpdateSettings: enabled=%t chat=%s", cfg.Enabled, cfg.DestinationID)
	return cfg, nil
}

func (uc *implUseCase) TestConnection(ctx context.Context) notification.TestResult {
	cfg, err := uc.settings.LoadDeliveryConfig(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.TestConnection: %v", err)
		return notification.TestResult{Success: false, Message: "Could not load Telegram settings."}
	}
	return uc.sender.TestConnection(ctx, cfg)
}
