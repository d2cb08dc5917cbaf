package notification

import (
	"context"
	"time"

	"marketplace-bot/internal/model"
)

// Notifier is what business flows depend on. Notify never fails the caller;
// the result is informational.
type Notifier interface {
	Notify(ctx context.Context, event Event) DeliveryResult
}

//go:generate mockery --name UseCase
type UseCase interface {
	Notifier

	SendDailyReport(ctx context.Context, date time.Time) DeliveryResult
	TestConnection(ctx context.Context) TestResult

	SetWebhook(ctx context.Context, url string) OperationResult
	DeleteWebhook(ctx context.Context) OperationResult
	WebhookInfo(ctx context.Context) (WebhookStatus, error)

	Settings(ctx context.Context) (DeliveryConfig, error)
	UpdateSettings(ctx context.Context, input UpdateSettingsInput) (DeliveryConfig, error)
}

// Formatter renders events. Implementations must be pure.
type Formatter interface {
	Format(event Event) Message
}

// Sender is the delivery client talking to the messaging provider.
type Sender interface {
	Send(ctx context.Context, cfg DeliveryConfig, msg Message) DeliveryResult
	SetWebhook(ctx context.Context, cfg DeliveryConfig, url string) OperationResult
	DeleteWebhook(ctx context.Context, cfg DeliveryConfig) OperationResult
	WebhookInfo(ctx context.Context, cfg DeliveryConfig) (WebhookStatus, error)
	TestConnection(ctx context.Context, cfg DeliveryConfig) TestResult
}

// ConfigProvider loads the delivery settings. The loading mechanism is up to the implementation.
type ConfigProvider interface {
	LoadDeliveryConfig(ctx context.Context) (DeliveryConfig, error)
}

// SettingsStore is a ConfigProvider the operator can edit.
type SettingsStore interface {
	ConfigProvider
	SaveDeliveryConfig(ctx context.Context, cfg DeliveryConfig) error
}

// DepositSource feeds the daily report.
type DepositSource interface {
	ListDepositsBetween(ctx context.Context, from, to time.Time) ([]model.Deposit, error)
}
