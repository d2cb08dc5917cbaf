package notification

import "errors"

var (
	ErrDeliveryNotConfigured = errors.New("bot token and chat id are required")
	ErrDeliveryDisabled      = errors.New("telegram notifications are disabled")
	ErrInvalidWebhookURL     = errors.New("webhook url must be an https url")
	ErrBotTokenMissing       = errors.New("bot token is required")
	ErrWebhookNotServed      = errors.New("this instance does not serve the webhook route (telegram.mode is polling)")
)
