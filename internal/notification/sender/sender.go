package sender

import (
	"context"
	"strings"
	"time"

	"marketplace-bot/internal/notification"
	pkgTelegram "marketplace-bot/pkg/telegram"
)

const (
	logPrefixSend    = "internal.notification.sender.Send"
	logPrefixWebhook = "internal.notification.sender.Webhook"

	testMessageText = "🔔 <b>Test Notification</b>\n\nYour marketplace Telegram notifications are configured correctly."
)

// Send delivers msg to cfg.DestinationID. A disabled or incomplete config returns
// immediately without touching the network. Every failure comes back as a result value.
func (c *Client) Send(ctx context.Context, cfg notification.DeliveryConfig, msg notification.Message) notification.DeliveryResult {
	if !cfg.Enabled {
		return notification.DeliveryResult{OK: false, ErrorDetail: notification.ErrDeliveryDisabled.Error()}
	}
	if !cfg.Ready() {
		return notification.DeliveryResult{OK: false, ErrorDetail: notification.ErrDeliveryNotConfigured.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	_, err := c.bot(cfg.BotToken).Send(ctx, pkgTelegram.SendMessageRequest{
		ChatID:      cfg.DestinationID,
		Text:        msg.Text,
		ParseMode:   msg.ParseMode,
		ReplyMarkup: msg.Markup,
	})
	if err != nil {
		detail := redact(err.Error(), cfg.BotToken)
		c.l.Warnf(ctx, "%s: delivery to %s failed: %s", logPrefixSend, cfg.DestinationID, detail)
		return notification.DeliveryResult{OK: false, ErrorDetail: detail}
	}

	c.l.Debugf(ctx, "%s: delivered to %s", logPrefixSend, cfg.DestinationID)
	return notification.DeliveryResult{OK: true}
}

// TestConnection sends a canned diagnostic message and describes the outcome for a human.
func (c *Client) TestConnection(ctx context.Context, cfg notification.DeliveryConfig) notification.TestResult {
	if !cfg.Enabled {
		return notification.TestResult{Success: false, Message: "Telegram notifications are disabled. Enable them in settings first."}
	}
	if !cfg.Ready() {
		return notification.TestResult{Success: false, Message: "Bot token and chat ID are required."}
	}

	res := c.Send(ctx, cfg, notification.Message{Text: testMessageText, ParseMode: pkgTelegram.ParseModeHTML})
	if !res.OK {
		return notification.TestResult{Success: false, Message: "Failed to send test message: " + res.ErrorDetail}
	}
	return notification.TestResult{Success: true, Message: "Test message sent successfully! Check your Telegram chat."}
}

// SetWebhook switches the bot to push mode.
func (c *Client) SetWebhook(ctx context.Context, cfg notification.DeliveryConfig, url string) notification.OperationResult {
	if cfg.BotToken == "" {
		return notification.OperationResult{Success: false, Error: notification.ErrBotTokenMissing.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	err := c.bot(cfg.BotToken).SetWebhook(ctx, pkgTelegram.SetWebhookRequest{
		URL:                url,
		AllowedUpdates:     c.opts.AllowedUpdates,
		DropPendingUpdates: c.opts.DropPendingUpdates,
		SecretToken:        c.opts.SecretToken,
	})
	if err != nil {
		detail := redact(err.Error(), cfg.BotToken)
		c.l.Errorf(ctx, "%s: setWebhook failed: %s", logPrefixWebhook, detail)
		return notification.OperationResult{Success: false, Error: detail}
	}

	c.l.Infof(ctx, "%s: webhook registered at %s", logPrefixWebhook, url)
	return notification.OperationResult{Success: true}
}

// DeleteWebhook switches the bot back to pull mode (getUpdates).
func (c *Client) DeleteWebhook(ctx context.Context, cfg notification.DeliveryConfig) notification.OperationResult {
	if cfg.BotToken == "" {
		return notification.OperationResult{Success: false, Error: notification.ErrBotTokenMissing.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	if err := c.bot(cfg.BotToken).DeleteWebhook(ctx, c.opts.DropPendingUpdates); err != nil {
		detail := redact(err.Error(), cfg.BotToken)
		c.l.Errorf(ctx, "%s: deleteWebhook failed: %s", logPrefixWebhook, detail)
		return notification.OperationResult{Success: false, Error: detail}
	}

	c.l.Infof(ctx, "%s: webhook removed", logPrefixWebhook)
	return notification.OperationResult{Success: true}
}

// WebhookInfo reads the current webhook registration.
func (c *Client) WebhookInfo(ctx context.Context, cfg notification.DeliveryConfig) (notification.WebhookStatus, error) {
	if cfg.BotToken == "" {
		return notification.WebhookStatus{}, notification.ErrBotTokenMissing
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	info, err := c.bot(cfg.BotToken).GetWebhookInfo(ctx)
	if err != nil {
		return notification.WebhookStatus{}, &redactedError{msg: redact(err.Error(), cfg.BotToken), cause: err}
	}

	status := notification.WebhookStatus{
		URL:              info.URL,
		PendingUpdates:   info.PendingUpdateCount,
		LastErrorMessage: info.LastErrorMessage,
	}
	if info.LastErrorDate > 0 {
		status.LastErrorAt = time.Unix(info.LastErrorDate, 0).UTC()
	}
	return status, nil
}

// redact keeps the bot token out of logs and operator-facing messages; transport
// errors embed the request URL, which carries the token.
func redact(s, token string) string {
	if token == "" {
		return s
	}
	return strings.ReplaceAll(s, token, "<redacted>")
}

type redactedError struct {
	msg   string
	cause error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.cause }
