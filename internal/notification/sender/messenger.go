package sender

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"marketplace-bot/internal/notification"
	pkgTelegram "marketplace-bot/pkg/telegram"
)

// DefaultPollTimeout matches the poller's default long-poll wait.
const DefaultPollTimeout = 30 * time.Second

// Messenger is the storefront's bot client. It reads the bot token from the
// delivery settings on every call, the same source the webhook endpoints
// register with, so a token change moves replies and webhook together.
type Messenger struct {
	c          *Client
	settings   notification.ConfigProvider
	pollClient *http.Client
}

// Messenger binds the client to settings. pollTimeout is the longest getUpdates
// wait the poller asks for; the HTTP timeout for polls is that plus the request timeout.
func (c *Client) Messenger(settings notification.ConfigProvider, pollTimeout time.Duration) *Messenger {
	if pollTimeout <= 0 {
		pollTimeout = DefaultPollTimeout
	}
	return &Messenger{
		c:          c,
		settings:   settings,
		pollClient: &http.Client{Timeout: c.opts.Timeout + pollTimeout},
	}
}

func (m *Messenger) bot(ctx context.Context) (*pkgTelegram.Bot, string, error) {
	cfg, err := m.settings.LoadDeliveryConfig(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load delivery settings: %w", err)
	}
	if cfg.BotToken == "" {
		return nil, "", notification.ErrBotTokenMissing
	}
	return m.c.bot(cfg.BotToken), cfg.BotToken, nil
}

func (m *Messenger) Send(ctx context.Context, req pkgTelegram.SendMessageRequest) (*pkgTelegram.Message, error) {
	b, token, err := m.bot(ctx)
	if err != nil {
		return nil, err
	}
	msg, err := b.Send(ctx, req)
	return msg, redactErr(err, token)
}

func (m *Messenger) AnswerCallbackQuery(ctx context.Context, req pkgTelegram.AnswerCallbackQueryRequest) error {
	b, token, err := m.bot(ctx)
	if err != nil {
		return err
	}
	return redactErr(b.AnswerCallbackQuery(ctx, req), token)
}

func (m *Messenger) GetUpdates(ctx context.Context, req pkgTelegram.GetUpdatesRequest) ([]pkgTelegram.Update, error) {
	b, token, err := m.bot(ctx)
	if err != nil {
		return nil, err
	}
	b.SetHTTPClient(m.pollClient)
	updates, err := b.GetUpdates(ctx, req)
	return updates, redactErr(err, token)
}

func redactErr(err error, token string) error {
	if err == nil {
		return nil
	}
	return &redactedError{msg: redact(err.Error(), token), cause: err}
}
