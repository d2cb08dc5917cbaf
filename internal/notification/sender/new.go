package sender

import (
	"fmt"
	"net/http"
	"time"

	"marketplace-bot/internal/notification"
	pkgLog "marketplace-bot/pkg/log"
	pkgTelegram "marketplace-bot/pkg/telegram"
)

const (
	DefaultAPIBaseURL = "https://api.telegram.org"
	DefaultTimeout    = 10 * time.Second
)

// Options configures the delivery client. Zero values pick the defaults.
type Options struct {
	APIBaseURL         string
	Timeout            time.Duration
	HTTPClient         *http.Client
	AllowedUpdates     []string
	DropPendingUpdates bool
	SecretToken        string
}

// Client delivers rendered messages to the Telegram Bot API. The bot token comes
// with every call, so a settings change takes effect on the next send.
type Client struct {
	l    pkgLog.Logger
	opts Options
}

var _ notification.Sender = (*Client)(nil)

// New creates a delivery client.
func New(l pkgLog.Logger, opts Options) *Client {
	if opts.APIBaseURL == "" {
		opts.APIBaseURL = DefaultAPIBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if len(opts.AllowedUpdates) == 0 {
		opts.AllowedUpdates = []string{pkgTelegram.UpdateKindMessage, pkgTelegram.UpdateKindCallbackQuery}
	}
	return &Client{l: l, opts: opts}
}

func (c *Client) bot(token string) *pkgTelegram.Bot {
	b := pkgTelegram.NewBot(token)
	b.SetAPIURL(fmt.Sprintf("%s/bot%s", c.opts.APIBaseURL, token))
	b.SetHTTPClient(c.opts.HTTPClient)
	return b
}
