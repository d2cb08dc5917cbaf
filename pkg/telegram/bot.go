package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

const defaultAPIBase = "https://api.telegram.org"

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("%s/bot%s", defaultAPIBase, token),
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetHTTPClient replaces the underlying HTTP client (timeouts, transports).
func (b *Bot) SetHTTPClient(c *http.Client) {
	if c != nil {
		b.httpClient = c
	}
}

// FormatChatID renders a numeric chat id the way SendMessageRequest expects it.
func FormatChatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "HTML").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	_, err := b.Send(ctx, SendMessageRequest{
		ChatID:    FormatChatID(chatID),
		Text:      text,
		ParseMode: parseMode,
	})
	return err
}

// Send issues sendMessage with the full request, including an optional keyboard.
func (b *Bot) Send(ctx context.Context, req SendMessageRequest) (*Message, error) {
	var msg Message
	if err := b.call(ctx, "sendMessage", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// AnswerCallbackQuery acknowledges a button press so the client stops its spinner.
func (b *Bot) AnswerCallbackQuery(ctx context.Context, req AnswerCallbackQueryRequest) error {
	return b.call(ctx, "answerCallbackQuery", req, nil)
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(ctx context.Context, req SetWebhookRequest) error {
	return b.call(ctx, "setWebhook", req, nil)
}

// DeleteWebhook removes the webhook so updates can be pulled with getUpdates.
func (b *Bot) DeleteWebhook(ctx context.Context, dropPending bool) error {
	return b.call(ctx, "deleteWebhook", DeleteWebhookRequest{DropPendingUpdates: dropPending}, nil)
}

// GetWebhookInfo returns the current webhook registration.
func (b *Bot) GetWebhookInfo(ctx context.Context) (WebhookInfo, error) {
	var info WebhookInfo
	err := b.call(ctx, "getWebhookInfo", struct{}{}, &info)
	return info, err
}

// GetUpdates pulls queued updates. Telegram answers 409 while a webhook is set.
func (b *Bot) GetUpdates(ctx context.Context, req GetUpdatesRequest) ([]Update, error) {
	var updates []Update
	if err := b.call(ctx, "getUpdates", req, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// APIResponse is a generic Telegram Bot API response wrapper.
type APIResponse struct {
	OK          bool            `json:"ok"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

func (b *Bot) call(ctx context.Context, method string, payload any, result any) error {
	url := fmt.Sprintf("%s/%s", b.apiURL, method)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read telegram %s response: %w", method, err)
	}

	var env APIResponse
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	if !env.OK {
		code := env.ErrorCode
		if code == 0 {
			code = resp.StatusCode
		}
		return &APIError{Method: method, ErrorCode: code, Description: env.Description}
	}

	if result != nil && len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, result); err != nil {
			return fmt.Errorf("failed to decode telegram %s result: %w", method, err)
		}
	}
	return nil
}
