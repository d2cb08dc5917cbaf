package http

import (
	"strings"
	"time"

	"marketplace-bot/internal/notification"
)

const reportDateLayout = "2006-01-02"

// --- Request DTOs ---

type dailyReportReq struct {
	Date string `json:"date"`
}

func (r dailyReportReq) validate() error {
	if r.Date == "" {
		return nil
	}
	if _, err := time.Parse(reportDateLayout, r.Date); err != nil {
		return errInvalidDate
	}
	return nil
}

// toDate returns the zero time when no date was given, which the use case reads as yesterday.
func (r dailyReportReq) toDate(loc *time.Location) time.Time {
	if r.Date == "" {
		return time.Time{}
	}
	d, _ := time.ParseInLocation(reportDateLayout, r.Date, loc)
	return d
}

type updateSettingsReq struct {
	BotToken *string `json:"bot_token"`
	ChatID   *string `json:"chat_id"`
	Enabled  *bool   `json:"enabled"`
}

func (r updateSettingsReq) validate() error { return nil }

func (r updateSettingsReq) toInput() notification.UpdateSettingsInput {
	return notification.UpdateSettingsInput{
		BotToken:      r.BotToken,
		DestinationID: r.ChatID,
		Enabled:       r.Enabled,
	}
}

type setWebhookReq struct {
	URL string `json:"url" binding:"required"`
}

func (r setWebhookReq) validate() error { return nil }

// --- Response DTOs ---

type testResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *handler) newTestResp(res notification.TestResult) testResp {
	return testResp{Success: res.Success, Message: res.Message}
}

type deliveryResp struct {
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}

func (h *handler) newDeliveryResp(res notification.DeliveryResult) deliveryResp {
	return deliveryResp{Delivered: res.OK, Error: res.ErrorDetail}
}

type settingsResp struct {
	BotToken   string `json:"bot_token"`
	ChatID     string `json:"chat_id"`
	Enabled    bool   `json:"enabled"`
	Configured bool   `json:"configured"`
}

func (h *handler) newSettingsResp(cfg notification.DeliveryConfig) settingsResp {
	return settingsResp{
		BotToken:   maskToken(cfg.BotToken),
		ChatID:     cfg.DestinationID,
		Enabled:    cfg.Enabled,
		Configured: cfg.BotToken != "" && cfg.DestinationID != "",
	}
}

type operationResp struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (h *handler) newOperationResp(res notification.OperationResult) operationResp {
	return operationResp{Success: res.Success, Error: res.Error}
}

type webhookResp struct {
	URL              string     `json:"url"`
	Active           bool       `json:"active"`
	PendingUpdates   int        `json:"pending_updates"`
	LastErrorMessage string     `json:"last_error_message,omitempty"`
	LastErrorAt      *time.Time `json:"last_error_at,omitempty"`
}

func (h *handler) newWebhookResp(st notification.WebhookStatus) webhookResp {
	resp := webhookResp{
		URL:              st.URL,
		Active:           st.URL != "",
		PendingUpdates:   st.PendingUpdates,
		LastErrorMessage: st.LastErrorMessage,
	}
	if !st.LastErrorAt.IsZero() {
		at := st.LastErrorAt
		resp.LastErrorAt = &at
	}
	return resp
}

// maskToken keeps the bot id prefix and hides the secret part.
func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if i := strings.Index(token, ":"); i > 0 {
		return token[:i] + ":****"
	}
	return "****"
}
