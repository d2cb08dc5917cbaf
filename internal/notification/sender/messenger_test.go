package sender_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"marketplace-bot/internal/notification"
	settingsMemory "marketplace-bot/internal/notification/repository/memory"
	pkgTelegram "marketplace-bot/pkg/telegram"
)

func TestMessenger_FollowsSettingsToken(t *testing.T) {
	fake := newFakeTelegram(t, okHandler)
	settings := settingsMemory.NewSettingsStore(notification.DeliveryConfig{BotToken: "111:old"})
	m := newClient(fake.srv.URL, time.Second).Messenger(settings, time.Second)
	ctx := context.Background()

	req := pkgTelegram.SendMessageRequest{ChatID: "42", Text: "hi"}
	if _, err := m.Send(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p, _ := fake.lastPath.Load().(string); p != "/bot111:old/sendMessage" {
		t.Errorf("expected the configured token, got %s", p)
	}

	if err := settings.SaveDeliveryConfig(ctx, notification.DeliveryConfig{BotToken: "222:new"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := m.Send(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p, _ := fake.lastPath.Load().(string); p != "/bot222:new/sendMessage" {
		t.Errorf("expected the updated token, got %s", p)
	}
	if err := m.AnswerCallbackQuery(ctx, pkgTelegram.AnswerCallbackQueryRequest{CallbackQueryID: "cb"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p, _ := fake.lastPath.Load().(string); p != "/bot222:new/answerCallbackQuery" {
		t.Errorf("expected the updated token on callback answers, got %s", p)
	}
}

func TestMessenger_MissingToken(t *testing.T) {
	fake := newFakeTelegram(t, okHandler)
	m := newClient(fake.srv.URL, time.Second).Messenger(settingsMemory.NewSettingsStore(notification.DeliveryConfig{}), time.Second)
	ctx := context.Background()

	if _, err := m.Send(ctx, pkgTelegram.SendMessageRequest{ChatID: "42", Text: "hi"}); !errors.Is(err, notification.ErrBotTokenMissing) {
		t.Errorf("expected ErrBotTokenMissing, got %v", err)
	}
	if _, err := m.GetUpdates(ctx, pkgTelegram.GetUpdatesRequest{}); !errors.Is(err, notification.ErrBotTokenMissing) {
		t.Errorf("expected ErrBotTokenMissing, got %v", err)
	}
	if n := fake.calls.Load(); n != 0 {
		t.Errorf("expected zero HTTP calls, got %d", n)
	}
}

func TestMessenger_GetUpdatesConflictIsDetectable(t *testing.T) {
	fake := newFakeTelegram(t, func(w http.ResponseWriter, path string, body map[string]interface{}) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"ok": false, "error_code": 409, "description": "Conflict: can't use getUpdates method while webhook is active"}`))
	})
	m := newClient(fake.srv.URL, time.Second).Messenger(settingsMemory.NewSettingsStore(enabledConfig()), time.Second)

	_, err := m.GetUpdates(context.Background(), pkgTelegram.GetUpdatesRequest{})
	if !pkgTelegram.IsConflict(err) {
		t.Fatalf("expected a conflict error, got %v", err)
	}
	if strings.Contains(err.Error(), token) {
		t.Errorf("token leaked into error: %v", err)
	}
}

func TestMessenger_GetUpdatesTimeoutCoversLongPoll(t *testing.T) {
	fake := newFakeTelegram(t, func(w http.ResponseWriter, path string, body map[string]interface{}) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"ok": true, "result": []}`))
	})
	settings := settingsMemory.NewSettingsStore(enabledConfig())
	ctx := context.Background()

	m := newClient(fake.srv.URL, 100*time.Millisecond).Messenger(settings, time.Second)
	if _, err := m.GetUpdates(ctx, pkgTelegram.GetUpdatesRequest{Timeout: 1}); err != nil {
		t.Errorf("a poll within request+poll timeout must succeed, got %v", err)
	}

	m = newClient(fake.srv.URL, 100*time.Millisecond).Messenger(settings, 100*time.Millisecond)
	if _, err := m.GetUpdates(ctx, pkgTelegram.GetUpdatesRequest{Timeout: 1}); err == nil {
		t.Errorf("a poll past request+poll timeout must fail")
	}
}
