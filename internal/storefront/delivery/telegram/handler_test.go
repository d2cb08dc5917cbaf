package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace-bot/internal/storefront"
	pkgLog "marketplace-bot/pkg/log"
	pkgTelegram "marketplace-bot/pkg/telegram"
)

type fakeRouter struct {
	dispatched chan storefront.Update
}

func (f *fakeRouter) Classify(u storefront.Update) (storefront.Route, bool) {
	return storefront.Route{}, false
}

func (f *fakeRouter) Dispatch(ctx context.Context, u storefront.Update) error {
	// Dispatch without a deadline is left unrecorded so the test times out.
	if _, ok := ctx.Deadline(); !ok {
		return nil
	}
	f.dispatched <- u
	return nil
}

func setup(cfg SecurityConfig) (*gin.Engine, *fakeRouter) {
	gin.SetMode(gin.TestMode)
	fr := &fakeRouter{dispatched: make(chan storefront.Update, 10)}
	r := gin.New()
	RegisterRoutes(r, New(pkgLog.NewNop(), fr, cfg))
	return r, fr
}

func post(r *gin.Engine, body []byte, secret string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set(HeaderSecretToken, secret)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func textUpdate(chatID int64, text string) []byte {
	b, _ := json.Marshal(pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: chatID},
			From:      &pkgTelegram.User{ID: 456, FirstName: "Alice"},
			Text:      text,
		},
	})
	return b
}

func status(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return body.Data["status"]
}

func TestHandleWebhook_DispatchesMessage(t *testing.T) {
	r, fr := setup(SecurityConfig{})

	w := post(r, textUpdate(123, "/start"), "")
	if w.Code != http.StatusOK || status(t, w) != "accepted" {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}

	select {
	case u := <-fr.dispatched:
		msg, ok := u.(storefront.TextMessage)
		if !ok || msg.ChatID != 123 || msg.SenderID != 456 || msg.Text != "/start" || msg.DisplayName != "Alice" {
			t.Errorf("unexpected update: %+v", u)
		}
	case <-time.After(time.Second):
		t.Fatal("update was not dispatched")
	}
}

func TestHandleWebhook_DispatchesCallback(t *testing.T) {
	r, fr := setup(SecurityConfig{})
	body, _ := json.Marshal(pkgTelegram.Update{
		UpdateID: 2,
		CallbackQuery: &pkgTelegram.CallbackQuery{
			ID:      "cb-1",
			From:    &pkgTelegram.User{ID: 456},
			Message: &pkgTelegram.Message{Chat: &pkgTelegram.Chat{ID: 789}},
			Data:    "browse_next_1",
		},
	})

	post(r, body, "")
	select {
	case u := <-fr.dispatched:
		cq, ok := u.(storefront.CallbackQuery)
		if !ok || cq.ID != "cb-1" || cq.ChatID != 789 || cq.Data != "browse_next_1" {
			t.Errorf("unexpected update: %+v", u)
		}
	case <-time.After(time.Second):
		t.Fatal("callback was not dispatched")
	}
}

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	r, _ := setup(SecurityConfig{})
	if w := post(r, []byte("{bad json"), ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_IgnoresOtherUpdates(t *testing.T) {
	r, fr := setup(SecurityConfig{})
	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 3})

	w := post(r, body, "")
	if w.Code != http.StatusOK || status(t, w) != "ignored" {
		t.Errorf("unexpected response: %d %s", w.Code, w.Body.String())
	}
	if len(fr.dispatched) != 0 {
		t.Errorf("nothing should be dispatched")
	}
}

func TestHandleWebhook_SecretToken(t *testing.T) {
	r, fr := setup(SecurityConfig{SecretToken: "hook-secret"})

	if w := post(r, textUpdate(1, "hi"), ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without secret, got %d", w.Code)
	}
	if w := post(r, textUpdate(1, "hi"), "wrong"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with wrong secret, got %d", w.Code)
	}
	if w := post(r, textUpdate(1, "hi"), "hook-secret"); w.Code != http.StatusOK {
		t.Errorf("expected 200 with valid secret, got %d", w.Code)
	}

	select {
	case <-fr.dispatched:
	case <-time.After(time.Second):
		t.Fatal("authorized update was not dispatched")
	}
	if len(fr.dispatched) != 0 {
		t.Errorf("rejected updates must not be dispatched")
	}
}

func TestHandleWebhook_RateLimitPerChat(t *testing.T) {
	// 10/min gives a burst of one.
	r, fr := setup(SecurityConfig{RateLimitPerMin: 10})

	if got := status(t, post(r, textUpdate(1, "a"), "")); got != "accepted" {
		t.Fatalf("first update should be accepted, got %s", got)
	}
	if got := status(t, post(r, textUpdate(1, "b"), "")); got != "throttled" {
		t.Errorf("second update from the same chat should be throttled, got %s", got)
	}
	if got := status(t, post(r, textUpdate(2, "c"), "")); got != "accepted" {
		t.Errorf("other chats have their own limiter, got %s", got)
	}

	deadline := time.After(time.Second)
	for n := 0; n < 2; n++ {
		select {
		case <-fr.dispatched:
		case <-deadline:
			t.Fatalf("expected two dispatched updates, got %d", n)
		}
	}
}
