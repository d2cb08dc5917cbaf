package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"marketplace-bot/internal/middleware"
	pkgLog "marketplace-bot/pkg/log"
)

func setup() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := pkgLog.NewNop()
	RegisterRoutes(r.Group("/api/v1/admin"), New(l), middleware.New(l, "k"))
	return r
}

func classify(r *gin.Engine, body, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/storefront/classify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(middleware.HeaderInternalKey, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClassifyHandler(t *testing.T) {
	r := setup()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"command", `{"text":"/start login"}`, `"kind":"auth_prompt","param":"login"`},
		{"label", `{"text":"💰 Wallet"}`, `"kind":"wallet"`},
		{"callback with page", `{"callback_data":"browse_next_3"}`, `"kind":"browse_next","page":3`},
		{"unknown callback", `{"callback_data":"nope"}`, `"recognized":false`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := classify(r, tt.body, "k")
			if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("expected %s, got %d %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestClassifyHandlerRejects(t *testing.T) {
	r := setup()

	if w := classify(r, `{"text":"hi"}`, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without key, got %d", w.Code)
	}
	if w := classify(r, `{"text":"hi","callback_data":"browse_next"}`, "k"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for two inputs, got %d", w.Code)
	}
	if w := classify(r, `{}`, "k"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for no input, got %d", w.Code)
	}
}
