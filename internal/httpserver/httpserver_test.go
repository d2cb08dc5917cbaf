package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	accountMemory "marketplace-bot/internal/account/repository/memory"
	accountUC "marketplace-bot/internal/account/usecase"
	"marketplace-bot/internal/notification"
	"marketplace-bot/internal/notification/formatter"
	settingsMemory "marketplace-bot/internal/notification/repository/memory"
	"marketplace-bot/internal/notification/sender"
	notificationUC "marketplace-bot/internal/notification/usecase"
	orderMemory "marketplace-bot/internal/order/repository/memory"
	orderUC "marketplace-bot/internal/order/usecase"
	"marketplace-bot/internal/storefront"
	catalogMemory "marketplace-bot/internal/storefront/repository/memory"
	walletMemory "marketplace-bot/internal/wallet/repository/memory"
	walletUC "marketplace-bot/internal/wallet/usecase"
	"marketplace-bot/pkg/log"
)

type fakeRouter struct{}

func (fakeRouter) Classify(u storefront.Update) (storefront.Route, bool) { return storefront.Route{}, false }
func (fakeRouter) Dispatch(ctx context.Context, u storefront.Update) error { return nil }

func newTestServer(t *testing.T, router storefront.Router) *HTTPServer {
	t.Helper()
	l := log.NewNop()

	wallets := walletMemory.New()
	users := accountMemory.New()
	notifier := notificationUC.New(l,
		settingsMemory.NewSettingsStore(notification.DeliveryConfig{}),
		formatter.New(time.UTC),
		sender.New(l, sender.Options{APIBaseURL: "http://127.0.0.1:0"}),
		wallets, time.UTC,
	)

	srv, err := New(l, Config{
		Logger:           l,
		Port:             8080,
		Mode:             gin.TestMode,
		Environment:      "development",
		InternalKey:      "admin-key",
		StorefrontRouter: router,
		RateLimitPerMin:  60,
		AccountUC:        accountUC.New(l, users, notifier, wallets, accountUC.Options{}),
		OrderUC:          orderUC.New(l, orderMemory.New(), catalogMemory.NewCatalog(catalogMemory.DefaultProducts()), users, notifier),
		WalletUC:         walletUC.New(l, wallets, users, notifier),
		NotificationUC:   notifier,
		ReportLocation:   time.UTC,
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func call(srv *HTTPServer, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := call(srv, http.MethodGet, path, "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("%s: expected a request id header", path)
		}
	}
}

func TestWebhookRouteOnlyInWebhookMode(t *testing.T) {
	if w := call(newTestServer(t, nil), http.MethodPost, "/webhook/telegram", `{}`, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 without a router, got %d", w.Code)
	}
	if w := call(newTestServer(t, fakeRouter{}), http.MethodPost, "/webhook/telegram", `{"update_id":1}`, nil); w.Code != http.StatusOK {
		t.Errorf("expected 200 with a router, got %d", w.Code)
	}
}

func TestAdminRoutesRequireKey(t *testing.T) {
	srv := newTestServer(t, nil)

	if w := call(srv, http.MethodGet, "/api/v1/admin/settings/telegram", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without key, got %d", w.Code)
	}
	w := call(srv, http.MethodPost, "/api/v1/admin/notifications/test", "", map[string]string{"X-Internal-Key": "admin-key"})
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"success":false`) {
		t.Errorf("expected a failed test result with delivery disabled, got %d %s", w.Code, w.Body.String())
	}

	w = call(srv, http.MethodPost, "/api/v1/admin/storefront/classify", `{"text":"/orders"}`, map[string]string{"X-Internal-Key": "admin-key"})
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"kind":"orders"`) {
		t.Errorf("expected the routing preview, got %d %s", w.Code, w.Body.String())
	}
}

func TestRegisterThenOrder(t *testing.T) {
	srv := newTestServer(t, nil)

	w := call(srv, http.MethodPost, "/api/v1/auth/register", `{"username":"alice","password":"pw"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}
	var reg struct {
		Data struct {
			User struct {
				ID string `json:"id"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reg); err != nil || reg.Data.User.ID == "" {
		t.Fatalf("decode register: %v %s", err, w.Body.String())
	}

	w = call(srv, http.MethodPost, "/api/v1/orders", `{"user_id":"`+reg.Data.User.ID+`","product_id":"prd-office"}`, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"new"`) {
		t.Errorf("place order: %d %s", w.Code, w.Body.String())
	}

	w = call(srv, http.MethodGet, "/api/v1/wallets/"+reg.Data.User.ID+"/balance", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"balance_usd":"0.00"`) {
		t.Errorf("balance: %d %s", w.Code, w.Body.String())
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected an error without use cases")
	}
}
