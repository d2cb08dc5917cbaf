package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"marketplace-bot/internal/model"
	"marketplace-bot/internal/notification"
	settingsMemory "marketplace-bot/internal/notification/repository/memory"
	"marketplace-bot/internal/notification/sender"
	"marketplace-bot/internal/storefront"
	"marketplace-bot/internal/storefront/router"
	"marketplace-bot/internal/storefront/usecase"
	pkgLog "marketplace-bot/pkg/log"
	pkgTelegram "marketplace-bot/pkg/telegram"
)

// ── Fakes ──────────────────────────────────────────────────────────────────

type sentMessage struct {
	ChatID      string                 `json:"chat_id"`
	Text        string                 `json:"text"`
	ParseMode   string                 `json:"parse_mode"`
	ReplyMarkup map[string]interface{} `json:"reply_markup"`
}

type fakeTelegram struct {
	mu       sync.Mutex
	sent     []sentMessage
	answered []string
}

func (f *fakeTelegram) handler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		var m sentMessage
		json.NewDecoder(r.Body).Decode(&m)
		f.sent = append(f.sent, m)
		w.Write([]byte(`{"ok": true, "result": {"message_id": 1, "chat": {"id": 1}}}`))
		return
	case strings.HasSuffix(r.URL.Path, "/answerCallbackQuery"):
		var a pkgTelegram.AnswerCallbackQueryRequest
		json.NewDecoder(r.Body).Decode(&a)
		f.answered = append(f.answered, a.CallbackQueryID)
	}
	w.Write([]byte(`{"ok": true, "result": true}`))
}

type fakeUsers struct {
	users map[int64]model.User
	err   error
}

func (f *fakeUsers) CurrentUser(ctx context.Context, telegramID int64) (model.User, bool, error) {
	if f.err != nil {
		return model.User{}, false, f.err
	}
	u, ok := f.users[telegramID]
	return u, ok, nil
}

type fakeOrders struct{ byUser map[string][]model.Order }

func (f *fakeOrders) ListOrders(ctx context.Context, userID string) ([]model.Order, error) {
	return f.byUser[userID], nil
}

type fakeBalances struct{ byUser map[string]decimal.Decimal }

func (f *fakeBalances) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	return f.byUser[userID], nil
}

type fakeCatalog struct {
	products []model.Product
	err      error
}

func (f *fakeCatalog) Page(ctx context.Context, page, size int) (storefront.ProductPage, error) {
	if f.err != nil {
		return storefront.ProductPage{}, f.err
	}
	total := (len(f.products) + size - 1) / size
	out := storefront.ProductPage{Page: page, TotalPages: total}
	start := page * size
	if start < len(f.products) {
		end := start + size
		if end > len(f.products) {
			end = len(f.products)
		}
		out.Products = f.products[start:end]
	}
	return out, nil
}

// ── Helpers ────────────────────────────────────────────────────────────────

const (
	linkedTelegramID   = 555
	unlinkedTelegramID = 777
)

type testEnv struct {
	uc      storefront.UseCase
	tg      *fakeTelegram
	catalog *fakeCatalog
	users   *fakeUsers
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithPageSize(t, 1)
}

func newTestEnvWithPageSize(t *testing.T, pageSize int) *testEnv {
	t.Helper()
	tg := &fakeTelegram{}
	srv := httptest.NewServer(http.HandlerFunc(tg.handler))
	t.Cleanup(srv.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(srv.URL)

	users := &fakeUsers{users: map[int64]model.User{
		linkedTelegramID: {ID: "u1", Username: "alice", DisplayName: "Alice", TelegramID: linkedTelegramID},
	}}
	orders := &fakeOrders{byUser: map[string][]model.Order{
		"u1": {
			{ID: "o-1", ProductName: "Gift Card <50>", Amount: decimal.NewFromInt(50), Status: model.OrderStatusCompleted, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "o-2", ProductName: "VPN 1 month", Amount: decimal.RequireFromString("4.5"), Status: model.OrderStatusNew, CreatedAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		},
	}}
	balances := &fakeBalances{byUser: map[string]decimal.Decimal{"u1": decimal.RequireFromString("123.4")}}
	catalog := &fakeCatalog{products: []model.Product{
		{ID: "p1", Name: "Gift Card", Price: decimal.NewFromInt(50), Stock: 3},
		{ID: "p2", Name: "VPN", Price: decimal.RequireFromString("4.5"), Stock: 10},
		{ID: "p3", Name: "Game Key", Price: decimal.NewFromInt(20), Stock: 1},
	}}

	uc := usecase.New(pkgLog.NewNop(), bot, users, orders, balances, catalog, usecase.Options{
		SiteURL:  "https://shop.example/",
		PageSize: pageSize,
	})
	return &testEnv{uc: uc, tg: tg, catalog: catalog, users: users}
}

func request(kind storefront.Kind, senderID int64) storefront.Request {
	return storefront.Request{
		Route:       storefront.Route{Kind: kind},
		ChatID:      senderID,
		SenderID:    senderID,
		DisplayName: "Alice",
	}
}

func (e *testEnv) only(t *testing.T) sentMessage {
	t.Helper()
	e.tg.mu.Lock()
	defer e.tg.mu.Unlock()
	if len(e.tg.sent) != 1 {
		t.Fatalf("expected exactly one message, got %d", len(e.tg.sent))
	}
	return e.tg.sent[0]
}

func inlineButtons(m sentMessage) []map[string]interface{} {
	var out []map[string]interface{}
	rows, _ := m.ReplyMarkup["inline_keyboard"].([]interface{})
	for _, row := range rows {
		for _, b := range row.([]interface{}) {
			out = append(out, b.(map[string]interface{}))
		}
	}
	return out
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestStart_SendsMainMenu(t *testing.T) {
	env := newTestEnv(t)
	if err := env.uc.Start(context.Background(), request(storefront.KindStart, linkedTelegramID)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := env.only(t)
	if !strings.Contains(m.Text, "Welcome") || m.ParseMode != "HTML" || m.ChatID != "555" {
		t.Errorf("unexpected message: %+v", m)
	}
	rows, _ := m.ReplyMarkup["keyboard"].([]interface{})
	if len(rows) != 2 || len(rows[0].([]interface{})) != 2 || len(rows[1].([]interface{})) != 2 {
		t.Fatalf("expected a 2x2 reply keyboard, got %v", m.ReplyMarkup)
	}
	first := rows[0].([]interface{})[0].(map[string]interface{})
	if first["text"] != router.LabelBrowse {
		t.Errorf("expected first button %q, got %v", router.LabelBrowse, first["text"])
	}
	if m.ReplyMarkup["is_persistent"] != true {
		t.Errorf("expected a persistent keyboard")
	}
}

func TestAuthPrompt_DeepLink(t *testing.T) {
	for _, param := range []string{storefront.AuthParamLogin, storefront.AuthParamRegister} {
		t.Run(param, func(t *testing.T) {
			env := newTestEnv(t)
			req := request(storefront.KindAuthPrompt, unlinkedTelegramID)
			req.Route.Param = param

			if err := env.uc.AuthPrompt(context.Background(), req); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			buttons := inlineButtons(env.only(t))
			if len(buttons) != 1 {
				t.Fatalf("expected one button, got %v", buttons)
			}
			want := "https://shop.example/" + param + "?telegram_id=777"
			if buttons[0]["url"] != want {
				t.Errorf("expected url %q, got %v", want, buttons[0]["url"])
			}
		})
	}
}

func TestAuthPrompt_EscapesDisplayName(t *testing.T) {
	env := newTestEnv(t)
	req := request(storefront.KindAuthPrompt, 1)
	req.Route.Param = storefront.AuthParamLogin
	req.DisplayName = "<b>Eve</b>"

	env.uc.AuthPrompt(context.Background(), req)
	if m := env.only(t); !strings.Contains(m.Text, "&lt;b&gt;Eve&lt;/b&gt;") {
		t.Errorf("expected escaped name, got %q", m.Text)
	}
}

func TestBrowse_Pagination(t *testing.T) {
	tests := []struct {
		name     string
		route    storefront.Route
		wantName string
		wantPage string
	}{
		{"first page", storefront.Route{Kind: storefront.KindBrowse}, "Gift Card", "Page 1 of 3"},
		{"next", storefront.Route{Kind: storefront.KindBrowseNext, Page: 0}, "VPN", "Page 2 of 3"},
		{"prev", storefront.Route{Kind: storefront.KindBrowsePrev, Page: 2}, "VPN", "Page 2 of 3"},
		{"next wraps", storefront.Route{Kind: storefront.KindBrowseNext, Page: 2}, "Gift Card", "Page 1 of 3"},
		{"prev wraps", storefront.Route{Kind: storefront.KindBrowsePrev, Page: 0}, "Game Key", "Page 3 of 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			req := request(tt.route.Kind, linkedTelegramID)
			req.Route = tt.route

			if err := env.uc.Browse(context.Background(), req); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			m := env.only(t)
			if !strings.Contains(m.Text, tt.wantName) || !strings.Contains(m.Text, tt.wantPage) {
				t.Errorf("unexpected text: %q", m.Text)
			}
		})
	}
}

func TestBrowse_Keyboard(t *testing.T) {
	env := newTestEnv(t)
	req := request(storefront.KindBrowseNext, linkedTelegramID)
	req.Route.Page = 0

	env.uc.Browse(context.Background(), req)
	buttons := inlineButtons(env.only(t))
	if len(buttons) != 3 {
		t.Fatalf("expected prev, next and buy buttons, got %v", buttons)
	}
	if buttons[0]["callback_data"] != "browse_prev_1" || buttons[1]["callback_data"] != "browse_next_1" {
		t.Errorf("pagination must carry the page on screen, got %v %v", buttons[0], buttons[1])
	}
	buy, _ := buttons[2]["url"].(string)
	if !strings.HasPrefix(buy, "https://shop.example/products/p2?") || !strings.Contains(buy, "price=4.50") {
		t.Errorf("unexpected buy-now url %q", buy)
	}
	if !strings.Contains(buttons[2]["text"].(string), "$4.50") {
		t.Errorf("expected price on the buy button, got %v", buttons[2]["text"])
	}
}

func TestBrowse_PageSizeShowsWholeCatalog(t *testing.T) {
	env := newTestEnvWithPageSize(t, 2)
	ctx := context.Background()

	if err := env.uc.Browse(ctx, request(storefront.KindBrowse, linkedTelegramID)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := request(storefront.KindBrowseNext, linkedTelegramID)
	if err := env.uc.Browse(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env.tg.mu.Lock()
	sent := append([]sentMessage(nil), env.tg.sent...)
	env.tg.mu.Unlock()
	if len(sent) != 2 {
		t.Fatalf("expected two pages, got %d", len(sent))
	}

	first, second := sent[0], sent[1]
	if !strings.Contains(first.Text, "Gift Card") || !strings.Contains(first.Text, "VPN") || !strings.Contains(first.Text, "Page 1 of 2") {
		t.Errorf("first page should list two products, got %q", first.Text)
	}
	if !strings.Contains(second.Text, "Game Key") || !strings.Contains(second.Text, "Page 2 of 2") {
		t.Errorf("second page should list the rest, got %q", second.Text)
	}

	var buys []string
	for _, m := range sent {
		for _, b := range inlineButtons(m) {
			if u, ok := b["url"].(string); ok {
				buys = append(buys, u)
			}
		}
	}
	for _, id := range []string{"p1", "p2", "p3"} {
		found := false
		for _, u := range buys {
			if strings.Contains(u, "/products/"+id+"?") {
				found = true
			}
		}
		if !found {
			t.Errorf("product %s has no buy button in %v", id, buys)
		}
	}
}

func TestBrowse_EmptyAndFailingCatalog(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.products = nil
	env.uc.Browse(context.Background(), request(storefront.KindBrowse, 1))
	if m := env.only(t); !strings.Contains(m.Text, "No products") {
		t.Errorf("unexpected text: %q", m.Text)
	}

	env = newTestEnv(t)
	env.catalog.err = errors.New("db down")
	if err := env.uc.Browse(context.Background(), request(storefront.KindBrowse, 1)); err != nil {
		t.Fatalf("catalog failures are answered, not returned: %v", err)
	}
	if m := env.only(t); !strings.Contains(m.Text, "unavailable") {
		t.Errorf("unexpected text: %q", m.Text)
	}
}

func TestOrders(t *testing.T) {
	env := newTestEnv(t)
	if err := env.uc.Orders(context.Background(), request(storefront.KindOrders, linkedTelegramID)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := env.only(t)
	for _, want := range []string{"#o-1", "Gift Card &lt;50&gt;", "$50.00", "completed", "#o-2", "$4.50"} {
		if !strings.Contains(m.Text, want) {
			t.Errorf("expected %q in %q", want, m.Text)
		}
	}
}

func TestOrders_UnlinkedUserGetsLoginPrompt(t *testing.T) {
	env := newTestEnv(t)
	env.uc.Orders(context.Background(), request(storefront.KindOrders, unlinkedTelegramID))

	m := env.only(t)
	if !strings.Contains(m.Text, "not linked") {
		t.Errorf("unexpected text: %q", m.Text)
	}
	if b := inlineButtons(m); len(b) != 1 || !strings.Contains(b[0]["url"].(string), "/login?telegram_id=777") {
		t.Errorf("expected a login deep link, got %v", b)
	}
}

func TestOrders_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.users.err = errors.New("timeout")
	if err := env.uc.Orders(context.Background(), request(storefront.KindOrders, linkedTelegramID)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m := env.only(t); !strings.Contains(m.Text, "Something went wrong") {
		t.Errorf("unexpected text: %q", m.Text)
	}
}

func TestWallet(t *testing.T) {
	env := newTestEnv(t)
	env.uc.Wallet(context.Background(), request(storefront.KindWallet, linkedTelegramID))

	m := env.only(t)
	if !strings.Contains(m.Text, "$123.40") {
		t.Errorf("expected balance in %q", m.Text)
	}
	buttons := inlineButtons(m)
	if len(buttons) != 2 || buttons[0]["callback_data"] != "wallet_deposit" || buttons[1]["callback_data"] != "wallet_withdraw" {
		t.Errorf("unexpected wallet buttons: %v", buttons)
	}
}

func TestWalletActions(t *testing.T) {
	env := newTestEnv(t)
	env.uc.WalletDeposit(context.Background(), request(storefront.KindWalletDeposit, 1))
	m := env.only(t)
	if !strings.Contains(m.Text, "₿ BTC") || !strings.Contains(m.Text, "Ξ ETH") {
		t.Errorf("expected coin list in %q", m.Text)
	}
	if b := inlineButtons(m); len(b) != 1 || b[0]["url"] != "https://shop.example/wallet/deposit" {
		t.Errorf("unexpected deposit button: %v", b)
	}

	env = newTestEnv(t)
	env.uc.WalletWithdraw(context.Background(), request(storefront.KindWalletWithdraw, 1))
	if b := inlineButtons(env.only(t)); len(b) != 1 || b[0]["url"] != "https://shop.example/wallet/withdraw" {
		t.Errorf("unexpected withdraw button: %v", b)
	}
}

func TestHelpAndGreeting(t *testing.T) {
	env := newTestEnv(t)
	env.uc.Help(context.Background(), request(storefront.KindHelp, 1))
	if m := env.only(t); !strings.Contains(m.Text, "/browse") || !strings.Contains(m.Text, "/wallet") {
		t.Errorf("unexpected help text: %q", m.Text)
	}

	env = newTestEnv(t)
	req := request(storefront.KindGreeting, 1)
	req.DisplayName = ""
	env.uc.Greeting(context.Background(), req)
	if m := env.only(t); !strings.Contains(m.Text, "Hi there") {
		t.Errorf("unexpected greeting: %q", m.Text)
	}
}

func TestAnswerCallback(t *testing.T) {
	env := newTestEnv(t)
	if err := env.uc.AnswerCallback(context.Background(), "cb-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(env.tg.answered) != 1 || env.tg.answered[0] != "cb-9" {
		t.Errorf("expected cb-9 to be answered, got %v", env.tg.answered)
	}
}

func TestRegistryThroughRouter(t *testing.T) {
	env := newTestEnv(t)
	r := router.New(pkgLog.NewNop(), env.uc.Registry(), env.uc)

	err := r.Dispatch(context.Background(), storefront.CallbackQuery{ID: "cb-1", ChatID: 555, SenderID: 555, Data: "wallet_deposit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(env.tg.answered) != 1 {
		t.Errorf("expected the callback to be acknowledged")
	}
	if m := env.only(t); !strings.Contains(m.Text, "Deposit") {
		t.Errorf("unexpected text: %q", m.Text)
	}
}

func TestSendFailureIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"ok": false, "error_code": 403, "description": "Forbidden: bot was blocked by the user"}`))
	}))
	defer srv.Close()
	bot := pkgTelegram.NewBot("t")
	bot.SetAPIURL(srv.URL)
	uc := usecase.New(pkgLog.NewNop(), bot, &fakeUsers{}, &fakeOrders{}, &fakeBalances{}, &fakeCatalog{}, usecase.Options{SiteURL: "https://shop.example"})

	if err := uc.Help(context.Background(), request(storefront.KindHelp, 1)); err == nil || !strings.Contains(err.Error(), "blocked") {
		t.Errorf("expected provider error, got %v", err)
	}
}

func TestRepliesFollowSettingsToken(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.Write([]byte(`{"ok": true, "result": {"message_id": 1, "chat": {"id": 1}}}`))
	}))
	t.Cleanup(srv.Close)

	settings := settingsMemory.NewSettingsStore(notification.DeliveryConfig{BotToken: "111:old"})
	messenger := sender.New(pkgLog.NewNop(), sender.Options{APIBaseURL: srv.URL}).Messenger(settings, time.Second)
	uc := usecase.New(pkgLog.NewNop(), messenger, &fakeUsers{}, &fakeOrders{}, &fakeBalances{}, &fakeCatalog{}, usecase.Options{SiteURL: "https://shop.example"})
	ctx := context.Background()

	if err := uc.Help(ctx, request(storefront.KindHelp, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := settings.SaveDeliveryConfig(ctx, notification.DeliveryConfig{BotToken: "222:new"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := uc.Help(ctx, request(storefront.KindHelp, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.AnswerCallback(ctx, "cb-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{"/bot111:old/sendMessage", "/bot222:new/sendMessage", "/bot222:new/answerCallbackQuery"}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, paths)
	}
}
