package router_test

import (
	"context"
	"errors"
	"testing"

	"marketplace-bot/internal/storefront"
	"marketplace-bot/internal/storefront/router"
	pkgLog "marketplace-bot/pkg/log"
)

// capturingRegistry records which handler fired and with what request.
type capturingRegistry struct {
	calls []storefront.Request
	kinds []storefront.Kind
	err   error
}

func (c *capturingRegistry) registry() storefront.Registry {
	reg := storefront.Registry{}
	kinds := []storefront.Kind{
		storefront.KindStart, storefront.KindAuthPrompt, storefront.KindBrowse,
		storefront.KindBrowseNext, storefront.KindBrowsePrev, storefront.KindOrders,
		storefront.KindWallet, storefront.KindWalletDeposit, storefront.KindWalletWithdraw,
		storefront.KindHelp, storefront.KindGreeting,
	}
	for _, k := range kinds {
		k := k
		reg[k] = func(ctx context.Context, req storefront.Request) error {
			c.kinds = append(c.kinds, k)
			c.calls = append(c.calls, req)
			return c.err
		}
	}
	return reg
}

type recordingAck struct {
	order *[]string
	ids   []string
	err   error
}

func (a *recordingAck) AnswerCallback(ctx context.Context, id string) error {
	a.ids = append(a.ids, id)
	if a.order != nil {
		*a.order = append(*a.order, "ack")
	}
	return a.err
}

func text(s string) storefront.TextMessage {
	return storefront.TextMessage{ChatID: 10, SenderID: 20, DisplayName: "Alice", Username: "alice", Text: s}
}

func callback(data string) storefront.CallbackQuery {
	return storefront.CallbackQuery{ID: "cb-1", ChatID: 10, SenderID: 20, Data: data}
}

func TestDispatch_Commands(t *testing.T) {
	tests := []struct {
		text string
		want storefront.Kind
	}{
		{"/start", storefront.KindStart},
		{"/browse", storefront.KindBrowse},
		{"🛍️ Browse Products", storefront.KindBrowse},
		{"/orders", storefront.KindOrders},
		{"📦 My Orders", storefront.KindOrders},
		{"/wallet", storefront.KindWallet},
		{"💰 Wallet", storefront.KindWallet},
		{"/help", storefront.KindHelp},
		{"❓ Help", storefront.KindHelp},
		{"  /help  ", storefront.KindHelp},
		{"/help@MarketplaceBot", storefront.KindHelp},
		{"/WALLET", storefront.KindWallet},
		{"/start something-else", storefront.KindStart},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			rec := &capturingRegistry{}
			r := router.New(pkgLog.NewNop(), rec.registry(), nil)

			if err := r.Dispatch(context.Background(), text(tt.text)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rec.kinds) != 1 || rec.kinds[0] != tt.want {
				t.Errorf("expected exactly %s to fire, got %v", tt.want, rec.kinds)
			}
		})
	}
}

func TestDispatch_StartWithAuthParam(t *testing.T) {
	for _, param := range []string{"login", "register"} {
		t.Run(param, func(t *testing.T) {
			rec := &capturingRegistry{}
			r := router.New(pkgLog.NewNop(), rec.registry(), nil)

			r.Dispatch(context.Background(), text("/start "+param))

			if len(rec.kinds) != 1 || rec.kinds[0] != storefront.KindAuthPrompt {
				t.Fatalf("expected only the auth prompt to fire, got %v", rec.kinds)
			}
			req := rec.calls[0]
			if req.Route.Param != param {
				t.Errorf("expected param %q passed through, got %q", param, req.Route.Param)
			}
			if req.DisplayName != "Alice" || req.ChatID != 10 || req.SenderID != 20 {
				t.Errorf("expected sender details on the request, got %+v", req)
			}
		})
	}

	route, _ := router.Classify(text("/start@MarketplaceBot register"))
	if route.Kind != storefront.KindAuthPrompt || route.Param != "register" {
		t.Errorf("expected bot-suffixed /start to keep its param, got %+v", route)
	}
}

func TestClassify_KeywordScan(t *testing.T) {
	tests := []struct {
		text string
		want storefront.Kind
	}{
		{"can you help me buy something", storefront.KindHelp},
		{"Show me a PRODUCT", storefront.KindBrowse},
		{"I want to buy", storefront.KindBrowse},
		{"where is my order", storefront.KindOrders},
		{"last purchase?", storefront.KindOrders},
		{"need money", storefront.KindWallet},
		{"my balance please", storefront.KindWallet},
		{"open wallet", storefront.KindWallet},
		{"hello there", storefront.KindGreeting},
		{"", storefront.KindGreeting},
		{"/unknown", storefront.KindGreeting},
		{"/orders now", storefront.KindOrders},
	}

	for _, tt := range tests {
		route, ok := router.Classify(text(tt.text))
		if !ok || route.Kind != tt.want {
			t.Errorf("Classify(%q) = %v, %v; want %s", tt.text, route.Kind, ok, tt.want)
		}
	}
}

func TestClassify_CommandBeatsKeyword(t *testing.T) {
	for _, in := range []string{"/start help", "/start buy wallet"} {
		route, _ := router.Classify(text(in))
		if route.Kind != storefront.KindStart {
			t.Errorf("Classify(%q) = %s, want start", in, route.Kind)
		}
	}
}

func TestClassify_Callbacks(t *testing.T) {
	tests := []struct {
		data     string
		want     storefront.Kind
		wantPage int
	}{
		{"browse_next", storefront.KindBrowseNext, 0},
		{"browse_prev", storefront.KindBrowsePrev, 0},
		{"browse_next_3", storefront.KindBrowseNext, 3},
		{"wallet_deposit", storefront.KindWalletDeposit, 0},
		{"wallet_withdraw", storefront.KindWalletWithdraw, 0},
	}
	for _, tt := range tests {
		route, ok := router.Classify(callback(tt.data))
		if !ok || route.Kind != tt.want || route.Page != tt.wantPage {
			t.Errorf("Classify(%q) = %+v, %v", tt.data, route, ok)
		}
	}
}

func TestDispatch_UnrecognizedCallbackIsNoop(t *testing.T) {
	for _, data := range []string{
		"", "browse", "browse_", "browse_sideways", "wallet_next", "orders_list",
		"_", "browse_next_x", "browse_next_-1", "wallet_deposit_2", "browse_next_1_2",
	} {
		t.Run(data, func(t *testing.T) {
			rec := &capturingRegistry{}
			ack := &recordingAck{}
			r := router.New(pkgLog.NewNop(), rec.registry(), ack)

			if err := r.Dispatch(context.Background(), callback(data)); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(rec.kinds) != 0 {
				t.Errorf("expected no handler, got %v", rec.kinds)
			}
			if len(ack.ids) != 1 {
				t.Errorf("callback must still be acknowledged")
			}
		})
	}
}

func TestDispatch_AcknowledgesBeforeHandler(t *testing.T) {
	var order []string
	ack := &recordingAck{order: &order}
	reg := storefront.Registry{
		storefront.KindBrowseNext: func(ctx context.Context, req storefront.Request) error {
			order = append(order, "handler")
			if req.Route.Page != 2 || req.ChatID != 10 {
				t.Errorf("unexpected request: %+v", req)
			}
			return nil
		},
	}
	r := router.New(pkgLog.NewNop(), reg, ack)

	if err := r.Dispatch(context.Background(), callback("browse_next_2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != "ack" || order[1] != "handler" {
		t.Errorf("expected ack then handler, got %v", order)
	}
}

func TestDispatch_AckFailureDoesNotBlock(t *testing.T) {
	rec := &capturingRegistry{}
	ack := &recordingAck{err: errors.New("network down")}
	r := router.New(pkgLog.NewNop(), rec.registry(), ack)

	if err := r.Dispatch(context.Background(), callback("wallet_deposit")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.kinds) != 1 || rec.kinds[0] != storefront.KindWalletDeposit {
		t.Errorf("expected handler to run despite ack failure, got %v", rec.kinds)
	}
}

func TestDispatch_TextIsNotAcknowledged(t *testing.T) {
	ack := &recordingAck{}
	r := router.New(pkgLog.NewNop(), (&capturingRegistry{}).registry(), ack)

	r.Dispatch(context.Background(), text("/help"))
	if len(ack.ids) != 0 {
		t.Errorf("text messages must not be acknowledged")
	}
}

func TestDispatch_HandlerErrorPropagates(t *testing.T) {
	rec := &capturingRegistry{err: errors.New("send failed")}
	r := router.New(pkgLog.NewNop(), rec.registry(), nil)

	if err := r.Dispatch(context.Background(), text("/wallet")); err == nil {
		t.Errorf("expected handler error to be returned")
	}
}

func TestDispatch_MissingHandlerOrNilUpdate(t *testing.T) {
	r := router.New(pkgLog.NewNop(), storefront.Registry{}, nil)
	if err := r.Dispatch(context.Background(), text("/help")); err != nil {
		t.Errorf("expected nil error for unregistered kind, got %v", err)
	}
	if err := r.Dispatch(context.Background(), nil); err != nil {
		t.Errorf("expected nil error for nil update, got %v", err)
	}
}

func TestCallbackDataBuilders(t *testing.T) {
	if got := router.BrowseCallbackData(router.SuffixNext, 4); got != "browse_next_4" {
		t.Errorf("unexpected browse data %q", got)
	}
	if got := router.WalletCallbackData(router.SuffixWithdraw); got != "wallet_withdraw" {
		t.Errorf("unexpected wallet data %q", got)
	}
	route, ok := router.Classify(callback(router.BrowseCallbackData(router.SuffixPrev, 1)))
	if !ok || route.Kind != storefront.KindBrowsePrev || route.Page != 1 {
		t.Errorf("builder output must classify back, got %+v", route)
	}
}
