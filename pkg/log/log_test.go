package log_test

import (
	"context"
	"testing"

	"marketplace-bot/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level"},
	} {
		l := log.Init(cfg)
		l.Debugf(log.WithRequestID(context.Background(), "abc"), "hello %s", "world")
	}

	log.NewNop().Error(context.Background(), "discarded")
}
