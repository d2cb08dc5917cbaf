package memory

import (
	"context"
	"sync"
	"testing"

	"marketplace-bot/internal/notification"
)

func TestSettingsStore(t *testing.T) {
	ctx := context.Background()
	s := NewSettingsStore(notification.DeliveryConfig{BotToken: "a", DestinationID: "1", Enabled: true})

	got, err := s.LoadDeliveryConfig(ctx)
	if err != nil || got.BotToken != "a" {
		t.Fatalf("unexpected initial config: %+v, %v", got, err)
	}

	want := notification.DeliveryConfig{BotToken: "b", DestinationID: "2"}
	if err := s.SaveDeliveryConfig(ctx, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := s.LoadDeliveryConfig(ctx); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestSettingsStore_CancelledContext(t *testing.T) {
	s := NewSettingsStore(notification.DeliveryConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.LoadDeliveryConfig(ctx); err == nil {
		t.Errorf("expected error for cancelled context")
	}
	if err := s.SaveDeliveryConfig(ctx, notification.DeliveryConfig{}); err == nil {
		t.Errorf("expected error for cancelled context")
	}
}

func TestSettingsStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewSettingsStore(notification.DeliveryConfig{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SaveDeliveryConfig(ctx, notification.DeliveryConfig{Enabled: true})
		}()
		go func() {
			defer wg.Done()
			s.LoadDeliveryConfig(ctx)
		}()
	}
	wg.Wait()
}
