package memory

import (
	"context"
	"sync"

	"marketplace-bot/internal/notification"
)

// SettingsStore keeps the operator-editable delivery settings in process memory,
// seeded from configuration at startup.
type SettingsStore struct {
	mu  sync.RWMutex
	cfg notification.DeliveryConfig
}

var _ notification.SettingsStore = (*SettingsStore)(nil)

func NewSettingsStore(initial notification.DeliveryConfig) *SettingsStore {
	return &SettingsStore{cfg: initial}
}

func (s *SettingsStore) LoadDeliveryConfig(ctx context.Context) (notification.DeliveryConfig, error) {
	if err := ctx.Err(); err != nil {
		return notification.DeliveryConfig{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, nil
}

func (s *SettingsStore) SaveDeliveryConfig(ctx context.Context, cfg notification.DeliveryConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	return nil
}
