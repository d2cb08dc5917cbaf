package memory

import (
	"sync"
	"time"

	"marketplace-bot/internal/account/repository"
	"marketplace-bot/internal/model"
	"marketplace-bot/internal/storefront"
)

// implRepository is an in-process account store. Passwords are kept as given:
// this store backs the demo flows and carries no security model.
type implRepository struct {
	mu        sync.RWMutex
	users     map[string]model.User
	passwords map[string]string
	sessions  map[string]model.Session
	now       func() time.Time
}

var (
	_ repository.Repository = (*implRepository)(nil)
	_ storefront.UserStore  = (*implRepository)(nil)
)

// New creates an empty store seeded with users. Seeded users have no password and cannot log in.
func New(seed ...model.User) *implRepository {
	r := &implRepository{
		users:     make(map[string]model.User),
		passwords: make(map[string]string),
		sessions:  make(map[string]model.Session),
		now:       time.Now,
	}
	for _, u := range seed {
		r.users[u.ID] = u
	}
	return r
}
