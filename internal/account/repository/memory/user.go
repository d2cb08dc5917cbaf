package memory

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/google/uuid"

	"marketplace-bot/internal/account/repository"
	"marketplace-bot/internal/model"
)

func (r *implRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.findByUsername(opt.Username); ok {
		return model.User{}, repository.ErrDuplicate
	}

	u := model.User{
		ID:          uuid.NewString(),
		Username:    opt.Username,
		Email:       opt.Email,
		DisplayName: opt.DisplayName,
		TelegramID:  opt.TelegramID,
		CreatedAt:   r.now().UTC(),
	}
	r.users[u.ID] = u
	r.passwords[u.ID] = opt.Password
	return u, nil
}

func (r *implRepository) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	switch {
	case opt.ID != "":
		if u, ok := r.users[opt.ID]; ok {
			return u, nil
		}
	case opt.Username != "":
		if u, ok := r.findByUsername(opt.Username); ok {
			return u, nil
		}
	case opt.TelegramID != 0:
		for _, u := range r.users {
			if u.TelegramID == opt.TelegramID {
				return u, nil
			}
		}
	}
	return model.User{}, repository.ErrNotFound
}

// LinkTelegram attaches a chat to userID. A chat belongs to at most one user.
func (r *implRepository) LinkTelegram(ctx context.Context, userID string, telegramID int64) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	for id, other := range r.users {
		if id != userID && other.TelegramID == telegramID {
			return model.User{}, repository.ErrDuplicate
		}
	}
	u.TelegramID = telegramID
	r.users[userID] = u
	return u, nil
}

func (r *implRepository) CheckPassword(ctx context.Context, userID, password string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.passwords[userID]
	if !ok || stored == "" {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1, nil
}

// CurrentUser resolves the account linked to a Telegram user.
func (r *implRepository) CurrentUser(ctx context.Context, telegramID int64) (model.User, bool, error) {
	if telegramID == 0 {
		return model.User{}, false, nil
	}
	u, err := r.GetOneUser(ctx, repository.GetOneUserOptions{TelegramID: telegramID})
	if err == repository.ErrNotFound {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, err
	}
	return u, true, nil
}

// findByUsername matches case-insensitively. Callers hold the lock.
func (r *implRepository) findByUsername(username string) (model.User, bool) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return model.User{}, false
}

// GetCustomer lets other domains resolve a buyer without depending on the account repository.
func (r *implRepository) GetCustomer(ctx context.Context, userID string) (model.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[userID]
	return u, ok, nil
}
