package memory

import (
	"context"

	"github.com/google/uuid"

	"marketplace-bot/internal/account/repository"
	"marketplace-bot/internal/model"
)

func (r *implRepository) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[opt.UserID]; !ok {
		return model.Session{}, repository.ErrNotFound
	}
	now := r.now().UTC()
	s := model.Session{
		Token:     uuid.NewString(),
		UserID:    opt.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(opt.TTL),
	}
	r.sessions[s.Token] = s
	return s, nil
}

// DeleteSession removes and returns the session. Expired sessions count as missing.
func (r *implRepository) DeleteSession(ctx context.Context, token string) (model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return model.Session{}, repository.ErrNotFound
	}
	delete(r.sessions, token)
	if !s.ExpiresAt.IsZero() && r.now().After(s.ExpiresAt) {
		return model.Session{}, repository.ErrNotFound
	}
	return s, nil
}
