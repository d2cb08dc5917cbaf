package repository

import (
	"context"

	"marketplace-bot/internal/model"
)

// Repository is the composed interface for the account data store.
type Repository interface {
	UserRepository
	SessionRepository
}

type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	LinkTelegram(ctx context.Context, userID string, telegramID int64) (model.User, error)
	CheckPassword(ctx context.Context, userID, password string) (bool, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.Session, error)
	DeleteSession(ctx context.Context, token string) (model.Session, error)
}
