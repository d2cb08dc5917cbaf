package repository

import "time"

type CreateUserOptions struct {
	Username    string
	Email       string
	DisplayName string
	Password    string
	TelegramID  int64
}

// GetOneUserOptions filters a single user. The first non-empty field wins.
type GetOneUserOptions struct {
	ID         string
	Username   string
	TelegramID int64
}

type CreateSessionOptions struct {
	UserID string
	TTL    time.Duration
}
