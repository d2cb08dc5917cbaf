package account

import (
	"time"

	"marketplace-bot/internal/model"
)

// --- UseCase Inputs ---

// ClientInfo describes where a session request came from.
type ClientInfo struct {
	IPAddress string
	Device    string
}

type RegisterInput struct {
	Username    string
	Email       string
	DisplayName string
	Password    string
	TelegramID  int64
	Client      ClientInfo
}

type LoginInput struct {
	Username   string
	Password   string
	TelegramID int64
	Client     ClientInfo
}

type LogoutInput struct {
	Token  string
	Client ClientInfo
}

// --- UseCase Outputs ---

type AuthOutput struct {
	User      model.User
	Token     string
	ExpiresAt time.Time
}
