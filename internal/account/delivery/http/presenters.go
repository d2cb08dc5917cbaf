package http

import (
	"time"

	"marketplace-bot/internal/account"
)

// --- Request DTOs ---

type registerReq struct {
	Username    string `json:"username"     binding:"required,min=3,max=64"`
	Email       string `json:"email"        binding:"omitempty,email"`
	DisplayName string `json:"display_name" binding:"max=128"`
	Password    string `json:"password"     binding:"required,min=1"`
	TelegramID  int64  `json:"telegram_id"`
}

func (r registerReq) validate() error { return nil }

func (r registerReq) toInput(client account.ClientInfo) account.RegisterInput {
	return account.RegisterInput{
		Username:    r.Username,
		Email:       r.Email,
		DisplayName: r.DisplayName,
		Password:    r.Password,
		TelegramID:  r.TelegramID,
		Client:      client,
	}
}

type loginReq struct {
	Username   string `json:"username"    binding:"required"`
	Password   string `json:"password"    binding:"required"`
	TelegramID int64  `json:"telegram_id"`
}

func (r loginReq) validate() error { return nil }

func (r loginReq) toInput(client account.ClientInfo) account.LoginInput {
	return account.LoginInput{
		Username:   r.Username,
		Password:   r.Password,
		TelegramID: r.TelegramID,
		Client:     client,
	}
}

type logoutReq struct {
	Token string `json:"token" binding:"required"`
}

func (r logoutReq) validate() error { return nil }

// --- Response DTOs ---

type userResp struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name"`
	TelegramID  int64     `json:"telegram_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type authResp struct {
	User      userResp  `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *handler) newAuthResp(out account.AuthOutput) authResp {
	return authResp{
		User: userResp{
			ID:          out.User.ID,
			Username:    out.User.Username,
			Email:       out.User.Email,
			DisplayName: out.User.DisplayName,
			TelegramID:  out.User.TelegramID,
			CreatedAt:   out.User.CreatedAt,
		},
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
	}
}
