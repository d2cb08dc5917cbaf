package model

import "time"

// User is a marketplace account. TelegramID is zero until the account is linked to a chat.
type User struct {
	ID          string
	Username    string
	Email       string
	DisplayName string
	TelegramID  int64
	CreatedAt   time.Time
}
