package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositStatus is the lifecycle state of a crypto deposit.
type DepositStatus string

const (
	DepositStatusPending   DepositStatus = "pending"
	DepositStatusSubmitted DepositStatus = "submitted"
	DepositStatusConfirmed DepositStatus = "confirmed"
	DepositStatusExpired   DepositStatus = "expired"
	DepositStatusFailed    DepositStatus = "failed"
)

// DepositStatuses lists every known status in reporting order.
var DepositStatuses = []DepositStatus{
	DepositStatusPending,
	DepositStatusSubmitted,
	DepositStatusConfirmed,
	DepositStatusExpired,
	DepositStatusFailed,
}

// Deposit is a crypto top-up of a user's USD balance.
// Amount is in coin units, AmountUSD is the quoted USD value.
type Deposit struct {
	ID            string
	UserID        string
	Username      string
	Coin          string
	Amount        decimal.Decimal
	AmountUSD     decimal.Decimal
	Status        DepositStatus
	Address       string
	TxHash        string
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
