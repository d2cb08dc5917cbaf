package wallet

import (
	"github.com/shopspring/decimal"

	"marketplace-bot/internal/model"
)

// SupportedCoins are the coins a deposit can be made in.
var SupportedCoins = []string{"BTC", "ETH", "USDT", "BNB", "USDC"}

type CreateDepositInput struct {
	UserID    string
	Coin      string
	Amount    decimal.Decimal
	AmountUSD decimal.Decimal
}

type SubmitInput struct {
	ID     string
	TxHash string
}

type ConfirmInput struct {
	ID     string
	TxHash string
}

type FailInput struct {
	ID     string
	Reason string
}

type ListInput struct {
	UserID string
	Status model.DepositStatus
}

type ListOutput struct {
	Deposits []model.Deposit
	Total    int
}

type BalanceOutput struct {
	UserID  string
	Balance decimal.Decimal
}
