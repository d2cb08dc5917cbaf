package http

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"marketplace-bot/internal/model"
	"marketplace-bot/internal/wallet"
)

// --- Request DTOs ---

// createDepositReq accepts amounts as JSON strings or numbers.
type createDepositReq struct {
	UserID    string          `json:"user_id"    binding:"required"`
	Coin      string          `json:"coin"       binding:"required"`
	Amount    decimal.Decimal `json:"amount"     swaggertype:"string" example:"0.015"`
	AmountUSD decimal.Decimal `json:"amount_usd" swaggertype:"string" example:"950.00"`
}

func (r createDepositReq) toInput() wallet.CreateDepositInput {
	return wallet.CreateDepositInput{
		UserID:    r.UserID,
		Coin:      r.Coin,
		Amount:    r.Amount,
		AmountUSD: r.AmountUSD,
	}
}

type txHashReq struct {
	TxHash string `json:"tx_hash"`
}

type failReq struct {
	Reason string `json:"reason"`
}

type listReq struct {
	UserID string `form:"user_id"`
	Status string `form:"status"`
}

func (r listReq) validate() error {
	if r.Status == "" || slices.Contains(model.DepositStatuses, model.DepositStatus(r.Status)) {
		return nil
	}
	return errInvalidStatus
}

func (r listReq) toInput() wallet.ListInput {
	return wallet.ListInput{UserID: r.UserID, Status: model.DepositStatus(r.Status)}
}

// --- Response DTOs ---

type depositResp struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Username      string    `json:"username"`
	Coin          string    `json:"coin"`
	Amount        string    `json:"amount"`
	AmountUSD     string    `json:"amount_usd"`
	Status        string    `json:"status"`
	Address       string    `json:"address"`
	TxHash        string    `json:"tx_hash,omitempty"`
	FailureReason string    `json:"failure_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type listResp struct {
	Deposits []depositResp `json:"deposits"`
	Total    int           `json:"total"`
}

type balanceResp struct {
	UserID  string `json:"user_id"`
	Balance string `json:"balance_usd"`
}

func (h *handler) newDepositResp(d model.Deposit) depositResp {
	return depositResp{
		ID:            d.ID,
		UserID:        d.UserID,
		Username:      d.Username,
		Coin:          d.Coin,
		Amount:        d.Amount.String(),
		AmountUSD:     d.AmountUSD.StringFixed(2),
		Status:        string(d.Status),
		Address:       d.Address,
		TxHash:        d.TxHash,
		FailureReason: d.FailureReason,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (h *handler) newListResp(out wallet.ListOutput) listResp {
	resp := listResp{Deposits: make([]depositResp, 0, len(out.Deposits)), Total: out.Total}
	for _, d := range out.Deposits {
		resp.Deposits = append(resp.Deposits, h.newDepositResp(d))
	}
	return resp
}

func (h *handler) newBalanceResp(out wallet.BalanceOutput) balanceResp {
	return balanceResp{UserID: out.UserID, Balance: out.Balance.StringFixed(2)}
}
