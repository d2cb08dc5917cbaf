package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"marketplace-bot/internal/model"
	"marketplace-bot/internal/wallet/repository"
)

func TestDepositLifecycle(t *testing.T) {
	ctx := context.Background()
	r := New()

	d, err := r.CreateDeposit(ctx, repository.CreateDepositOptions{
		UserID: "u1", Coin: "ETH", Amount: decimal.RequireFromString("0.5"), AmountUSD: decimal.NewFromInt(1500),
	})
	if err != nil || d.Status != model.DepositStatusPending {
		t.Fatalf("unexpected create result: %+v, %v", d, err)
	}

	confirmed, err := r.UpdateDepositStatus(ctx, repository.UpdateDepositStatusOptions{
		ID: d.ID, From: []model.DepositStatus{model.DepositStatusPending}, To: model.DepositStatusConfirmed,
		TxHash: "0xabc", CreditUSD: true,
	})
	if err != nil || confirmed.TxHash != "0xabc" {
		t.Fatalf("unexpected confirm result: %+v, %v", confirmed, err)
	}
	if bal, _ := r.GetBalance(ctx, "u1"); !bal.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected balance 1500, got %s", bal)
	}

	if _, err := r.UpdateDepositStatus(ctx, repository.UpdateDepositStatusOptions{
		ID: d.ID, From: []model.DepositStatus{model.DepositStatusPending}, To: model.DepositStatusConfirmed, CreditUSD: true,
	}); !errors.Is(err, repository.ErrStatusConflict) {
		t.Errorf("expected ErrStatusConflict, got %v", err)
	}
	if bal, _ := r.GetBalance(ctx, "u1"); !bal.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("a rejected transition must not credit, got %s", bal)
	}
}

func TestListDepositsBetween(t *testing.T) {
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	r := New(
		model.Deposit{ID: "a", CreatedAt: day.Add(-time.Second)},
		model.Deposit{ID: "b", CreatedAt: day},
		model.Deposit{ID: "c", CreatedAt: day.Add(23 * time.Hour)},
		model.Deposit{ID: "d", CreatedAt: day.Add(24 * time.Hour)},
	)

	got, err := r.ListDepositsBetween(context.Background(), day, day.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
		t.Errorf("expected [b c], got %+v", got)
	}
}

func TestCredit(t *testing.T) {
	ctx := context.Background()
	r := New()
	if bal, _ := r.GetBalance(ctx, "nobody"); !bal.IsZero() {
		t.Errorf("expected zero balance, got %s", bal)
	}
	_ = r.Credit(ctx, "u1", decimal.NewFromInt(5))
	_ = r.Credit(ctx, "u1", decimal.RequireFromString("2.5"))
	if bal, _ := r.GetBalance(ctx, "u1"); !bal.Equal(decimal.RequireFromString("7.5")) {
		t.Errorf("expected 7.5, got %s", bal)
	}
}
