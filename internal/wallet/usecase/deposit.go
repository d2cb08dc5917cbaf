package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"marketplace-bot/internal/model"
	"marketplace-bot/internal/notification"
	"marketplace-bot/internal/wallet"
	repo "marketplace-bot/internal/wallet/repository"
)

const (
	reasonExpired = "Deposit expired before payment was received"
	reasonUnknown = "Unknown error"
)

// Create opens a pending deposit with a fresh address and notifies the operator chat.
func (uc *implUseCase) Create(ctx context.Context, input wallet.CreateDepositInput) (model.Deposit, error) {
	coin := strings.ToUpper(strings.TrimSpace(input.Coin))
	if !slices.Contains(wallet.SupportedCoins, coin) {
		return model.Deposit{}, fmt.Errorf("%w: %q", wallet.ErrUnsupportedCoin, input.Coin)
	}
	if !input.Amount.IsPositive() || input.AmountUSD.IsNegative() {
		return model.Deposit{}, wallet.ErrInvalidAmount
	}

	user, found, err := uc.customers.GetCustomer(ctx, input.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.wallet.usecase.Create.GetCustomer: %v", err)
		return model.Deposit{}, err
	}
	if !found {
		return model.Deposit{}, wallet.ErrCustomerNotFound
	}

	d, err := uc.repo.CreateDeposit(ctx, repo.CreateDepositOptions{
		UserID:    user.ID,
		Username:  user.Username,
		Coin:      coin,
		Amount:    input.Amount,
		AmountUSD: input.AmountUSD,
		Address:   depositAddress(coin),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.wallet.usecase.Create.CreateDeposit: %v", err)
		return model.Deposit{}, err
	}

	notification.Dispatch(ctx, uc.notifier, notification.DepositPendingEvent{Deposit: d, At: uc.now()})
	return d, nil
}

// Submit records that the user reports having paid. No notification is sent.
func (uc *implUseCase) Submit(ctx context.Context, input wallet.SubmitInput) (model.Deposit, error) {
	return uc.transition(ctx, repo.UpdateDepositStatusOptions{
		ID:     input.ID,
		From:   []model.DepositStatus{model.DepositStatusPending},
		To:     model.DepositStatusSubmitted,
		TxHash: strings.TrimSpace(input.TxHash),
	})
}

// Confirm settles the deposit and credits its USD value to the owner's balance.
func (uc *implUseCase) Confirm(ctx context.Context, input wallet.ConfirmInput) (model.Deposit, error) {
	txHash := strings.TrimSpace(input.TxHash)
	if txHash == "" {
		return model.Deposit{}, wallet.ErrTxHashRequired
	}

	d, err := uc.transition(ctx, repo.UpdateDepositStatusOptions{
		ID:        input.ID,
		From:      []model.DepositStatus{model.DepositStatusPending, model.DepositStatusSubmitted},
		To:        model.DepositStatusConfirmed,
		TxHash:    txHash,
		CreditUSD: true,
	})
	if err != nil {
		return model.Deposit{}, err
	}

	notification.Dispatch(ctx, uc.notifier, notification.DepositConfirmedEvent{Deposit: d, TxHash: txHash, At: uc.now()})
	return d, nil
}

func (uc *implUseCase) Fail(ctx context.Context, input wallet.FailInput) (model.Deposit, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		reason = reasonUnknown
	}

	d, err := uc.transition(ctx, repo.UpdateDepositStatusOptions{
		ID:            input.ID,
		From:          []model.DepositStatus{model.DepositStatusPending, model.DepositStatusSubmitted},
		To:            model.DepositStatusFailed,
		FailureReason: reason,
	})
	if err != nil {
		return model.Deposit{}, err
	}

	notification.Dispatch(ctx, uc.notifier, notification.DepositFailedEvent{Deposit: d, Reason: reason, At: uc.now()})
	return d, nil
}

// Expire closes a deposit that was never paid. It is reported as a failure.
func (uc *implUseCase) Expire(ctx context.Context, id string) (model.Deposit, error) {
	d, err := uc.transition(ctx, repo.UpdateDepositStatusOptions{
		ID:            id,
		From:          []model.DepositStatus{model.DepositStatusPending},
		To:            model.DepositStatusExpired,
		FailureReason: reasonExpired,
	})
	if err != nil {
		return model.Deposit{}, err
	}

	notification.Dispatch(ctx, uc.notifier, notification.DepositFailedEvent{Deposit: d, Reason: reasonExpired, At: uc.now()})
	return d, nil
}

// ExpireStale expires every pending deposit created more than olderThan ago and
// returns how many were expired.
func (uc *implUseCase) ExpireStale(ctx context.Context, olderThan time.Duration) (int, error) {
	stale, err := uc.repo.FindDeposits(ctx, repo.FindDepositsOptions{
		Status:        model.DepositStatusPending,
		CreatedBefore: uc.now().Add(-olderThan),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.wallet.usecase.ExpireStale.FindDeposits: %v", err)
		return 0, err
	}

	expired := 0
	for _, d := range stale {
		if _, err := uc.Expire(ctx, d.ID); err != nil {
			// Confirmed or failed between the scan and now.
			if errors.Is(err, wallet.ErrInvalidTransition) {
				continue
			}
			return expired, err
		}
		expired++
	}
	return expired, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Deposit, error) {
	d, err := uc.repo.GetDeposit(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Deposit{}, wallet.ErrDepositNotFound
		}
		uc.l.Errorf(ctx, "internal.wallet.usecase.Detail.GetDeposit: %v", err)
		return model.Deposit{}, err
	}
	return d, nil
}

func (uc *implUseCase) List(ctx context.Context, input wallet.ListInput) (wallet.ListOutput, error) {
	deposits, err := uc.repo.FindDeposits(ctx, repo.FindDepositsOptions{UserID: input.UserID, Status: input.Status})
	if err != nil {
		uc.l.Errorf(ctx, "internal.wallet.usecase.List.FindDeposits: %v", err)
		return wallet.ListOutput{}, err
	}
	return wallet.ListOutput{Deposits: deposits, Total: len(deposits)}, nil
}

func (uc *implUseCase) Balance(ctx context.Context, userID string) (wallet.BalanceOutput, error) {
	bal, err := uc.repo.GetBalance(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.wallet.usecase.Balance.GetBalance: %v", err)
		return wallet.BalanceOutput{}, err
	}
	return wallet.BalanceOutput{UserID: userID, Balance: bal}, nil
}

func (uc *implUseCase) transition(ctx context.Context, opt repo.UpdateDepositStatusOptions) (model.Deposit, error) {
	d, err := uc.repo.UpdateDepositStatus(ctx, opt)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return model.Deposit{}, wallet.ErrDepositNotFound
		case errors.Is(err, repo.ErrStatusConflict):
			return model.Deposit{}, fmt.Errorf("%w: %s -> %s", wallet.ErrInvalidTransition, opt.ID, opt.To)
		}
		uc.l.Errorf(ctx, "internal.wallet.usecase.transition: %v", err)
		return model.Deposit{}, err
	}
	return d, nil
}
