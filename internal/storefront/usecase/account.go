package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"

	"marketplace-bot/internal/model"
	"marketplace-bot/internal/notification/formatter"
	"marketplace-bot/internal/storefront"
)

const maxOrdersShown = 10

var depositCoins = []string{"BTC", "ETH", "USDT", "BNB", "USDC"}

// Orders lists the linked user's most recent orders.
func (uc *implUseCase) Orders(ctx context.Context, req storefront.Request) error {
	user, ok, err := uc.linkedUser(ctx, req)
	if !ok {
		return err
	}

	orders, err := uc.orders.ListOrders(ctx, user.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.storefront.usecase.Orders.ListOrders: %v", err)
		return uc.reply(ctx, req.ChatID, "⚠️ Could not load your orders. Please try again later.", nil)
	}
	if len(orders) == 0 {
		return uc.reply(ctx, req.ChatID, "📦 You have no orders yet. Send /browse to find something you like.", nil)
	}

	var b strings.Builder
	b.WriteString("📦 <b>Your Orders</b>\n")
	for i, o := range orders {
		if i == maxOrdersShown {
			fmt.Fprintf(&b, "\n…and %d more on the website.", len(orders)-maxOrdersShown)
			break
		}
		fmt.Fprintf(&b, "\n%s <b>#%s</b> %s\n    $%s · %s · %s",
			orderIcon(o.Status), html.EscapeString(o.ID), html.EscapeString(o.ProductName),
			o.Amount.StringFixed(2), o.Status, o.CreatedAt.UTC().Format("2006-01-02"))
	}
	return uc.reply(ctx, req.ChatID, b.String(), nil)
}

// Wallet shows the USD balance with deposit/withdraw actions.
func (uc *implUseCase) Wallet(ctx context.Context, req storefront.Request) error {
	user, ok, err := uc.linkedUser(ctx, req)
	if !ok {
		return err
	}

	balance, err := uc.balances.GetBalance(ctx, user.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.storefront.usecase.Wallet.GetBalance: %v", err)
		return uc.reply(ctx, req.ChatID, "⚠️ Could not load your balance. Please try again later.", nil)
	}

	text := fmt.Sprintf("💰 <b>Your Wallet</b>\n\nBalance: <b>$%s</b>\n\nTop up with crypto or withdraw your funds.", balance.StringFixed(2))
	return uc.reply(ctx, req.ChatID, text, walletKeyboard())
}

func (uc *implUseCase) WalletDeposit(ctx context.Context, req storefront.Request) error {
	coins := make([]string, len(depositCoins))
	for i, c := range depositCoins {
		coins[i] = formatter.CoinSymbol(c) + " " + c
	}
	text := "💳 <b>Deposit</b>\n\n" +
		"Open the deposit page to get a payment address. Supported coins:\n" +
		strings.Join(coins, "\n") +
		"\n\nYou will get a message here once the deposit is confirmed."
	return uc.reply(ctx, req.ChatID, text, uc.linkKeyboard("💳 Open deposit page", "wallet/deposit"))
}

func (uc *implUseCase) WalletWithdraw(ctx context.Context, req storefront.Request) error {
	text := "💸 <b>Withdraw</b>\n\n" +
		"Withdrawals are requested on the website. Enter the amount and your payout address; " +
		"requests are reviewed before they are sent."
	return uc.reply(ctx, req.ChatID, text, uc.linkKeyboard("💸 Open withdraw page", "wallet/withdraw"))
}

// linkedUser resolves the sender's account. When it returns ok=false the caller is
// done: either a link prompt was sent or err is set.
func (uc *implUseCase) linkedUser(ctx context.Context, req storefront.Request) (model.User, bool, error) {
	user, found, err := uc.users.CurrentUser(ctx, req.SenderID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.storefront.usecase.linkedUser: %v", err)
		return model.User{}, false, uc.reply(ctx, req.ChatID, "⚠️ Something went wrong. Please try again later.", nil)
	}
	if !found {
		text := "🔐 Your Telegram account is not linked yet.\n\nLog in on the website to see your orders and wallet here."
		return model.User{}, false, uc.reply(ctx, req.ChatID, text, uc.authKeyboard(storefront.AuthParamLogin, req.SenderID))
	}
	return user, true, nil
}

func orderIcon(status model.OrderStatus) string {
	switch status {
	case model.OrderStatusNew:
		return "🛒"
	case model.OrderStatusCompleted:
		return "✅"
	default:
		return "🔄"
	}
}
