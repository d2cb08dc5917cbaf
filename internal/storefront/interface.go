package storefront

import (
	"context"

	"github.com/shopspring/decimal"

	"marketplace-bot/internal/model"
	pkgTelegram "marketplace-bot/pkg/telegram"
)

// HandlerFunc handles one routed update.
type HandlerFunc func(ctx context.Context, req Request) error

// Registry maps each Kind to its handler.
type Registry map[Kind]HandlerFunc

// Router classifies updates and dispatches them to exactly one handler.
type Router interface {
	Classify(u Update) (Route, bool)
	Dispatch(ctx context.Context, u Update) error
}

// Acknowledger answers callback queries so the client stops its loading spinner.
type Acknowledger interface {
	AnswerCallback(ctx context.Context, callbackID string) error
}

//go:generate mockery --name UseCase
type UseCase interface {
	Acknowledger

	Start(ctx context.Context, req Request) error
	AuthPrompt(ctx context.Context, req Request) error
	Browse(ctx context.Context, req Request) error
	Orders(ctx context.Context, req Request) error
	Wallet(ctx context.Context, req Request) error
	WalletDeposit(ctx context.Context, req Request) error
	WalletWithdraw(ctx context.Context, req Request) error
	Help(ctx context.Context, req Request) error
	Greeting(ctx context.Context, req Request) error

	Registry() Registry
}

// Messenger is the subset of the bot client the storefront talks through.
type Messenger interface {
	Send(ctx context.Context, req pkgTelegram.SendMessageRequest) (*pkgTelegram.Message, error)
	AnswerCallbackQuery(ctx context.Context, req pkgTelegram.AnswerCallbackQueryRequest) error
}

// Updater pulls updates for polling mode.
type Updater interface {
	GetUpdates(ctx context.Context, req pkgTelegram.GetUpdatesRequest) ([]pkgTelegram.Update, error)
}

// UserStore resolves the marketplace user linked to a Telegram account.
// A missing link is reported as found=false, not as an error.
type UserStore interface {
	CurrentUser(ctx context.Context, telegramID int64) (user model.User, found bool, err error)
}

type OrderStore interface {
	ListOrders(ctx context.Context, userID string) ([]model.Order, error)
}

type BalanceStore interface {
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
}

type ProductCatalog interface {
	Page(ctx context.Context, page, size int) (ProductPage, error)
}
