package storefront

import (
	"marketplace-bot/internal/model"
	pkgTelegram "marketplace-bot/pkg/telegram"
)

// Update is one inbound event: a TextMessage or a CallbackQuery.
type Update interface {
	isUpdate()
}

// TextMessage is a plain chat message, including reply-keyboard label presses.
type TextMessage struct {
	ChatID      int64
	SenderID    int64
	DisplayName string
	Username    string
	Text        string
}

// CallbackQuery is an inline button press. Data is the opaque string set on the button.
type CallbackQuery struct {
	ID          string
	ChatID      int64
	SenderID    int64
	DisplayName string
	Username    string
	Data        string
}

func (TextMessage) isUpdate()   {}
func (CallbackQuery) isUpdate() {}

// NewUpdate converts a provider update. Updates that are neither a text message
// nor a callback query report false.
func NewUpdate(u pkgTelegram.Update) (Update, bool) {
	switch {
	case u.CallbackQuery != nil:
		cq := u.CallbackQuery
		out := CallbackQuery{
			ID:          cq.ID,
			Data:        cq.Data,
			DisplayName: cq.From.DisplayName(),
		}
		if cq.From != nil {
			out.SenderID = cq.From.ID
			out.Username = cq.From.Username
		}
		if cq.Message != nil && cq.Message.Chat != nil {
			out.ChatID = cq.Message.Chat.ID
		} else {
			out.ChatID = out.SenderID
		}
		return out, true

	case u.Message != nil && u.Message.Text != "":
		m := u.Message
		out := TextMessage{
			Text:        m.Text,
			DisplayName: m.From.DisplayName(),
		}
		if m.From != nil {
			out.SenderID = m.From.ID
			out.Username = m.From.Username
		}
		if m.Chat != nil {
			out.ChatID = m.Chat.ID
		} else {
			out.ChatID = out.SenderID
		}
		return out, true
	}
	return nil, false
}

// Kind names the handler a route goes to.
type Kind string

const (
	KindStart          Kind = "start"
	KindAuthPrompt     Kind = "auth_prompt"
	KindBrowse         Kind = "browse"
	KindBrowseNext     Kind = "browse_next"
	KindBrowsePrev     Kind = "browse_prev"
	KindOrders         Kind = "orders"
	KindWallet         Kind = "wallet"
	KindWalletDeposit  Kind = "wallet_deposit"
	KindWalletWithdraw Kind = "wallet_withdraw"
	KindHelp           Kind = "help"
	KindGreeting       Kind = "greeting"
)

// Auth prompt parameters accepted after /start.
const (
	AuthParamLogin    = "login"
	AuthParamRegister = "register"
)

// Route is the outcome of classifying an update.
type Route struct {
	Kind  Kind
	Param string
	Page  int
}

// Request is what a handler receives: the route plus who and where to answer.
type Request struct {
	Route       Route
	ChatID      int64
	SenderID    int64
	DisplayName string
	Username    string
	Text        string
}

// ProductPage is one page of the catalog.
type ProductPage struct {
	Products   []model.Product
	Page       int
	TotalPages int
}
