package usecase

import (
	"fmt"
	"net/url"
	"strconv"

	"marketplace-bot/internal/model"
	"marketplace-bot/internal/storefront"
	"marketplace-bot/internal/storefront/router"
	pkgTelegram "marketplace-bot/pkg/telegram"
)

// mainMenu is the persistent 2x2 reply keyboard. Its labels route back through the command table.
func mainMenu() pkgTelegram.ReplyKeyboardMarkup {
	return pkgTelegram.ReplyKeyboardMarkup{
		Keyboard: [][]pkgTelegram.KeyboardButton{
			{{Text: router.LabelBrowse}, {Text: router.LabelOrders}},
			{{Text: router.LabelWallet}, {Text: router.LabelHelp}},
		},
		ResizeKeyboard: true,
		IsPersistent:   true,
	}
}

func (uc *implUseCase) authKeyboard(param string, telegramID int64) pkgTelegram.InlineKeyboardMarkup {
	label := "🔑 Log in"
	if param == storefront.AuthParamRegister {
		label = "📝 Create account"
	}
	link := uc.link(param, url.Values{"telegram_id": {strconv.FormatInt(telegramID, 10)}})
	return pkgTelegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]pkgTelegram.InlineKeyboardButton{{{Text: label, URL: link}}},
	}
}

// productKeyboard carries the shown page in the pagination data and one buy-now deep link per product.
func (uc *implUseCase) productKeyboard(products []model.Product, page int, telegramID int64) pkgTelegram.InlineKeyboardMarkup {
	rows := [][]pkgTelegram.InlineKeyboardButton{{
		{Text: "◀️ Prev", CallbackData: router.BrowseCallbackData(router.SuffixPrev, page)},
		{Text: "Next ▶️", CallbackData: router.BrowseCallbackData(router.SuffixNext, page)},
	}}
	for _, p := range products {
		rows = append(rows, []pkgTelegram.InlineKeyboardButton{{Text: buyLabel(p, len(products) > 1), URL: uc.buyLink(p, telegramID)}})
	}
	return pkgTelegram.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func buyLabel(p model.Product, named bool) string {
	if named {
		return fmt.Sprintf("🛒 Buy %s ($%s)", p.Name, p.Price.StringFixed(2))
	}
	return fmt.Sprintf("🛒 Buy now ($%s)", p.Price.StringFixed(2))
}

func (uc *implUseCase) buyLink(p model.Product, telegramID int64) string {
	return uc.link("products/"+url.PathEscape(p.ID), url.Values{
		"price":       {p.Price.StringFixed(2)},
		"telegram_id": {strconv.FormatInt(telegramID, 10)},
	})
}

func walletKeyboard() pkgTelegram.InlineKeyboardMarkup {
	return pkgTelegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]pkgTelegram.InlineKeyboardButton{{
			{Text: "💳 Deposit", CallbackData: router.WalletCallbackData(router.SuffixDeposit)},
			{Text: "💸 Withdraw", CallbackData: router.WalletCallbackData(router.SuffixWithdraw)},
		}},
	}
}

func (uc *implUseCase) linkKeyboard(label, path string) pkgTelegram.InlineKeyboardMarkup {
	return pkgTelegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]pkgTelegram.InlineKeyboardButton{{{Text: label, URL: uc.link(path, nil)}}},
	}
}

func (uc *implUseCase) link(path string, q url.Values) string {
	s := uc.opts.SiteURL + "/" + path
	if len(q) > 0 {
		s += "?" + q.Encode()
	}
	return s
}
