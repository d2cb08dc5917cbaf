package formatter

import (
	"strings"

	"marketplace-bot/internal/model"
)

const (
	FallbackCoinSymbol   = "💰"
	FallbackStatusSymbol = "❓"
)

var coinSymbols = map[string]string{
	"BTC":  "₿",
	"ETH":  "Ξ",
	"USDT": "₮",
	"BNB":  "🔸",
	"USDC": "💵",
}

var statusSymbols = map[model.DepositStatus]string{
	model.DepositStatusPending:   "⏳",
	model.DepositStatusSubmitted: "📤",
	model.DepositStatusConfirmed: "✅",
	model.DepositStatusExpired:   "⌛",
	model.DepositStatusFailed:    "❌",
}

// CoinSymbol returns the glyph for a coin code, case-insensitive.
func CoinSymbol(coin string) string {
	if s, ok := coinSymbols[normalizeCoin(coin)]; ok {
		return s
	}
	return FallbackCoinSymbol
}

// StatusSymbol returns the glyph for a deposit status.
func StatusSymbol(status model.DepositStatus) string {
	if s, ok := statusSymbols[status]; ok {
		return s
	}
	return FallbackStatusSymbol
}

func normalizeCoin(coin string) string {
	return strings.ToUpper(strings.TrimSpace(coin))
}
