package router

import "marketplace-bot/internal/storefront"

// Log prefixes
const (
	LogPrefixDispatch = "internal.storefront.router.Dispatch"
)

// Reply keyboard labels. The keyboard sends the label text back as a message.
const (
	LabelBrowse = "🛍️ Browse Products"
	LabelOrders = "📦 My Orders"
	LabelWallet = "💰 Wallet"
	LabelHelp   = "❓ Help"
)

const (
	CommandStart  = "/start"
	CommandBrowse = "/browse"
	CommandOrders = "/orders"
	CommandWallet = "/wallet"
	CommandHelp   = "/help"
)

// commandTable matches the whole normalized text.
var commandTable = map[string]storefront.Kind{
	CommandStart:  storefront.KindStart,
	CommandBrowse: storefront.KindBrowse,
	LabelBrowse:   storefront.KindBrowse,
	CommandOrders: storefront.KindOrders,
	LabelOrders:   storefront.KindOrders,
	CommandWallet: storefront.KindWallet,
	LabelWallet:   storefront.KindWallet,
	CommandHelp:   storefront.KindHelp,
	LabelHelp:     storefront.KindHelp,
}

type keywordRule struct {
	words []string
	kind  storefront.Kind
}

// keywordRules are scanned in order; the first rule with a matching substring wins.
var keywordRules = []keywordRule{
	{words: []string{"help"}, kind: storefront.KindHelp},
	{words: []string{"product", "buy"}, kind: storefront.KindBrowse},
	{words: []string{"order", "purchase"}, kind: storefront.KindOrders},
	{words: []string{"money", "wallet", "balance"}, kind: storefront.KindWallet},
}

// Callback data is "<prefix>_<suffix>" with an optional "_<page>" for browsing.
const (
	callbackSeparator = "_"

	PrefixBrowse   = "browse"
	PrefixWallet   = "wallet"
	SuffixNext     = "next"
	SuffixPrev     = "prev"
	SuffixDeposit  = "deposit"
	SuffixWithdraw = "withdraw"
)

var callbackTable = map[string]map[string]storefront.Kind{
	PrefixBrowse: {
		SuffixNext: storefront.KindBrowseNext,
		SuffixPrev: storefront.KindBrowsePrev,
	},
	PrefixWallet: {
		SuffixDeposit:  storefront.KindWalletDeposit,
		SuffixWithdraw: storefront.KindWalletWithdraw,
	},
}
