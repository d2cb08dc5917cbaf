package router

import (
	"strconv"
	"strings"

	"marketplace-bot/internal/storefront"
)

// Classify is the pure routing decision.
func (r *CommandRouter) Classify(u storefront.Update) (storefront.Route, bool) {
	return Classify(u)
}

// Classify maps an update to a route. Text always routes somewhere (greeting at
// worst); callback data that does not parse reports false.
func Classify(u storefront.Update) (storefront.Route, bool) {
	switch v := u.(type) {
	case storefront.TextMessage:
		return classifyText(v.Text), true
	case storefront.CallbackQuery:
		return classifyCallback(v.Data)
	default:
		return storefront.Route{}, false
	}
}

func classifyText(raw string) storefront.Route {
	text := normalize(raw)
	fields := strings.Fields(text)

	if len(fields) > 0 && fields[0] == CommandStart {
		if len(fields) > 1 && (fields[1] == storefront.AuthParamLogin || fields[1] == storefront.AuthParamRegister) {
			return storefront.Route{Kind: storefront.KindAuthPrompt, Param: fields[1]}
		}
		return storefront.Route{Kind: storefront.KindStart}
	}

	if kind, ok := commandTable[text]; ok {
		return storefront.Route{Kind: kind}
	}

	lower := strings.ToLower(text)
	for _, rule := range keywordRules {
		for _, w := range rule.words {
			if strings.Contains(lower, w) {
				return storefront.Route{Kind: rule.kind}
			}
		}
	}
	return storefront.Route{Kind: storefront.KindGreeting}
}

// normalize trims the text and strips a "@botname" suffix from a leading command.
func normalize(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "/") {
		return text
	}

	cmd, rest, hasRest := strings.Cut(text, " ")
	if at := strings.IndexByte(cmd, '@'); at > 0 {
		cmd = cmd[:at]
	}
	cmd = strings.ToLower(cmd)
	if !hasRest {
		return cmd
	}
	return cmd + " " + strings.TrimSpace(rest)
}

func classifyCallback(data string) (storefront.Route, bool) {
	parts := strings.Split(data, callbackSeparator)
	if len(parts) < 2 || len(parts) > 3 {
		return storefront.Route{}, false
	}

	kind, ok := callbackTable[parts[0]][parts[1]]
	if !ok {
		return storefront.Route{}, false
	}

	route := storefront.Route{Kind: kind}
	if len(parts) == 3 {
		if parts[0] != PrefixBrowse {
			return storefront.Route{}, false
		}
		page, err := strconv.Atoi(parts[2])
		if err != nil || page < 0 {
			return storefront.Route{}, false
		}
		route.Page = page
	}
	return route, true
}

// BrowseCallbackData builds the data string for a pagination button.
func BrowseCallbackData(suffix string, page int) string {
	return PrefixBrowse + callbackSeparator + suffix + callbackSeparator + strconv.Itoa(page)
}

// WalletCallbackData builds the data string for a wallet action button.
func WalletCallbackData(suffix string) string {
	return PrefixWallet + callbackSeparator + suffix
}
