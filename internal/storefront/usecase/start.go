package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"

	"marketplace-bot/internal/storefront"
)

func (uc *implUseCase) Start(ctx context.Context, req storefront.Request) error {
	text := fmt.Sprintf("👋 <b>Welcome to the Marketplace, %s!</b>\n\n"+
		"Browse products, track your orders and manage your wallet right here.\n"+
		"Use the menu below to get started.", name(req))
	return uc.reply(ctx, req.ChatID, text, mainMenu())
}

// AuthPrompt answers a /start login|register deep link with a button to the web flow.
func (uc *implUseCase) AuthPrompt(ctx context.Context, req storefront.Request) error {
	action := "log in to your account"
	if req.Route.Param == storefront.AuthParamRegister {
		action = "create your account"
	}
	text := fmt.Sprintf("🔐 Hi %s!\n\nTap the button below to %s. "+
		"Your Telegram account will be linked so you get order and wallet updates here.", name(req), action)
	return uc.reply(ctx, req.ChatID, text, uc.authKeyboard(req.Route.Param, req.SenderID))
}

func (uc *implUseCase) Help(ctx context.Context, req storefront.Request) error {
	text := strings.Join([]string{
		"❓ <b>How to use this bot</b>",
		"",
		"/browse - browse products",
		"/orders - your recent orders",
		"/wallet - balance, deposits and withdrawals",
		"/help - this message",
		"",
		"You can also just type what you need, for example \"show my orders\".",
	}, "\n")
	return uc.reply(ctx, req.ChatID, text, mainMenu())
}

func (uc *implUseCase) Greeting(ctx context.Context, req storefront.Request) error {
	text := fmt.Sprintf("👋 Hi %s! I can show you products, orders and your wallet. "+
		"Pick an option from the menu or send /help.", name(req))
	return uc.reply(ctx, req.ChatID, text, mainMenu())
}

func name(req storefront.Request) string {
	if n := strings.TrimSpace(req.DisplayName); n != "" {
		return html.EscapeString(n)
	}
	return "there"
}
