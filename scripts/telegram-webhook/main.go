// scripts/telegram-webhook/main.go
//
// Inspect or change the bot's webhook registration from a shell, using the
// same config.yaml and env overrides as the API.
//
// Usage:
//   go run scripts/telegram-webhook/main.go info
//   go run scripts/telegram-webhook/main.go set https://bot.example.com/webhook/telegram
//   go run scripts/telegram-webhook/main.go delete

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"marketplace-bot/config"
	"marketplace-bot/pkg/telegram"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s info|set <url>|delete", os.Args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Telegram.BotToken == "" {
		log.Fatal("telegram.bot_token is empty (set TELEGRAM_BOT_TOKEN)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bot := telegram.NewBot(cfg.Telegram.BotToken)

	switch os.Args[1] {
	case "info":
		info, err := bot.GetWebhookInfo(ctx)
		if err != nil {
			log.Fatalf("getWebhookInfo: %v", err)
		}
		fmt.Printf("url:             %s\n", info.URL)
		fmt.Printf("pending updates: %d\n", info.PendingUpdateCount)
		if info.LastErrorMessage != "" {
			fmt.Printf("last error:      %s (%s)\n", info.LastErrorMessage, time.Unix(info.LastErrorDate, 0).UTC().Format(time.RFC3339))
		}

	case "set":
		url := cfg.Telegram.WebhookURL
		if len(os.Args) > 2 {
			url = os.Args[2]
		}
		if url == "" {
			log.Fatal("no URL given and telegram.webhook_url is empty")
		}
		err := bot.SetWebhook(ctx, telegram.SetWebhookRequest{
			URL:                url,
			AllowedUpdates:     []string{telegram.UpdateKindMessage, telegram.UpdateKindCallbackQuery},
			DropPendingUpdates: cfg.Telegram.DropPendingUpdates,
			SecretToken:        cfg.Telegram.WebhookSecret,
		})
		if err != nil {
			log.Fatalf("setWebhook: %v", err)
		}
		fmt.Println("Webhook set to", url)

	case "delete":
		if err := bot.DeleteWebhook(ctx, cfg.Telegram.DropPendingUpdates); err != nil {
			log.Fatalf("deleteWebhook: %v", err)
		}
		fmt.Println("Webhook deleted")

	default:
		log.Fatalf("unknown command %q", os.Args[1])
	}
}
