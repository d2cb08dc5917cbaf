package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"marketplace-bot/config"
	_ "marketplace-bot/docs" // Swagger docs
	accountMemory "marketplace-bot/internal/account/repository/memory"
	accountUsecase "marketplace-bot/internal/account/usecase"
	"marketplace-bot/internal/httpserver"
	"marketplace-bot/internal/notification"
	"marketplace-bot/internal/notification/formatter"
	settingsMemory "marketplace-bot/internal/notification/repository/memory"
	"marketplace-bot/internal/notification/sender"
	notificationUsecase "marketplace-bot/internal/notification/usecase"
	orderMemory "marketplace-bot/internal/order/repository/memory"
	orderUsecase "marketplace-bot/internal/order/usecase"
	"marketplace-bot/internal/scheduler"
	"marketplace-bot/internal/storefront"
	"marketplace-bot/internal/storefront/delivery/polling"
	catalogMemory "marketplace-bot/internal/storefront/repository/memory"
	storefrontRouter "marketplace-bot/internal/storefront/router"
	storefrontUsecase "marketplace-bot/internal/storefront/usecase"
	walletMemory "marketplace-bot/internal/wallet/repository/memory"
	walletUsecase "marketplace-bot/internal/wallet/usecase"
	"marketplace-bot/pkg/log"
)

// @title       Marketplace Bot API
// @description Telegram storefront bot, operator notifications and the marketplace flows that trigger them.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting marketplace bot...")
	logger.Infof(ctx, "Environment: %s, Telegram mode: %s", cfg.Environment.Name, cfg.Telegram.Mode)

	loc := cfg.Report.Location()

	// 3. Stores (in memory, seeded with the demo catalog)
	users := accountMemory.New()
	orders := orderMemory.New()
	wallets := walletMemory.New()
	catalog := catalogMemory.NewCatalog(catalogMemory.DefaultProducts())
	settings := settingsMemory.NewSettingsStore(notification.DeliveryConfig{
		BotToken:      cfg.Telegram.BotToken,
		DestinationID: cfg.Telegram.ChatID,
		Enabled:       cfg.Telegram.NotificationsEnabled,
	})

	// 4. Notifications
	telegramClient := sender.New(logger, sender.Options{
		Timeout:            cfg.Telegram.RequestTimeout,
		DropPendingUpdates: cfg.Telegram.DropPendingUpdates,
		SecretToken:        cfg.Telegram.WebhookSecret,
	})
	notificationUC := notificationUsecase.New(logger,
		settings,
		formatter.New(loc),
		telegramClient,
		wallets,
		loc,
	)

	// 5. Marketplace flows
	bonus := decimal.Zero
	if cfg.Account.WelcomeBonus != "" {
		bonus = decimal.RequireFromString(cfg.Account.WelcomeBonus)
	}
	accountUC := accountUsecase.New(logger, users, notificationUC, wallets, accountUsecase.Options{
		SessionTTL:   cfg.Account.SessionTTL,
		WelcomeBonus: bonus,
	})
	orderUC := orderUsecase.New(logger, orders, catalog, users, notificationUC)
	walletUC := walletUsecase.New(logger, wallets, users, notificationUC)

	// 6. Storefront bot. The token is read from the delivery settings on every
	// call, so the bot follows PUT /api/v1/admin/settings/telegram.
	messenger := telegramClient.Messenger(settings, cfg.Telegram.PollTimeout)
	storefrontUC := storefrontUsecase.New(logger, messenger, users, orders, wallets, catalog, storefrontUsecase.Options{
		SiteURL:  cfg.Storefront.SiteURL,
		PageSize: cfg.Storefront.PageSize,
	})
	commandRouter := storefrontRouter.New(logger, storefrontUC.Registry(), storefrontUC)
	if cfg.Telegram.BotToken == "" {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN is missing: the storefront bot stays idle until a token is saved in the settings")
	}

	var webhookRouter storefront.Router
	switch cfg.Telegram.Mode {
	case config.TelegramModePolling:
		notificationUC.SetWebhookServed(false)
		startPolling(ctx, logger, messenger, commandRouter, cfg)
	default:
		webhookRouter = commandRouter
		if cfg.Telegram.BotToken != "" {
			registerWebhook(ctx, logger, notificationUC, cfg)
		}
	}

	// 7. Scheduled jobs
	jobs, err := scheduler.New(logger, loc)
	if err != nil {
		logger.Error(ctx, "Failed to create scheduler: ", err)
		return
	}
	if _, err := jobs.AddJob(scheduler.JobDailyReport, cfg.Report.Cron, scheduler.DailyReportJob(logger, notificationUC)); err != nil {
		logger.Error(ctx, "Failed to schedule daily report: ", err)
		return
	}
	if _, err := jobs.AddJob(scheduler.JobExpireDeposit, cfg.Report.ExpiryCron, scheduler.ExpireDepositsJob(logger, walletUC, cfg.Report.DepositExpiry)); err != nil {
		logger.Error(ctx, "Failed to schedule deposit expiry: ", err)
		return
	}
	jobs.Start()
	defer func() {
		if err := jobs.Stop(); err != nil {
			logger.Warnf(context.Background(), "Scheduler stop: %v", err)
		}
	}()

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		InternalKey:      cfg.Admin.InternalKey,
		StorefrontRouter: webhookRouter,
		WebhookSecret:    cfg.Telegram.WebhookSecret,
		RateLimitPerMin:  cfg.Webhook.RateLimitPerMin,
		AccountUC:        accountUC,
		OrderUC:          orderUC,
		WalletUC:         walletUC,
		NotificationUC:   notificationUC,
		ReportLocation:   loc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this service. Failures are logged; the
// operator can retry through the admin webhook endpoint.
func registerWebhook(ctx context.Context, logger log.Logger, uc notification.UseCase, cfg *config.Config) {
	url, err := resolveWebhookURL(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.TunnelAPI)
	if err != nil {
		logger.Warnf(ctx, "Could not detect webhook URL: %v", err)
		return
	}
	if url == "" {
		logger.Warn(ctx, "telegram.webhook_url is empty: register it through PUT /api/v1/admin/telegram/webhook")
		return
	}

	res := uc.SetWebhook(ctx, url)
	if !res.Success {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %s", res.Error)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", url)
}

// startPolling runs the long poll in the background. A webhook still registered
// for the bot stops the poller; the HTTP API keeps serving so the operator can
// delete it through the admin endpoint and restart.
func startPolling(ctx context.Context, logger log.Logger, updater storefront.Updater, router storefront.Router, cfg *config.Config) {
	poller := polling.New(logger, updater, router, polling.Options{LongPollTimeout: cfg.Telegram.PollTimeout})
	go func() {
		if err := poller.Run(ctx); err != nil {
			if errors.Is(err, storefront.ErrWebhookActive) {
				logger.Errorf(ctx, "Polling stopped: a webhook is registered for this bot. Delete it or set telegram.mode=webhook")
				return
			}
			logger.Errorf(ctx, "Polling stopped: %v", err)
		}
	}()
	logger.Info(ctx, "Storefront polling started")
}
