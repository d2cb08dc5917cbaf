package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace-bot/internal/account"
	"marketplace-bot/internal/notification"
	"marketplace-bot/internal/order"
	"marketplace-bot/internal/storefront"
	"marketplace-bot/internal/wallet"
	"marketplace-bot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	srv         *http.Server
	l           log.Logger
	port        int
	mode        string
	environment string
	internalKey string

	// Storefront bot (webhook mode only)
	storefrontRouter storefront.Router
	webhookSecret    string
	rateLimitPerMin  int

	// Marketplace domains
	accountUC      account.UseCase
	orderUC        order.UseCase
	walletUC       wallet.UseCase
	notificationUC notification.UseCase
	reportLocation *time.Location
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	InternalKey string

	// StorefrontRouter is nil in polling mode; the webhook route is then not mounted.
	StorefrontRouter storefront.Router
	WebhookSecret    string
	RateLimitPerMin  int

	AccountUC      account.UseCase
	OrderUC        order.UseCase
	WalletUC       wallet.UseCase
	NotificationUC notification.UseCase
	ReportLocation *time.Location
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		internalKey:      cfg.InternalKey,
		storefrontRouter: cfg.StorefrontRouter,
		webhookSecret:    cfg.WebhookSecret,
		rateLimitPerMin:  cfg.RateLimitPerMin,
		accountUC:        cfg.AccountUC,
		orderUC:          cfg.OrderUC,
		walletUC:         cfg.WalletUC,
		notificationUC:   cfg.NotificationUC,
		reportLocation:   cfg.ReportLocation,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.accountUC == nil || srv.orderUC == nil || srv.walletUC == nil || srv.notificationUC == nil {
		return errors.New("all domain use cases are required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
