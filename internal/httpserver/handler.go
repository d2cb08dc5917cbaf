package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	accountHTTP "marketplace-bot/internal/account/delivery/http"
	"marketplace-bot/internal/middleware"
	"marketplace-bot/internal/model"
	notificationHTTP "marketplace-bot/internal/notification/delivery/http"
	orderHTTP "marketplace-bot/internal/order/delivery/http"
	storefrontHTTP "marketplace-bot/internal/storefront/delivery/http"
	storefrontTelegram "marketplace-bot/internal/storefront/delivery/telegram"
	walletHTTP "marketplace-bot/internal/wallet/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.internalKey)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
//
// Pattern to follow when adding a new domain:
//  1. Build the use case in cmd/api and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()

	if srv.storefrontRouter != nil {
		h := storefrontTelegram.New(srv.l, srv.storefrontRouter, storefrontTelegram.SecurityConfig{
			SecretToken:     srv.webhookSecret,
			RateLimitPerMin: srv.rateLimitPerMin,
		})
		storefrontTelegram.RegisterRoutes(srv.gin, h)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Storefront router not configured, skipping webhook route")
	}

	api := srv.gin.Group("/api/v1")

	accountHTTP.RegisterRoutes(api, accountHTTP.New(srv.l, srv.accountUC))
	orderHTTP.RegisterRoutes(api, orderHTTP.New(srv.l, srv.orderUC), mw)
	walletHTTP.RegisterRoutes(api, walletHTTP.New(srv.l, srv.walletUC), mw)

	admin := api.Group("/admin")
	notificationHTTP.RegisterRoutes(admin, notificationHTTP.New(srv.l, srv.notificationUC, srv.reportLocation), mw)
	storefrontHTTP.RegisterRoutes(admin, storefrontHTTP.New(srv.l), mw)

	if srv.internalKey == "" {
		srv.l.Warnf(ctx, "admin.internal_key is empty: /api/v1/admin endpoints will reject every request")
	}
	srv.l.Infof(ctx, "Marketplace routes registered under /api/v1")
}
