package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	TelegramModeWebhook = "webhook"
	TelegramModePolling = "polling"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Marketplace bot specifics
	Telegram   TelegramConfig
	Storefront StorefrontConfig
	Account    AccountConfig
	Report     ReportConfig

	// Webhooks and operator access
	Webhook WebhookConfig
	Admin   AdminConfig
}

type EnvironmentConfig struct {
	Name string `validate:"oneof=development staging production"`
}

type HTTPServerConfig struct {
	Port int    `validate:"min=1,max=65535"`
	Mode string `validate:"oneof=debug release test"`
}

type LoggerConfig struct {
	Level        string `validate:"oneof=debug info warn error dpanic panic fatal"`
	Mode         string
	Encoding     string `validate:"oneof=console json"`
	ColorEnabled bool
}

// TelegramConfig covers both the storefront bot and the operator notification chat.
// ChatID and NotificationsEnabled only seed the runtime-editable delivery settings.
// TunnelAPI is a local ngrok API used to discover the webhook URL when WebhookURL is empty.
type TelegramConfig struct {
	BotToken             string
	BotUsername          string
	ChatID               string
	NotificationsEnabled bool
	DropPendingUpdates   bool
	Mode                 string        `validate:"oneof=webhook polling"`
	WebhookURL           string        `validate:"omitempty,url,startswith=https://"`
	WebhookSecret        string        `validate:"omitempty,max=256"`
	TunnelAPI            string        `validate:"omitempty,url"`
	RequestTimeout       time.Duration `validate:"min=1s,max=2m"`
	PollTimeout          time.Duration `validate:"min=0s,max=50s"`
}

type StorefrontConfig struct {
	SiteURL  string `validate:"required,url"`
	PageSize int    `validate:"min=1,max=10"`
}

type AccountConfig struct {
	SessionTTL   time.Duration `validate:"min=1m"`
	WelcomeBonus string        `validate:"omitempty,numeric"`
}

// ReportConfig schedules the background jobs. An empty cron disables the job.
type ReportConfig struct {
	Cron          string
	Timezone      string `validate:"required"`
	ExpiryCron    string
	DepositExpiry time.Duration `validate:"min=1m"`
}

type WebhookConfig struct {
	RateLimitPerMin int `validate:"min=1"`
}

type AdminConfig struct {
	InternalKey string
}

// Location resolves Report.Timezone. Validate has already checked it loads.
func (c ReportConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.BotUsername = v.GetString("telegram.bot_username")
	cfg.Telegram.ChatID = v.GetString("telegram.chat_id")
	cfg.Telegram.NotificationsEnabled = v.GetBool("telegram.notifications_enabled")
	cfg.Telegram.Mode = strings.ToLower(v.GetString("telegram.mode"))
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = v.GetString("telegram.webhook_secret")
	cfg.Telegram.TunnelAPI = v.GetString("telegram.tunnel_api")
	cfg.Telegram.DropPendingUpdates = v.GetBool("telegram.drop_pending_updates")
	cfg.Telegram.RequestTimeout = v.GetDuration("telegram.request_timeout")
	cfg.Telegram.PollTimeout = v.GetDuration("telegram.poll_timeout")

	// Storefront & account flows
	cfg.Storefront.SiteURL = strings.TrimRight(v.GetString("storefront.site_url"), "/")
	cfg.Storefront.PageSize = v.GetInt("storefront.page_size")
	cfg.Account.SessionTTL = v.GetDuration("account.session_ttl")
	cfg.Account.WelcomeBonus = v.GetString("account.welcome_bonus")

	// Scheduled jobs
	cfg.Report.Cron = v.GetString("report.cron")
	cfg.Report.Timezone = v.GetString("report.timezone")
	cfg.Report.ExpiryCron = v.GetString("report.expiry_cron")
	cfg.Report.DepositExpiry = v.GetDuration("report.deposit_expiry")

	// Webhooks & admin
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Admin.InternalKey = v.GetString("admin.internal_key")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and the cross-field rules the tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.LoadLocation(c.Report.Timezone); err != nil {
		return fmt.Errorf("invalid config: report.timezone: %w", err)
	}
	if c.Telegram.NotificationsEnabled && c.Telegram.ChatID == "" {
		return fmt.Errorf("invalid config: telegram.chat_id is required when notifications are enabled")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("telegram.mode", TelegramModeWebhook)
	v.SetDefault("telegram.notifications_enabled", false)
	v.SetDefault("telegram.drop_pending_updates", true)
	v.SetDefault("telegram.request_timeout", "10s")
	v.SetDefault("telegram.poll_timeout", "30s")

	v.SetDefault("storefront.site_url", "http://localhost:3000")
	v.SetDefault("storefront.page_size", 1)
	v.SetDefault("account.session_ttl", "24h")
	v.SetDefault("account.welcome_bonus", "5")

	v.SetDefault("report.cron", "")
	v.SetDefault("report.timezone", "UTC")
	v.SetDefault("report.expiry_cron", "")
	v.SetDefault("report.deposit_expiry", "1h")

	v.SetDefault("webhook.rate_limit_per_min", 60)
}
