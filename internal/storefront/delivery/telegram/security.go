package telegram

import (
	"crypto/subtle"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	// HeaderSecretToken carries the secret_token given to setWebhook.
	HeaderSecretToken = "X-Telegram-Bot-Api-Secret-Token"

	maxTrackedChats = 10000
	limiterTTL      = 10 * time.Minute
)

var (
	errInvalidSecret = errors.New("invalid webhook secret token")
	errRateLimited   = errors.New("rate limit exceeded")
)

// SecurityConfig protects the inbound webhook.
type SecurityConfig struct {
	// SecretToken must match the header Telegram sends. Empty disables the check.
	SecretToken string
	// RateLimitPerMin caps updates per chat. Zero or less disables limiting.
	RateLimitPerMin int
}

type securityValidator struct {
	secret  string
	limiter *rateLimiter
}

func newSecurityValidator(cfg SecurityConfig) *securityValidator {
	v := &securityValidator{secret: cfg.SecretToken}
	if cfg.RateLimitPerMin > 0 {
		v.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return v
}

func (v *securityValidator) validateSecret(header string) error {
	if v.secret == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(header), []byte(v.secret)) != 1 {
		return errInvalidSecret
	}
	return nil
}

func (v *securityValidator) allow(chatID int64) error {
	if v.limiter == nil {
		return nil
	}
	return v.limiter.allow(strconv.FormatInt(chatID, 10))
}

// rateLimiter keeps one token bucket per chat; idle chats expire from the LRU.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(perMin int) *rateLimiter {
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedChats, nil, limiterTTL),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) error {
	if !rl.limiterFor(key).Allow() {
		return errRateLimited
	}
	return nil
}

// limiterFor returns the chat's bucket, creating it once even under concurrent first updates.
func (rl *rateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}
