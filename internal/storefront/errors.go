package storefront

import "errors"

var (
	// ErrWebhookActive is returned by the poller when the provider refuses getUpdates
	// because a webhook is registered for the same bot.
	ErrWebhookActive = errors.New("webhook is active: delete it before polling")
	ErrUserNotLinked = errors.New("telegram account is not linked to a marketplace user")

	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product is out of stock")
)
