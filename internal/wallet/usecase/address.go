package usecase

import (
	"strings"

	"github.com/google/uuid"
)

// depositAddress returns a fresh mock address shaped like the coin's network format.
func depositAddress(coin string) string {
	hex := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	if coin == "BTC" {
		return "bc1q" + hex[:38]
	}
	return "0x" + hex[:40]
}
