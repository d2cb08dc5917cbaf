package telegram

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when Telegram answers with ok=false.
type APIError struct {
	Method      string
	ErrorCode   int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s failed (%d): %s", e.Method, e.ErrorCode, e.Description)
}

// IsConflict reports whether err is a 409 from Telegram. getUpdates answers 409
// while a webhook is registered, and vice versa for concurrent pollers.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode == http.StatusConflict
}
