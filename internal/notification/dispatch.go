package notification

import (
	"context"
	"time"
)

// DefaultDispatchTimeout bounds a fire-and-forget notification.
const DefaultDispatchTimeout = 15 * time.Second

// Dispatch sends e in the background so the caller's flow never waits on the
// provider. The context is detached from ctx's cancellation but keeps its values.
// The returned channel yields the result once; callers are free to ignore it.
func Dispatch(ctx context.Context, n Notifier, e Event) <-chan DeliveryResult {
	out := make(chan DeliveryResult, 1)
	if n == nil || e == nil {
		out <- DeliveryResult{OK: false, ErrorDetail: "no notifier"}
		return out
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DefaultDispatchTimeout)
		defer cancel()
		out <- n.Notify(bgCtx, e)
	}()
	return out
}
