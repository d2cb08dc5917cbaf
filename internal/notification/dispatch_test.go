package notification_test

import (
	"context"
	"testing"
	"time"

	"marketplace-bot/internal/notification"
)

type blockingNotifier struct {
	release chan struct{}
	sawCtx  chan error
}

func (b *blockingNotifier) Notify(ctx context.Context, e notification.Event) notification.DeliveryResult {
	<-b.release
	b.sawCtx <- ctx.Err()
	return notification.DeliveryResult{OK: true}
}

func TestDispatch_DoesNotBlockAndOutlivesCaller(t *testing.T) {
	n := &blockingNotifier{release: make(chan struct{}), sawCtx: make(chan error, 1)}
	ctx, cancel := context.WithCancel(context.Background())

	start := time.Now()
	res := notification.Dispatch(ctx, n, notification.LoginEvent{})
	if time.Since(start) > 100*time.Millisecond {
		t.Fatalf("Dispatch must return immediately")
	}

	cancel()
	close(n.release)

	select {
	case r := <-res:
		if !r.OK {
			t.Errorf("expected ok result, got %+v", r)
		}
	case <-time.After(time.Second):
		t.Fatal("no result delivered")
	}
	if err := <-n.sawCtx; err != nil {
		t.Errorf("notification context must survive caller cancellation, got %v", err)
	}
}

func TestDispatch_NilNotifier(t *testing.T) {
	r := <-notification.Dispatch(context.Background(), nil, notification.LoginEvent{})
	if r.OK {
		t.Errorf("expected failure without a notifier")
	}
}
