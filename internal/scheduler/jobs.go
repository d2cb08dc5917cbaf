package scheduler

import (
	"context"
	"time"

	"marketplace-bot/internal/notification"
	pkgLog "marketplace-bot/pkg/log"
)

const (
	JobDailyReport   = "daily-deposit-report"
	JobExpireDeposit = "expire-stale-deposits"
)

type Reporter interface {
	SendDailyReport(ctx context.Context, date time.Time) notification.DeliveryResult
}

type Expirer interface {
	ExpireStale(ctx context.Context, olderThan time.Duration) (int, error)
}

// DailyReportJob reports on the previous day in the reporter's location.
func DailyReportJob(l pkgLog.Logger, r Reporter) func(ctx context.Context) {
	return func(ctx context.Context) {
		res := r.SendDailyReport(ctx, time.Time{})
		if !res.OK {
			l.Warnf(ctx, "internal.scheduler.DailyReportJob: not delivered: %s", res.ErrorDetail)
			return
		}
		l.Infof(ctx, "internal.scheduler.DailyReportJob: delivered")
	}
}

func ExpireDepositsJob(l pkgLog.Logger, e Expirer, olderThan time.Duration) func(ctx context.Context) {
	return func(ctx context.Context) {
		n, err := e.ExpireStale(ctx, olderThan)
		if err != nil {
			l.Errorf(ctx, "internal.scheduler.ExpireDepositsJob: %v", err)
			return
		}
		if n > 0 {
			l.Infof(ctx, "internal.scheduler.ExpireDepositsJob: expired %d deposits", n)
		}
	}
}
