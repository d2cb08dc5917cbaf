package usecase

import (
	"context"
	"fmt"
	"time"

	"marketplace-bot/internal/notification"
)

// SendDailyReport summarizes the deposits created on date's calendar day in the
// configured location. A zero date means yesterday.
func (uc *implUseCase) SendDailyReport(ctx context.Context, date time.Time) notification.DeliveryResult {
	if date.IsZero() {
		date = uc.now().In(uc.loc).AddDate(0, 0, -1)
	}
	from, to := dayWindow(date, uc.loc)

	deposits, err := uc.deposits.ListDepositsBetween(ctx, from, to)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.SendDailyReport.ListDepositsBetween: %v", err)
		return notification.DeliveryResult{OK: false, ErrorDetail: fmt.Sprintf("list deposits: %v", err)}
	}

	uc.l.Infof(ctx, "internal.notification.usecase.SendDailyReport: %d deposits on %s", len(deposits), from.Format("2006-01-02"))
	return uc.Notify(ctx, notification.DailyReportEvent{Date: from, Deposits: deposits})
}

// dayWindow returns [midnight, next midnight) of t's day in loc.
func dayWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	from := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 0, 1)
}
