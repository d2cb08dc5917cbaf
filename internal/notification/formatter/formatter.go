package formatter

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"marketplace-bot/internal/model"
	"marketplace-bot/internal/notification"
	"marketplace-bot/pkg/telegram"
)

const (
	timeLayout = "2006-01-02 15:04:05 MST"
	dateLayout = "2006-01-02"
	missing    = "unknown"
)

// Formatter renders notification events as Telegram HTML.
type Formatter struct {
	loc *time.Location
}

var _ notification.Formatter = (*Formatter)(nil)

// New creates a Formatter rendering timestamps in loc (UTC when nil).
func New(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{loc: loc}
}

// Format renders event. It never panics; unknown events get a generic message.
func (f *Formatter) Format(event notification.Event) notification.Message {
	var text string

	switch e := event.(type) {
	case notification.LoginEvent:
		text = f.session("👋", "User Login", e.Session, "Welcome back to the marketplace!")
	case notification.RegistrationEvent:
		text = f.session("🎉", "New Registration", e.Session,
			fmt.Sprintf("🎁 Welcome bonus of $%s credited to the new account.", money(e.WelcomeBonus)))
	case notification.LogoutEvent:
		text = f.session("🚪", "User Logout", e.Session, "Signed out. See you again soon!")
	case notification.OrderEvent:
		text = f.order(e)
	case notification.DepositPendingEvent:
		text = f.deposit("⏳", "Deposit Pending", e.Deposit, e.At, "")
	case notification.DepositConfirmedEvent:
		text = f.deposit("✅", "Deposit Confirmed", e.Deposit, e.At,
			fmt.Sprintf("🔗 <b>Tx Hash:</b> <code>%s</code>", esc(e.TxHash)))
	case notification.DepositFailedEvent:
		text = f.deposit("❌", "Deposit Failed", e.Deposit, e.At,
			fmt.Sprintf("⚠️ <b>Reason:</b> %s", esc(orMissing(e.Reason))))
	case notification.DailyReportEvent:
		text = f.dailyReport(e)
	case nil:
		text = "🔔 <b>Notification</b>"
	default:
		text = fmt.Sprintf("🔔 <b>Notification</b>\n\nEvent: %s", esc(string(event.Kind())))
	}

	return notification.Message{Text: text, ParseMode: telegram.ParseModeHTML}
}

func (f *Formatter) session(icon, title string, s notification.Session, footer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>%s</b>\n\n", icon, title)
	fmt.Fprintf(&b, "👤 <b>Name:</b> %s\n", esc(orMissing(s.DisplayName)))
	fmt.Fprintf(&b, "🆔 <b>Username:</b> @%s\n", esc(orMissing(s.Username)))
	fmt.Fprintf(&b, "🕐 <b>Time:</b> %s\n", f.timestamp(s.At))
	fmt.Fprintf(&b, "🌐 <b>IP:</b> %s\n", esc(orMissing(s.IPAddress)))
	fmt.Fprintf(&b, "📱 <b>Device:</b> %s\n\n", esc(orMissing(s.Device)))
	b.WriteString(footer)
	return b.String()
}

func (f *Formatter) order(e notification.OrderEvent) string {
	icon, title := "🔄", "Order Updated"
	switch e.Status {
	case model.OrderStatusNew:
		icon, title = "🛒", "New Order"
	case model.OrderStatusCompleted:
		icon, title = "✅", "Order Completed"
	case model.OrderStatusRefunded:
		title = "Order Refunded"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>%s</b>\n\n", icon, title)
	fmt.Fprintf(&b, "🧾 <b>Order ID:</b> #%s\n", esc(e.OrderID))
	fmt.Fprintf(&b, "👤 <b>Customer:</b> %s\n", esc(orMissing(e.Customer)))
	fmt.Fprintf(&b, "📦 <b>Product:</b> %s\n", esc(orMissing(e.Product)))
	fmt.Fprintf(&b, "💵 <b>Amount:</b> $%s\n", money(e.Amount))
	fmt.Fprintf(&b, "📌 <b>Status:</b> %s\n", esc(string(e.Status)))
	fmt.Fprintf(&b, "🕐 <b>Time:</b> %s", f.timestamp(e.At))
	return b.String()
}

func (f *Formatter) deposit(icon, title string, d model.Deposit, at time.Time, extra string) string {
	coin := normalizeCoin(d.Coin)

	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>%s</b>\n\n", icon, title)
	fmt.Fprintf(&b, "👤 <b>User:</b> %s\n", esc(orMissing(d.Username)))
	fmt.Fprintf(&b, "%s <b>Coin:</b> %s\n", CoinSymbol(coin), esc(coin))
	fmt.Fprintf(&b, "💰 <b>Amount:</b> %s %s ($%s)\n", crypto(d.Amount), esc(coin), money(d.AmountUSD))
	if d.Address != "" {
		fmt.Fprintf(&b, "📬 <b>Address:</b> <code>%s</code>\n", esc(d.Address))
	}
	fmt.Fprintf(&b, "🆔 <b>Deposit ID:</b> %s\n", esc(d.ID))
	fmt.Fprintf(&b, "%s <b>Status:</b> %s\n", StatusSymbol(d.Status), esc(string(d.Status)))
	if extra != "" {
		b.WriteString(extra)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "🕐 <b>Time:</b> %s", f.timestamp(at))
	return b.String()
}

func (f *Formatter) dailyReport(e notification.DailyReportEvent) string {
	s := Summarize(e.Deposits)

	var b strings.Builder
	b.WriteString("📊 <b>Daily Deposit Report</b>\n")
	fmt.Fprintf(&b, "📅 %s\n\n", e.Date.In(f.loc).Format(dateLayout))
	fmt.Fprintf(&b, "📈 <b>Total deposits:</b> %d\n", s.Total)
	fmt.Fprintf(&b, "✅ <b>Confirmed:</b> %d\n", s.Confirmed)
	fmt.Fprintf(&b, "💵 <b>Total volume:</b> $%s\n", money(s.TotalUSD))
	fmt.Fprintf(&b, "💰 <b>Confirmed volume:</b> $%s\n", money(s.ConfirmedUSD))

	b.WriteString("\n<b>By coin:</b>\n")
	if len(s.ByCoin) == 0 {
		b.WriteString("none\n")
	}
	for _, c := range s.ByCoin {
		fmt.Fprintf(&b, "%s %s: %s\n", CoinSymbol(c.Coin), esc(c.Coin), crypto(c.Amount))
	}

	b.WriteString("\n<b>By status:</b>\n")
	for _, st := range s.ByStatus {
		fmt.Fprintf(&b, "%s %s: %d\n", StatusSymbol(st.Status), st.Status, st.Count)
	}
	if s.Other > 0 {
		fmt.Fprintf(&b, "%s other: %d\n", FallbackStatusSymbol, s.Other)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) timestamp(t time.Time) string {
	if t.IsZero() {
		return missing
	}
	return t.In(f.loc).Format(timeLayout)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func crypto(d decimal.Decimal) string {
	return d.StringFixed(8)
}

func esc(s string) string {
	return html.EscapeString(s)
}

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return missing
	}
	return s
}
