package notification

import (
	"time"

	"github.com/shopspring/decimal"

	"marketplace-bot/internal/model"
)

// EventKind is the explicit discriminant of a notification event.
type EventKind string

const (
	KindLogin            EventKind = "login"
	KindRegistration     EventKind = "registration"
	KindLogout           EventKind = "logout"
	KindOrderNew         EventKind = "order_new"
	KindOrderCompleted   EventKind = "order_completed"
	KindOrderRefund      EventKind = "order_refund"
	KindDepositPending   EventKind = "deposit_pending"
	KindDepositConfirmed EventKind = "deposit_confirmed"
	KindDepositFailed    EventKind = "deposit_failed"
	KindDailyReport      EventKind = "daily_report"
)

// Event is one of the value types below. Events are built once and never mutated.
type Event interface {
	Kind() EventKind
}

// Session is shared by the login, registration and logout events.
type Session struct {
	DisplayName string
	Username    string
	At          time.Time
	IPAddress   string
	Device      string
}

type LoginEvent struct {
	Session
}

type RegistrationEvent struct {
	Session
	WelcomeBonus decimal.Decimal
}

type LogoutEvent struct {
	Session
}

func (LoginEvent) Kind() EventKind        { return KindLogin }
func (RegistrationEvent) Kind() EventKind { return KindRegistration }
func (LogoutEvent) Kind() EventKind       { return KindLogout }

// OrderEvent covers new, completed and refunded orders; Status selects the kind.
type OrderEvent struct {
	Status   model.OrderStatus
	OrderID  string
	Customer string
	Product  string
	Amount   decimal.Decimal
	At       time.Time
}

func (e OrderEvent) Kind() EventKind {
	switch e.Status {
	case model.OrderStatusNew:
		return KindOrderNew
	case model.OrderStatusCompleted:
		return KindOrderCompleted
	default:
		return KindOrderRefund
	}
}

type DepositPendingEvent struct {
	Deposit model.Deposit
	At      time.Time
}

type DepositConfirmedEvent struct {
	Deposit model.Deposit
	TxHash  string
	At      time.Time
}

type DepositFailedEvent struct {
	Deposit model.Deposit
	Reason  string
	At      time.Time
}

func (DepositPendingEvent) Kind() EventKind   { return KindDepositPending }
func (DepositConfirmedEvent) Kind() EventKind { return KindDepositConfirmed }
func (DepositFailedEvent) Kind() EventKind    { return KindDepositFailed }

// DailyReportEvent aggregates the deposits of one day.
type DailyReportEvent struct {
	Date     time.Time
	Deposits []model.Deposit
}

func (DailyReportEvent) Kind() EventKind { return KindDailyReport }

// Message is a rendered notification ready for delivery. Markup is an optional
// keyboard descriptor passed through to the provider untouched.
type Message struct {
	Text      string
	ParseMode string
	Markup    any
}

// DeliveryConfig is read from the ConfigProvider for every send.
type DeliveryConfig struct {
	BotToken      string
	DestinationID string
	Enabled       bool
}

// Ready reports whether a send should be attempted at all.
func (c DeliveryConfig) Ready() bool {
	return c.Enabled && c.BotToken != "" && c.DestinationID != ""
}

// DeliveryResult is the outcome of one send. Failures are values, never errors.
type DeliveryResult struct {
	OK          bool
	ErrorDetail string
}

// OperationResult is the outcome of a webhook management call.
type OperationResult struct {
	Success bool
	Error   string
}

// TestResult is shown on the operator "test my settings" screen.
type TestResult struct {
	Success bool
	Message string
}

// WebhookStatus mirrors the provider's webhook registration.
type WebhookStatus struct {
	URL              string
	PendingUpdates   int
	LastErrorMessage string
	LastErrorAt      time.Time
}

// UpdateSettingsInput changes the stored delivery settings. Nil fields are left as is.
type UpdateSettingsInput struct {
	BotToken      *string
	DestinationID *string
	Enabled       *bool
}
