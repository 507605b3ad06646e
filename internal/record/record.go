package record

import (
	"strings"
	"time"
)

// Status represents the lifecycle state of a sandbox transaction.
// The remote API reports these as free-form text; Normalize lower-cases them.
type Status string

const (
	StatusSuccessful Status = "successful"
	StatusCompleted  Status = "completed"
	StatusPending    Status = "pending"
	StatusFailed     Status = "failed"
	StatusRefunded   Status = "refunded"
)

// PaymentType is the derived classification of a record.
type PaymentType string

const (
	PaymentSubscription PaymentType = "subscription"
	PaymentOneTime      PaymentType = "one-time"
)

// Metadata carries the optional nested object some records attach.
type Metadata struct {
	SubscriptionID    string
	ProductID         string
	PlanID            string
	PaymentMethodUsed string
}

// Record is the normalized internal shape of a transaction/session entry.
// CreatedAt is the zero time when the source timestamp was absent or
// unparseable.
type Record struct {
	TransactionID string
	SessionID     string
	Status        Status
	Amount        int64 // minor currency units
	Currency      string
	CustomerEmail string
	CustomerName  string
	Description   string
	CreatedAt     time.Time
	PaymentMethod string
	Metadata      Metadata
}

// ID returns the record's primary key: the transaction id when present,
// otherwise the session id.
func (r Record) ID() string {
	if r.TransactionID != "" {
		return r.TransactionID
	}

	return r.SessionID
}

// Classify derives the subscription/one-time classification. A record is a
// subscription payment when any metadata id is present, or when its
// description mentions "subscription" or "recurring".
func Classify(r Record) PaymentType {
	if r.Metadata.SubscriptionID != "" || r.Metadata.ProductID != "" || r.Metadata.PlanID != "" {
		return PaymentSubscription
	}

	desc := strings.ToLower(r.Description)
	if strings.Contains(desc, "subscription") || strings.Contains(desc, "recurring") {
		return PaymentSubscription
	}

	return PaymentOneTime
}

// methodLabels maps raw payment-method codes to display labels.
var methodLabels = map[string]string{
	"card":          "Credit/Debit Card",
	"bank_transfer": "Bank Transfer",
	"mobile_money":  "Mobile Money",
	"ussd":          "USSD",
	"qr":            "QR Code",
	"wallet":        "Wallet",
}

// MethodLabel resolves a raw payment-method code to its display label.
// Unknown or absent codes fall back to "Credit/Debit Card".
func MethodLabel(code string) string {
	if label, ok := methodLabels[strings.ToLower(strings.TrimSpace(code))]; ok {
		return label
	}

	return "Credit/Debit Card"
}
