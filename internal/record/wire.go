package record

import (
	"strings"
	"time"
)

// Wire is the loosely-specified JSON shape the remote API returns. Every
// field is optional; absent and extra fields are tolerated. It is decoded
// once at the API boundary and normalized into a Record, so the rest of the
// codebase never touches the untyped external schema.
type Wire struct {
	TransactionID string        `json:"transactionId"`
	SessionID     string        `json:"sessionId"`
	Status        string        `json:"status"`
	Amount        int64         `json:"amount"`
	Currency      string        `json:"currency"`
	CustomerEmail string        `json:"customerEmail"`
	CustomerName  string        `json:"customerName"`
	Description   string        `json:"description"`
	CreatedAt     string        `json:"createdAt"`
	PaymentMethod string        `json:"paymentMethod"`
	Metadata      *WireMetadata `json:"metadata"`
}

type WireMetadata struct {
	SubscriptionID string `json:"subscriptionId"`
	ProductID      string `json:"productId"`
	PlanID         string `json:"planId"`
	CustomFields   *struct {
		PaymentMethodUsed string `json:"paymentMethodUsed"`
	} `json:"customFields"`
}

// createdAtLayouts are tried in order when parsing the source timestamp.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Normalize converts the wire shape into the internal Record. Statuses are
// lower-cased, timestamps parsed (zero time when unparseable) and nested
// metadata flattened.
func Normalize(w Wire) Record {
	r := Record{
		TransactionID: strings.TrimSpace(w.TransactionID),
		SessionID:     strings.TrimSpace(w.SessionID),
		Status:        Status(strings.ToLower(strings.TrimSpace(w.Status))),
		Amount:        w.Amount,
		Currency:      strings.ToUpper(strings.TrimSpace(w.Currency)),
		CustomerEmail: strings.TrimSpace(w.CustomerEmail),
		CustomerName:  strings.TrimSpace(w.CustomerName),
		Description:   w.Description,
		CreatedAt:     parseCreatedAt(w.CreatedAt),
		PaymentMethod: strings.TrimSpace(w.PaymentMethod),
	}

	if w.Metadata != nil {
		r.Metadata = Metadata{
			SubscriptionID: w.Metadata.SubscriptionID,
			ProductID:      w.Metadata.ProductID,
			PlanID:         w.Metadata.PlanID,
		}
		if w.Metadata.CustomFields != nil {
			r.Metadata.PaymentMethodUsed = w.Metadata.CustomFields.PaymentMethodUsed
		}
	}

	if r.PaymentMethod == "" {
		r.PaymentMethod = r.Metadata.PaymentMethodUsed
	}

	return r
}

// NormalizeAll maps a page of wire records into Records.
func NormalizeAll(ws []Wire) []Record {
	rs := make([]Record, len(ws))
	for i, w := range ws {
		rs[i] = Normalize(w)
	}

	return rs
}

func parseCreatedAt(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}
