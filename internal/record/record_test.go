package record_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/record"
)

func TestClassify(t *testing.T) {
	type testCase struct {
		name string
		rec  record.Record
		want record.PaymentType
	}

	tests := []testCase{
		{
			name: "PlanIDWithoutDescription",
			rec:  record.Record{Metadata: record.Metadata{PlanID: "plan_1"}},
			want: record.PaymentSubscription,
		},
		{
			name: "SubscriptionID",
			rec:  record.Record{Metadata: record.Metadata{SubscriptionID: "sub_9"}},
			want: record.PaymentSubscription,
		},
		{
			name: "ProductID",
			rec:  record.Record{Metadata: record.Metadata{ProductID: "prod_2"}},
			want: record.PaymentSubscription,
		},
		{
			name: "RecurringDescription",
			rec:  record.Record{Description: "Monthly recurring charge"},
			want: record.PaymentSubscription,
		},
		{
			name: "SubscriptionDescriptionMixedCase",
			rec:  record.Record{Description: "Pro SUBSCRIPTION renewal"},
			want: record.PaymentSubscription,
		},
		{
			name: "NeitherMetadataNorKeyword",
			rec:  record.Record{Description: "One checkout payment"},
			want: record.PaymentOneTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, record.Classify(tt.rec))
		})
	}
}

func TestRecord_ID(t *testing.T) {
	assert.Equal(t, "txn_1", record.Record{TransactionID: "txn_1", SessionID: "sess_1"}.ID())
	assert.Equal(t, "sess_1", record.Record{SessionID: "sess_1"}.ID())
	assert.Empty(t, record.Record{}.ID())
}

func TestMethodLabel(t *testing.T) {
	assert.Equal(t, "Bank Transfer", record.MethodLabel("bank_transfer"))
	assert.Equal(t, "Credit/Debit Card", record.MethodLabel("card"))
	assert.Equal(t, "Credit/Debit Card", record.MethodLabel(""))
	assert.Equal(t, "Credit/Debit Card", record.MethodLabel("hologram"))
	assert.Equal(t, "USSD", record.MethodLabel(" USSD "))
}

func TestNormalize(t *testing.T) {
	wire := record.Wire{
		TransactionID: " txn_123 ",
		SessionID:     "sess_456",
		Status:        "Successful",
		Amount:        25000,
		Currency:      "ngn",
		CustomerEmail: "jane@example.com",
		CustomerName:  "Jane Doe",
		Description:   "Pro plan",
		CreatedAt:     "2026-01-15T10:30:00Z",
		Metadata: &record.WireMetadata{
			PlanID: "plan_1",
			CustomFields: &struct {
				PaymentMethodUsed string `json:"paymentMethodUsed"`
			}{PaymentMethodUsed: "bank_transfer"},
		},
	}

	rec := record.Normalize(wire)

	assert.Equal(t, "txn_123", rec.TransactionID)
	assert.Equal(t, record.StatusSuccessful, rec.Status)
	assert.Equal(t, "NGN", rec.Currency)
	assert.Equal(t, "plan_1", rec.Metadata.PlanID)
	assert.Equal(t, "bank_transfer", rec.PaymentMethod)
	assert.Equal(t, time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC), rec.CreatedAt)
}

func TestNormalize_MalformedCreatedAt(t *testing.T) {
	rec := record.Normalize(record.Wire{CreatedAt: "not-a-date"})
	assert.True(t, rec.CreatedAt.IsZero())

	rec = record.Normalize(record.Wire{})
	assert.True(t, rec.CreatedAt.IsZero())
}

func TestNormalize_DateOnlyTimestamp(t *testing.T) {
	rec := record.Normalize(record.Wire{CreatedAt: "2026-02-01"})
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), rec.CreatedAt)
}
