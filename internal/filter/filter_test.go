package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/filter"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/record"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func apply(s filter.State, recs []record.Record) []record.Record {
	var out []record.Record

	for _, r := range recs {
		if s.Matches(r) {
			out = append(out, r)
		}
	}

	return out
}

func TestState_ZeroValuePassesEverything(t *testing.T) {
	recs := []record.Record{
		{},
		{Status: record.StatusFailed, Amount: -5},
		{Description: "recurring", CreatedAt: date(2026, 1, 1, 0, 0)},
	}

	assert.Len(t, apply(filter.State{}, recs), len(recs))
}

func TestState_Matches_Idempotent(t *testing.T) {
	s := filter.State{Status: record.StatusPending, Search: "jane"}
	r := record.Record{Status: record.StatusPending, CustomerEmail: "jane@example.com"}

	first := s.Matches(r)
	second := s.Matches(r)

	assert.True(t, first)
	assert.Equal(t, first, second)
}

func TestState_ANDComposition(t *testing.T) {
	recs := []record.Record{
		{TransactionID: "a", Status: record.StatusPending, Amount: 500},
		{TransactionID: "b", Status: record.StatusFailed, Amount: 500},
	}

	zero := int64(0)
	ceiling := int64(1000)

	byStatus := apply(filter.State{Status: record.StatusPending}, recs)
	byAmount := apply(filter.State{MinAmount: &zero, MaxAmount: &ceiling}, recs)
	joint := apply(filter.State{Status: record.StatusPending, MinAmount: &zero, MaxAmount: &ceiling}, recs)

	// The joint result equals the intersection of the individual results.
	require.Len(t, joint, 1)
	assert.Equal(t, "a", joint[0].TransactionID)
	assert.Contains(t, byStatus, joint[0])
	assert.Contains(t, byAmount, joint[0])
}

func TestState_StatusSuccessfulMatchesCompleted(t *testing.T) {
	s := filter.State{Status: record.StatusSuccessful}

	assert.True(t, s.Matches(record.Record{Status: record.StatusSuccessful}))
	assert.True(t, s.Matches(record.Record{Status: record.StatusCompleted}))
	assert.True(t, s.Matches(record.Record{Status: "COMPLETED"}))
	assert.False(t, s.Matches(record.Record{Status: record.StatusPending}))
}

func TestState_PaymentType(t *testing.T) {
	sub := record.Record{Metadata: record.Metadata{PlanID: "plan_1"}}
	oneTime := record.Record{Description: "single checkout"}

	s := filter.State{PaymentType: record.PaymentSubscription}
	assert.True(t, s.Matches(sub))
	assert.False(t, s.Matches(oneTime))

	s.PaymentType = record.PaymentOneTime
	assert.False(t, s.Matches(sub))
	assert.True(t, s.Matches(oneTime))
}

func TestState_DateRange(t *testing.T) {
	start := date(2026, 3, 10, 0, 0)
	end := date(2026, 3, 11, 0, 0)
	s := filter.State{StartDate: &start, EndDate: &end}

	// End date is inclusive of the whole day.
	assert.True(t, s.Matches(record.Record{CreatedAt: date(2026, 3, 11, 23, 59)}))
	assert.True(t, s.Matches(record.Record{CreatedAt: date(2026, 3, 10, 0, 0)}))
	assert.False(t, s.Matches(record.Record{CreatedAt: date(2026, 3, 9, 23, 59)}))
	assert.False(t, s.Matches(record.Record{CreatedAt: date(2026, 3, 12, 0, 0)}))
}

func TestState_DateRange_ZeroCreatedAtExcluded(t *testing.T) {
	start := date(2026, 3, 10, 0, 0)
	s := filter.State{StartDate: &start}

	assert.False(t, s.Matches(record.Record{}), "unparseable timestamps are excluded under a date filter")
	assert.True(t, filter.State{}.Matches(record.Record{}), "but pass when no date filter is active")
}

func TestState_AmountBounds(t *testing.T) {
	low := int64(10000)
	s := filter.State{MinAmount: &low}

	assert.True(t, s.Matches(record.Record{Amount: 10000}))
	assert.True(t, s.Matches(record.Record{Amount: 99999}))
	assert.False(t, s.Matches(record.Record{Amount: 9999}))

	high := int64(20000)
	s.MaxAmount = &high
	assert.False(t, s.Matches(record.Record{Amount: 20001}))
	assert.True(t, s.Matches(record.Record{Amount: 20000}))
}

func TestState_Search(t *testing.T) {
	rec := record.Record{
		TransactionID: "txn_ABC123",
		SessionID:     "sess_777",
		CustomerEmail: "Jane.Doe@example.com",
		CustomerName:  "Jane Doe",
	}

	assert.True(t, filter.State{Search: "jane.doe"}.Matches(rec))
	assert.True(t, filter.State{Search: "abc123"}.Matches(rec))
	assert.True(t, filter.State{Search: "sess_777"}.Matches(rec))
	assert.True(t, filter.State{Search: "  Doe "}.Matches(rec))
	assert.False(t, filter.State{Search: "nobody"}.Matches(rec))
}

func TestMinorUnits(t *testing.T) {
	type testCase struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}

	tests := []testCase{
		{name: "WholeMajor", in: "10", want: 1000},
		{name: "WithFraction", in: "10.5", want: 1050},
		{name: "ThousandsSeparators", in: "1,000.25", want: 100025},
		{name: "Empty", in: "", wantErr: true},
		{name: "Garbage", in: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filter.MinorUnits(tt.in)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
