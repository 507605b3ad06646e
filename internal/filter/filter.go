package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/record"
)

// State holds the active filter criteria for the transactions view. The zero
// value passes every record. Pointer fields distinguish "not set" from zero
// bounds, the same way the list filters elsewhere in this codebase do.
type State struct {
	PaymentType record.PaymentType // empty means any
	Status      record.Status      // empty means any
	StartDate   *time.Time         // compared from start of day
	EndDate     *time.Time         // inclusive through 23:59:59.999
	MinAmount   *int64             // minor units, inclusive
	MaxAmount   *int64             // minor units, inclusive
	Search      string             // case-insensitive substring
}

// Active reports whether any criterion is set.
func (s State) Active() bool {
	return s.PaymentType != "" || s.Status != "" ||
		s.StartDate != nil || s.EndDate != nil ||
		s.MinAmount != nil || s.MaxAmount != nil ||
		strings.TrimSpace(s.Search) != ""
}

// Matches evaluates every active predicate against the record and combines
// them with logical AND. It is pure: same inputs, same answer.
func (s State) Matches(r record.Record) bool {
	return s.matchesType(r) &&
		s.matchesStatus(r) &&
		s.matchesDate(r) &&
		s.matchesAmount(r) &&
		s.matchesSearch(r)
}

func (s State) matchesType(r record.Record) bool {
	if s.PaymentType == "" {
		return true
	}

	return record.Classify(r) == s.PaymentType
}

func (s State) matchesStatus(r record.Record) bool {
	if s.Status == "" {
		return true
	}

	status := record.Status(strings.ToLower(string(r.Status)))

	// The "successful" filter matches both wire spellings.
	if s.Status == record.StatusSuccessful {
		return status == record.StatusSuccessful || status == record.StatusCompleted
	}

	return status == s.Status
}

func (s State) matchesDate(r record.Record) bool {
	if s.StartDate == nil && s.EndDate == nil {
		return true
	}

	// Records whose source timestamp failed to parse carry the zero time and
	// are excluded whenever a date bound is active.
	if r.CreatedAt.IsZero() {
		return false
	}

	if s.StartDate != nil && r.CreatedAt.Before(startOfDay(*s.StartDate)) {
		return false
	}

	if s.EndDate != nil && r.CreatedAt.After(endOfDay(*s.EndDate)) {
		return false
	}

	return true
}

func (s State) matchesAmount(r record.Record) bool {
	if s.MinAmount != nil && r.Amount < *s.MinAmount {
		return false
	}

	if s.MaxAmount != nil && r.Amount > *s.MaxAmount {
		return false
	}

	return true
}

func (s State) matchesSearch(r record.Record) bool {
	term := strings.ToLower(strings.TrimSpace(s.Search))
	if term == "" {
		return true
	}

	for _, field := range []string{r.CustomerEmail, r.CustomerName, r.TransactionID, r.SessionID} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}

	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// MinorUnits converts a user-entered major-unit amount ("10", "10.5",
// "1,000.25") into minor units. Thousands separators are stripped before
// parsing.
func MinorUnits(major string) (int64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(major), ",", "")
	if clean == "" {
		return 0, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", major, err)
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
