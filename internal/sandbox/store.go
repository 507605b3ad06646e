// Package sandbox holds the in-memory fixture dataset the local API server
// serves, so the dashboard can be developed without the hosted backend.
package sandbox

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/pager"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/record"
)

var (
	statuses   = []string{"successful", "completed", "pending", "failed", "refunded"}
	currencies = []string{"USD", "NGN", "GHS", "KES"}
	methods    = []string{"card", "bank_transfer", "mobile_money", "ussd", "wallet"}

	oneTimeDescriptions = []string{
		"Checkout payment",
		"Invoice settlement",
		"One-time purchase",
		"Marketplace order",
	}
	subscriptionPlans = []string{"starter", "growth", "scale"}
)

// Store is a fixed, seeded dataset of wire-shaped transaction records.
// Reads only after construction, so no locking is needed.
type Store struct {
	records []record.Wire
}

// NewStore generates n records from the given seed. The same seed always
// yields the same dataset, which keeps dev sessions and tests reproducible.
func NewStore(n int, seed uint64) *Store {
	faker := gofakeit.New(seed)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	records := make([]record.Wire, n)
	for i := range records {
		records[i] = makeRecord(faker, base.Add(time.Duration(i)*37*time.Minute))
	}

	return &Store{records: records}
}

func makeRecord(faker *gofakeit.Faker, createdAt time.Time) record.Wire {
	w := record.Wire{
		TransactionID: "txn_" + uuid.NewString(),
		SessionID:     "sess_" + uuid.NewString(),
		Status:        faker.RandomString(statuses),
		Amount:        int64(faker.Number(500, 500_000)),
		Currency:      faker.RandomString(currencies),
		CustomerEmail: faker.Email(),
		CustomerName:  faker.Name(),
		CreatedAt:     createdAt.Format(time.RFC3339),
		PaymentMethod: faker.RandomString(methods),
	}

	// Roughly a third of the dataset is subscription traffic.
	if faker.Number(0, 2) == 0 {
		plan := faker.RandomString(subscriptionPlans)
		w.Description = fmt.Sprintf("Monthly subscription renewal (%s)", plan)
		w.Metadata = &record.WireMetadata{
			SubscriptionID: "sub_" + uuid.NewString(),
			PlanID:         "plan_" + plan,
		}
	} else {
		w.Description = faker.RandomString(oneTimeDescriptions)
	}

	return w
}

// Page returns one page of records plus the pagination block for it.
// Pages are 1-based; out-of-range pages return an empty data slice.
func (s *Store) Page(page, limit int) ([]record.Wire, pager.State) {
	total := len(s.records)
	totalPages := (total + limit - 1) / limit

	state := pager.State{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1 && totalPages > 0,
	}

	start := (page - 1) * limit
	if start < 0 || start >= total {
		return []record.Wire{}, state
	}

	end := min(start+limit, total)

	return s.records[start:end], state
}

// Get looks a record up by transaction or session id.
func (s *Store) Get(id string) (record.Wire, bool) {
	for _, w := range s.records {
		if w.TransactionID == id || w.SessionID == id {
			return w, true
		}
	}

	return record.Wire{}, false
}

// Len returns the dataset size.
func (s *Store) Len() int {
	return len(s.records)
}
