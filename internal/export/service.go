package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/api"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/record"
)

//go:generate mockgen -source=service.go -destination=source_mock.go -package=export
type Source interface {
	ListTransactions(ctx context.Context, page, limit int) (*api.TransactionPage, error)
}

const (
	// pageSize is the fixed page size the export walk requests.
	pageSize = 100
	// maxPages bounds the walk in case the server misreports hasNextPage.
	maxPages = 1000
)

// Service produces the full-dataset CSV export. The walk deliberately
// ignores whatever filters the transactions view has active: an export is
// always the complete remote record set.
type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// FetchAll walks every remote page into memory, starting at page 1 and
// following hasNextPage up to the safety ceiling. Any fetch error aborts the
// walk; partially accumulated records are discarded.
func (s *Service) FetchAll(ctx context.Context) ([]record.Record, error) {
	var records []record.Record

	for page := 1; page <= maxPages; page++ {
		tp, err := s.source.ListTransactions(ctx, page, pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		records = append(records, tp.Records...)

		if !tp.Pagination.HasNextPage {
			break
		}
	}

	return records, nil
}

// ExportCSV fetches the complete record set and serializes it to w. Nothing
// is written until the whole fetch has succeeded, so a failed export never
// leaves a partial file behind. Returns the number of exported records.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	records, err := s.FetchAll(ctx)
	if err != nil {
		return 0, err
	}

	if err := WriteCSV(w, records); err != nil {
		return 0, fmt.Errorf("writing csv: %w", err)
	}

	return len(records), nil
}

// Filename returns the download name for an export taken at the given time.
func Filename(now time.Time) string {
	return fmt.Sprintf("sandbox-transactions-%s.csv", now.Format(time.DateOnly))
}
