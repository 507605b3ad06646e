package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/record"
)

// utf8BOM prefixes the output so spreadsheet tools pick up the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// columns is the fixed export column order.
var columns = []string{
	"Transaction ID",
	"Session ID",
	"Status",
	"Amount",
	"Currency",
	"Customer Email",
	"Customer Name",
	"Description",
	"Created At",
	"Payment Method",
	"Type",
}

// WriteCSV serializes records to w: UTF-8 BOM, header row, then one row per
// record with \n separators. Fields containing commas, quotes or newlines
// are quoted with internal quotes doubled.
func WriteCSV(w io.Writer, records []record.Record) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing bom: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.TransactionID,
			r.SessionID,
			string(r.Status),
			majorUnits(r.Amount),
			r.Currency,
			r.CustomerEmail,
			r.CustomerName,
			r.Description,
			formatCreatedAt(r.CreatedAt),
			record.MethodLabel(r.PaymentMethod),
			string(record.Classify(r)),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record %s: %w", r.ID(), err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// majorUnits renders a minor-unit amount in major units, e.g. 10050 -> "100.5".
func majorUnits(minor int64) string {
	return decimal.NewFromInt(minor).Shift(-2).String()
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}
