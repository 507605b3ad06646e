package view

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders an amount stored in minor units with thousands
// separators, e.g. 1234550 -> "12,345.50".
func FormatAmount(minor int64) string {
	return printer.Sprintf("%d.%02d", minor/100, minor%100)
}

// FormatDate formats a time.Time into YYYY-MM-DD, empty for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.DateOnly)
}
