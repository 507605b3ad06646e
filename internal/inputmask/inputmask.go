// Package inputmask holds the pure string transforms applied to payment form
// input as the user types. Every function is total: invalid input degrades to
// an empty or partial string, never an error.
package inputmask

import (
	"strconv"
	"strings"
)

// FormatAmount normalizes a currency amount as typed: strips everything but
// digits and dots, keeps only the first dot as the decimal point, prefixes a
// leading zero for ".5"-style input and groups the integer part with commas.
// A typed-but-incomplete decimal ("1000.") is preserved verbatim.
func FormatAmount(s string) string {
	var b strings.Builder

	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" || cleaned == "." {
		return cleaned
	}

	intPart, fracPart, hasDot := strings.Cut(cleaned, ".")

	// Everything after the first dot is fractional digits.
	fracPart = strings.ReplaceAll(fracPart, ".", "")

	if intPart == "" {
		intPart = "0"
	}

	grouped := groupThousands(intPart)
	if !hasDot {
		return grouped
	}

	return grouped + "." + fracPart
}

// ParseAmount is the inverse of the separator insertion: it strips commas and
// leaves the decimal string for numeric parsing by the caller.
func ParseAmount(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// FormatCard strips non-digits, truncates to 16 digits and groups them into
// blocks of 4 separated by single spaces.
func FormatCard(s string) string {
	digits := onlyDigits(s, 16)

	var groups []string
	for i := 0; i < len(digits); i += 4 {
		end := min(i+4, len(digits))
		groups = append(groups, digits[i:end])
	}

	return strings.Join(groups, " ")
}

// FormatMM normalizes an expiry month. A single digit is passed through so
// that 10/11/12 can be typed naturally; two digits are clamped into [01, 12]
// and zero-padded.
func FormatMM(s string) string {
	digits := onlyDigits(s, 2)
	if len(digits) < 2 {
		return digits
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return ""
	}

	if n < 1 {
		n = 1
	}

	if n > 12 {
		n = 12
	}

	return pad2(n)
}

// FormatYY normalizes a two-digit expiry year.
func FormatYY(s string) string {
	return onlyDigits(s, 2)
}

// FormatCVV normalizes a card security code (up to 4 digits).
func FormatCVV(s string) string {
	return onlyDigits(s, 4)
}

func onlyDigits(s string, limit int) string {
	var b strings.Builder

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == limit {
				break
			}
		}
	}

	return b.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder

	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}

		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}

	return strconv.Itoa(n)
}
