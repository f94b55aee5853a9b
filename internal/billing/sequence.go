package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rapidbill/internal/domain"
)

// NextNumber derives the next sequential invoice number within a scope.
// With no prior number the sequence starts at {prefix}-{periodTag}-0001.
// Otherwise the segment after the last '-' is parsed, incremented and
// zero-padded back to four digits.
//
// A non-numeric trailing segment returns domain.ErrBadSequenceNumber rather
// than emitting a corrupted number.
func NextNumber(lastIssued, prefix, periodTag string) (string, error) {
	if lastIssued == "" {
		return fmt.Sprintf("%s-%s-0001", prefix, periodTag), nil
	}
	segments := strings.Split(lastIssued, "-")
	tail := segments[len(segments)-1]
	n, err := strconv.Atoi(tail)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrBadSequenceNumber, lastIssued)
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, periodTag, n+1), nil
}

// CreditNoteNumber marks an invoice number as a credit note. The marker is
// cosmetic; the underlying counter is shared with regular invoices.
func CreditNoteNumber(number string) string {
	return "CN-" + number
}

// PeriodTag returns the financial-year tag for a date. The Indian financial
// year runs April through March and is tagged by its starting year.
func PeriodTag(date time.Time) string {
	year := date.Year()
	if date.Month() < time.April {
		year--
	}
	return fmt.Sprintf("fy%d", year)
}
