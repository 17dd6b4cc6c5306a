package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GetFiscalYear returns the April–March fiscal year label for a date.
// Jan 2026 → "25-26", May 2026 → "26-27"
func GetFiscalYear(t time.Time) string {
	startYear := t.Year()
	if t.Month() < time.April {
		startYear--
	}
	return fmt.Sprintf("%02d-%02d", startYear%100, (startYear+1)%100)
}

// formatDocNumber builds "SC-{kind}-{fiscal year}-{suffix}".
func formatDocNumber(kind, fiscalYear, suffix string) string {
	return fmt.Sprintf("SC-%s-%s-%s", kind, fiscalYear, strings.ToUpper(suffix))
}

// GenerateQuotationNumber returns a reference number for a quotation issued at now.
// Quotations are not stored, so the suffix is random rather than sequential.
func GenerateQuotationNumber(now time.Time) string {
	return formatDocNumber("QT", GetFiscalYear(now), randomSuffix())
}

// GenerateInvoiceNumber returns a reference number for an invoice issued at now.
func GenerateInvoiceNumber(now time.Time) string {
	return formatDocNumber("INV", GetFiscalYear(now), randomSuffix())
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
