package services

import (
	"regexp"
	"testing"
	"time"
)

func TestGetFiscalYear(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		expect string
	}{
		{"april_start", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), "26-27"},
		{"march_end", time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), "25-26"},
		{"january", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "25-26"},
		{"december", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), "25-26"},
		{"year_2000", time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC), "00-01"},
		{"century_wrap", time.Date(2099, time.May, 1, 0, 0, 0, 0, time.UTC), "99-00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetFiscalYear(tt.date)
			if got != tt.expect {
				t.Errorf("GetFiscalYear(%v) = %q, want %q", tt.date, got, tt.expect)
			}
		})
	}
}

func TestFormatDocNumber(t *testing.T) {
	got := formatDocNumber("QT", "25-26", "ab12cd34")
	if got != "SC-QT-25-26-AB12CD34" {
		t.Errorf("formatDocNumber() = %q", got)
	}
}

func TestGenerateDocNumbers(t *testing.T) {
	now := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)

	qt := GenerateQuotationNumber(now)
	if !regexp.MustCompile(`^SC-QT-26-27-[0-9A-F]{8}$`).MatchString(qt) {
		t.Errorf("unexpected quotation number %q", qt)
	}

	inv := GenerateInvoiceNumber(now)
	if !regexp.MustCompile(`^SC-INV-26-27-[0-9A-F]{8}$`).MatchString(inv) {
		t.Errorf("unexpected invoice number %q", inv)
	}

	if GenerateQuotationNumber(now) == qt {
		t.Error("expected distinct quotation numbers")
	}
}
