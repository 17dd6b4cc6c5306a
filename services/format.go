package services

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatRupees formats an amount as "Rs. 1,234,567.5", grouping thousands
// and keeping at most two decimal places with trailing zeros dropped.
func FormatRupees(amount float64) string {
	return "Rs. " + humanize.CommafWithDigits(amount, 2)
}

// FormatCount formats a quantity such as a brick count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatQty returns whole numbers without decimals and fractional values with two.
func FormatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return humanize.Comma(int64(qty))
	}
	return humanize.CommafWithDigits(qty, 2)
}

// AmountToWords spells out a rupee amount rounded to the nearest rupee.
// Example: 112145 → "One Hundred and Twelve Thousand One Hundred and Forty Five Rupees Only".
func AmountToWords(amount float64) string {
	if amount < 0 {
		return "Minus " + AmountToWords(-amount)
	}

	rupees := int64(math.Round(amount))
	if rupees == 0 {
		return "Zero Rupees Only"
	}
	return convertToWords(rupees) + " Rupees Only"
}

var scales = []struct {
	value int64
	name  string
}{
	{1_000_000_000, "Billion"},
	{1_000_000, "Million"},
	{1_000, "Thousand"},
}

func convertToWords(n int64) string {
	var parts []string
	for _, s := range scales {
		if n >= s.value {
			parts = append(parts, convertUnder1000(n/s.value, false)+" "+s.name)
			n %= s.value
		}
	}
	if n > 0 {
		parts = append(parts, convertUnder1000(n, len(parts) > 0))
	}
	return strings.Join(parts, " ")
}

// convertUnder1000 spells 1..999. When trailing is set and there is no
// hundreds part, the result is joined with "and" ("... Thousand and Five").
func convertUnder1000(n int64, trailing bool) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, convertUnder1000(n/100, false)+" Hundred")
		n %= 100
	}
	if n > 0 {
		if len(parts) > 0 || trailing {
			parts = append(parts, "and "+convertUnder100(n))
		} else {
			parts = append(parts, convertUnder100(n))
		}
	}
	return strings.Join(parts, " ")
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
