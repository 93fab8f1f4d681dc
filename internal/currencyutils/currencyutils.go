// Package currencyutils provides amount parsing and formatting for the
// statement formats.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCommaDecimal parses an MT940-style amount such as "100,50" or "100,".
// Only a comma is accepted as decimal separator; a period is rejected so that
// thousands-separated inputs are not silently misread.
func ParseCommaDecimal(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	if strings.Contains(s, ".") {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': unexpected '.'", amountStr)
	}

	intPart, frac, _ := strings.Cut(s, ",")
	if intPart == "" {
		intPart = "0"
	}
	standardized := intPart
	if frac != "" {
		standardized += "." + frac
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// FormatCommaDecimal renders the absolute value of amount with two decimals
// and a comma separator, the MT940 convention ("100,50").
func FormatCommaDecimal(amount decimal.Decimal) string {
	return strings.Replace(amount.Abs().StringFixed(2), ".", ",", 1)
}

// FormatFixed renders amount with two decimals and a period separator.
func FormatFixed(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
