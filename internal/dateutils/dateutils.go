// Package dateutils converts between the date encodings used by the supported
// statement formats.
package dateutils

import (
	"time"

	"fjacquet/stmt-convert/internal/models"
)

// DateLayoutISO is the canonical value date layout.
const DateLayoutISO = "2006-01-02"

// FromMT940 converts the leading YYMMDD of an MT940 field into an ISO date in
// the 2000s (20YY-MM-DD). Values that are too short, contain non-digits or do
// not name a calendar day yield models.EpochDate and ok=false.
func FromMT940(value string) (iso string, ok bool) {
	if len(value) < 6 || !allDigits(value[:6]) {
		return models.EpochDate, false
	}
	candidate := "20" + value[0:2] + "-" + value[2:4] + "-" + value[4:6]
	if !IsISODate(candidate) {
		return models.EpochDate, false
	}
	return candidate, true
}

// ToMT940 renders an ISO date as YYMMDD by slicing positions [2:4], [5:7] and
// [8:10]. Inputs shorter than ten characters render as "000101".
func ToMT940(iso string) string {
	if len(iso) < 10 {
		return "000101"
	}
	return iso[2:4] + iso[5:7] + iso[8:10]
}

// NormalizeISO returns the first ten characters of s when they form a valid
// YYYY-MM-DD date (so "2023-01-05T10:00:00" becomes "2023-01-05"), and
// models.EpochDate otherwise.
func NormalizeISO(s string) string {
	if len(s) >= 10 && IsISODate(s[:10]) {
		return s[:10]
	}
	return models.EpochDate
}

// IsISODate reports whether s is exactly a valid YYYY-MM-DD date.
func IsISODate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse(DateLayoutISO, s)
	return err == nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
