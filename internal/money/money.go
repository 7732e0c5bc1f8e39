// Package money converts between external amount strings and cents, the
// only representation the store persists.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// symbols stripped from external amount strings before parsing.
var symbols = []string{"$", "€", "£"}

// ParseAmount converts an external amount string to cents. Currency symbols
// and thousands separators are stripped, the remainder is parsed as a
// decimal value and rounded to the nearest cent.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	for _, sym := range symbols {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, errors.New("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.Shift(2).Round(0).IntPart(), nil
}

// FormatCents renders cents as a major-unit value with two decimals.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
