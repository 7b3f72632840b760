package handlers

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var errMalformedAmount = errors.New("malformed amount")

// parseAmount converts a decimal form value like "100", "100.5" or "100.50"
// into minor units. At most two fractional digits are accepted; anything
// finer would silently lose money.
func parseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, errMalformedAmount
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" || len(frac) > 2 {
		return 0, errMalformedAmount
	}

	// ParseInt alone is too lenient here: it accepts an embedded sign,
	// so "1.-5" would quietly move the wrong amount.
	if !allDigits(whole) || (frac != "" && !allDigits(frac)) {
		return 0, errMalformedAmount
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errMalformedAmount
	}
	if units > (math.MaxInt64-99)/100 {
		return 0, errMalformedAmount
	}

	cents := int64(0)
	if frac != "" {
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, errMalformedAmount
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}
	return units*100 + cents, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
