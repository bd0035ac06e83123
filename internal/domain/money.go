package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in cents. Prices are stored and multiplied as integers
// so totals are exact; conversion to a decimal string happens only at the edges.
type Money int64

// maxUnits is the largest whole amount whose cents still fit in an int64.
const maxUnits = (math.MaxInt64 - 99) / 100

// ParseMoney converts a decimal string with at most two fractional digits
// ("899.99", "100", "0.5") into Money. Negative amounts are rejected.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: amount is empty", ErrValidation)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || strings.HasPrefix(whole, "-") || strings.HasPrefix(whole, "+") {
		return 0, fmt.Errorf("%w: %q is not a valid amount", ErrValidation, s)
	}
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return 0, fmt.Errorf("%w: %q must have one or two decimal places", ErrValidation, s)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid amount", ErrValidation, s)
	}
	if units > maxUnits {
		return 0, fmt.Errorf("%w: %q is too large", ErrValidation, s)
	}

	var cents int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || strings.HasPrefix(frac, "-") || strings.HasPrefix(frac, "+") {
			return 0, fmt.Errorf("%w: %q is not a valid amount", ErrValidation, s)
		}
	}

	return Money(units*100 + cents), nil
}

// Times multiplies the amount by a whole quantity, e.g. price per traveller × travellers.
func (m Money) Times(n int) Money {
	return m * Money(n)
}

// String formats the amount with exactly two decimal places ("300.00").
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
