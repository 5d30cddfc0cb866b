package common

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a fixed point number with two decimal places, stored as
// hundredths. It holds money as well as percentages.
type Amount int64

// ParseAmount accepts "12", "12.5" and "-12.50". More than two fractional
// digits are rejected rather than rounded.
func ParseAmount(raw string) (Amount, error) {
	raw = strings.TrimSpace(raw)
	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	whole, fraction, hasFraction := strings.Cut(raw, ".")
	if !isDigits(whole) || len(fraction) > 2 || (hasFraction && !isDigits(fraction)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	for len(fraction) < 2 {
		fraction += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, raw)
	}
	hundredths, _ := strconv.ParseInt(fraction, 10, 64)
	if units > (1<<63-1-hundredths)/100 {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, raw)
	}

	a := Amount(units*100 + hundredths)
	if negative {
		a = -a
	}
	return a, nil
}

func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON takes both JSON numbers and numeric strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	parsed, err := ParseAmount(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
