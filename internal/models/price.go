package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Price is a non-negative decimal amount. On the wire it is a two-place
// decimal string ("12.50"), matching what the frontend renders directly;
// in the database it is stored as a plain numeric column.
type Price float64

// MarshalJSON formats the price as a quoted two-place decimal string.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

// UnmarshalJSON accepts either a JSON number or a decimal string.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", s, err)
	}
	*p = Price(v)
	return nil
}

// String renders the price with exactly two decimal places.
func (p Price) String() string {
	return strconv.FormatFloat(float64(p), 'f', 2, 64)
}
