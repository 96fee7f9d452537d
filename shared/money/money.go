package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Amount is a plain-number monetary value. The listing store is loose about
// price typing on reads: a value written as 4500 can come back as "4,500",
// "₹4500/mo" or "Rs. 4,500 / month". Amount renormalizes every read at the
// decode boundary so no call site ever sees a formatted string.
type Amount float64

// Parse extracts the numeric value from a loosely formatted price string.
// It strips currency symbols, grouping separators and period suffixes such
// as "/mo". A string with no digits at all is a parse failure.
func Parse(raw string) (Amount, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("empty amount")
	}

	var builder strings.Builder

	seenDigit := false

	for _, r := range trimmed {
		switch {
		case unicode.IsDigit(r):
			seenDigit = true

			builder.WriteRune(r)
		case r == '.' && seenDigit:
			builder.WriteRune(r)
		case r == '-' && builder.Len() == 0:
			builder.WriteRune(r)
		case r == '/':
			// Everything after a slash is a period suffix ("/mo", "/ month").
			if seenDigit {
				value, err := strconv.ParseFloat(builder.String(), 64)
				if err != nil {
					return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
				}

				return Amount(value), nil
			}
		}
	}

	if !seenDigit {
		return 0, fmt.Errorf("no numeric value in amount %q", raw)
	}

	value, err := strconv.ParseFloat(builder.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}

	return Amount(value), nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}

// UnmarshalJSON accepts either a JSON number or a formatted string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*a = Amount(number)

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("amount must be a number or a string: %w", err)
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a)) //nolint:wrapcheck
}

// Scan implements sql.Scanner with the same leniency as UnmarshalJSON.
func (a *Amount) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*a = 0

		return nil
	case float64:
		*a = Amount(value)

		return nil
	case int64:
		*a = Amount(value)

		return nil
	case []byte:
		parsed, err := Parse(string(value))
		if err != nil {
			return err
		}

		*a = parsed

		return nil
	case string:
		parsed, err := Parse(value)
		if err != nil {
			return err
		}

		*a = parsed

		return nil
	default:
		return fmt.Errorf("cannot scan %T into Amount", src)
	}
}

// Value implements driver.Valuer; amounts are always written as plain numbers.
func (a Amount) Value() (driver.Value, error) {
	return float64(a), nil
}
