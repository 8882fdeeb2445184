package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a bill or operation amount as written in the link results.
// The linker emits numbers, but some konnectors store amounts as strings,
// so the literal text is kept for display and parsed on demand.
type Amount struct {
	text  string
	value decimal.Decimal
	valid bool
}

// NewAmount returns the Amount for the literal text s.
func NewAmount(s string) Amount {
	a := Amount{text: s}
	if d, err := decimal.NewFromString(strings.TrimSpace(s)); err == nil {
		a.value = d
		a.valid = true
	}
	return a
}

// String returns the amount exactly as it appeared in the input.
func (a Amount) String() string {
	return a.text
}

// Decimal returns the numeric value. ok is false when the text is not a number.
func (a Amount) Decimal() (d decimal.Decimal, ok bool) {
	return a.value, a.valid
}

// IsZero reports whether the amount was never set.
func (a Amount) IsZero() bool {
	return a.text == ""
}

// UnmarshalJSON accepts a JSON number or a JSON string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty amount")
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("parsing amount %s: %w", data, err)
		}
		*a = NewAmount(s)
	case c == '-' || (c >= '0' && c <= '9'):
		*a = NewAmount(string(data))
	default:
		return fmt.Errorf("amount must be a number or a string, got %s", data)
	}
	return nil
}

// MarshalJSON writes numeric amounts as JSON numbers and anything else as a string.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.valid && json.Valid([]byte(a.text)) {
		return []byte(a.text), nil
	}
	return json.Marshal(a.text)
}
