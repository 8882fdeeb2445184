package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayDate(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2020-01-05T00:00:00Z", "2020-01-05"},
		{"2020-01-05T23:59:59.999+02:00", "2020-01-05"},
		{"2020-01-05", "2020-01-05"},
		{"2020-01", "2020-01"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Bill{Date: tt.date}.DisplayDate(), "bill date %q", tt.date)
		assert.Equal(t, tt.want, Operation{Date: tt.date}.DisplayDate(), "operation date %q", tt.date)
	}
}

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		input     string
		wantText  string
		wantValue string
		numeric   bool
	}{
		{`42`, "42", "42", true},
		{`-42`, "-42", "-42", true},
		{`12.5`, "12.5", "12.5", true},
		{`1e3`, "1e3", "1000", true},
		{`"54.20"`, "54.20", "54.2", true},
		{`"29,99"`, "29,99", "0", false},
	}
	for _, tt := range tests {
		var a Amount
		require.NoError(t, json.Unmarshal([]byte(tt.input), &a), "input %s", tt.input)
		assert.Equal(t, tt.wantText, a.String(), "input %s", tt.input)

		d, ok := a.Decimal()
		assert.Equal(t, tt.numeric, ok, "input %s", tt.input)
		assert.Equal(t, tt.wantValue, d.String(), "input %s", tt.input)
	}
}

func TestAmountUnmarshal_Errors(t *testing.T) {
	for _, input := range []string{`true`, `{}`, `[1]`} {
		var a Amount
		assert.Error(t, json.Unmarshal([]byte(input), &a), "input %s", input)
	}
}

func TestAmountMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
	}{NewAmount("-54.2"), NewAmount("29,99")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": -54.2, "b": "29,99"}`, string(out))
}

func TestLinked(t *testing.T) {
	assert.False(t, LinkRecord{}.Linked())
	assert.True(t, LinkRecord{Debit: &Operation{ID: "o1"}}.Linked())
	assert.True(t, LinkRecord{Credit: &Operation{ID: "o2"}}.Linked())
}
