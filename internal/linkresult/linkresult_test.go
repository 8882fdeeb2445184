package linkresult

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konnector-tools/billgraph/internal/model"
)

const testdataPath = "../../testdata/link-results.json"

func keys(records []model.LinkRecord) []string {
	var out []string
	for _, r := range records {
		out = append(out, r.Key)
	}
	return out
}

func TestLoadTestdata(t *testing.T) {
	records, err := Load(testdataPath)
	require.NoError(t, err)
	require.Len(t, records, 4)

	// Document order is preserved.
	assert.Equal(t, []string{"b-edf-1", "b-ameli-1", "b-ameli-2", "b-free-1"}, keys(records))

	edf := records[0]
	assert.Equal(t, "b-edf-1", edf.Bill.ID)
	assert.Equal(t, "EDF", edf.Bill.Vendor)
	assert.Empty(t, edf.Bill.Beneficiary)
	assert.Empty(t, edf.Bill.Subtype)
	assert.Equal(t, "54.2", edf.Bill.Amount.String())
	assert.False(t, edf.Bill.IsRefund)
	require.NotNil(t, edf.Debit)
	assert.Equal(t, "op-edf", edf.Debit.ID)
	assert.Equal(t, "PRLV EDF", edf.Debit.Label)
	assert.Equal(t, "-54.2", edf.Debit.Amount.String())
	assert.Nil(t, edf.Credit)

	ameli := records[1]
	assert.True(t, ameli.Bill.IsRefund)
	assert.Equal(t, "Jeanne Dupont", ameli.Bill.Beneficiary)
	assert.Equal(t, "CONSULTATION", ameli.Bill.Subtype)
	require.NotNil(t, ameli.Debit)
	require.NotNil(t, ameli.Credit)
	assert.Equal(t, "op-cpam", ameli.Credit.ID)

	free := records[3]
	assert.False(t, free.Linked())
	assert.Equal(t, "29,99", free.Bill.Amount.String())
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"1": {"bill": `), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestRead_Empty(t *testing.T) {
	records, err := Read(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRead_NotAnObject(t *testing.T) {
	for _, input := range []string{``, `[]`, `"x"`, `42`, `null`} {
		_, err := Read(strings.NewReader(input))
		assert.Error(t, err, "input %q", input)
	}
}

func TestRead_TrailingData(t *testing.T) {
	_, err := Read(strings.NewReader(`{} {}`))
	assert.Error(t, err)
}

func TestRead_DuplicateKey(t *testing.T) {
	input := `{
		"a": {"bill": {"_id": "b1", "date": "2020-01-01", "vendor": "V1", "amount": 1, "isRefund": false}},
		"b": {"bill": {"_id": "b2", "date": "2020-01-02", "vendor": "V2", "amount": 2, "isRefund": false}},
		"a": {"bill": {"_id": "b3", "date": "2020-01-03", "vendor": "V3", "amount": 3, "isRefund": true}}
	}`
	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"a", "b"}, keys(records))
	assert.Equal(t, "b3", records[0].Bill.ID)
}

func TestRead_OptionalOperations(t *testing.T) {
	input := `{
		"1": {"bill": {"_id": "b1", "date": "2020-01-01", "vendor": "V", "amount": 1, "isRefund": false},
		      "debitOperation": null, "creditOperation": {}}
	}`
	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Debit)
	assert.Nil(t, records[0].Credit)
}

func TestRead_MissingFields(t *testing.T) {
	bill := func(omit string) string {
		fields := map[string]string{
			"_id":      `"_id": "b1"`,
			"date":     `"date": "2020-01-01"`,
			"vendor":   `"vendor": "V"`,
			"amount":   `"amount": 1`,
			"isRefund": `"isRefund": false`,
		}
		var parts []string
		for _, k := range []string{"_id", "date", "vendor", "amount", "isRefund"} {
			if k != omit {
				parts = append(parts, fields[k])
			}
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	okBill := bill("")

	tests := []struct {
		name  string
		input string
		field string
	}{
		{"no bill", `{"r": {"debitOperation": {"_id": "o1", "date": "d", "label": "l", "amount": 1}}}`, "bill"},
		{"null bill", `{"r": {"bill": null}}`, "bill"},
		{"bill id", `{"r": {"bill": ` + bill("_id") + `}}`, "bill._id"},
		{"bill date", `{"r": {"bill": ` + bill("date") + `}}`, "bill.date"},
		{"bill vendor", `{"r": {"bill": ` + bill("vendor") + `}}`, "bill.vendor"},
		{"bill amount", `{"r": {"bill": ` + bill("amount") + `}}`, "bill.amount"},
		{"bill refund flag", `{"r": {"bill": ` + bill("isRefund") + `}}`, "bill.isRefund"},
		{"debit label", `{"r": {"bill": ` + okBill + `, "debitOperation": {"_id": "o1", "date": "d", "amount": 1}}}`, "debitOperation.label"},
		{"credit amount", `{"r": {"bill": ` + okBill + `, "creditOperation": {"_id": "o1", "date": "d", "label": "l"}}}`, "creditOperation.amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), `record "r"`)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestRead_BadAmountType(t *testing.T) {
	input := `{"r": {"bill": {"_id": "b1", "date": "2020-01-01", "vendor": "V", "amount": true, "isRefund": false}}}`
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `record "r"`)
}

func TestSortByBillDate(t *testing.T) {
	rec := func(key, date string) model.LinkRecord {
		return model.LinkRecord{Key: key, Bill: model.Bill{ID: key, Date: date}}
	}
	records := []model.LinkRecord{
		rec("c", "2020-03-01T00:00:00Z"),
		rec("a1", "2020-01-01T00:00:00Z"),
		rec("b", "2020-02-01T00:00:00Z"),
		rec("a2", "2020-01-01T00:00:00Z"),
	}

	sorted := SortByBillDate(records)
	assert.Equal(t, []string{"a1", "a2", "b", "c"}, keys(sorted))

	// Input is left untouched.
	assert.Equal(t, []string{"c", "a1", "b", "a2"}, keys(records))
}
