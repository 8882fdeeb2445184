// Package export writes link results as a flat CSV table.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/konnector-tools/billgraph/internal/linkresult"
	"github.com/konnector-tools/billgraph/internal/model"
)

// Header is the CSV header of the link table.
const Header = "record_id,bill_id,bill_date,vendor,beneficiary,subtype,amount,is_refund," +
	"debit_id,debit_date,debit_label,debit_amount," +
	"credit_id,credit_date,credit_label,credit_amount"

const (
	numFields      = 16
	colRecordID    = 0
	colBillID      = 1
	colBillDate    = 2
	colVendor      = 3
	colBeneficiary = 4
	colSubtype     = 5
	colAmount      = 6
	colIsRefund    = 7
	colDebit       = 8 // debit_id, then date, label, amount
	colCredit      = 12
)

// WriteRecords writes records to w (including header), in bill date order.
func WriteRecords(w io.Writer, records []model.LinkRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range linkresult.SortByBillDate(records) {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRecord converts a LinkRecord to a CSV row. Absent operations
// leave their columns empty.
func MarshalRecord(rec model.LinkRecord) []string {
	row := make([]string, numFields)
	row[colRecordID] = rec.Key
	row[colBillID] = rec.Bill.ID
	row[colBillDate] = rec.Bill.DisplayDate()
	row[colVendor] = rec.Bill.Vendor
	row[colBeneficiary] = rec.Bill.Beneficiary
	row[colSubtype] = rec.Bill.Subtype
	row[colAmount] = rec.Bill.Amount.String()
	row[colIsRefund] = strconv.FormatBool(rec.Bill.IsRefund)

	marshalOperation(row[colDebit:colDebit+4], rec.Debit)
	marshalOperation(row[colCredit:colCredit+4], rec.Credit)
	return row
}

func marshalOperation(cols []string, op *model.Operation) {
	if op == nil {
		return
	}
	cols[0] = op.ID
	cols[1] = op.DisplayDate()
	cols[2] = op.Label
	cols[3] = op.Amount.String()
}
