// Package stats summarizes link results.
package stats

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/konnector-tools/billgraph/internal/linkresult"
	"github.com/konnector-tools/billgraph/internal/model"
)

// Summary holds counts and totals over a set of link records. Bills and
// operations are counted once per id.
type Summary struct {
	Records     int
	Bills       int
	Refunds     int
	DebitLinks  int // records with a debit operation
	CreditLinks int // records with a credit operation
	Operations  int

	// Unlinked lists bills no record links to any operation, in bill date order.
	Unlinked []model.Bill

	BillTotal   decimal.Decimal
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal

	// NonNumeric counts amounts left out of the totals because they are not numbers.
	NonNumeric int
}

// Summarize computes the Summary of records.
func Summarize(records []model.LinkRecord) Summary {
	s := Summary{Records: len(records)}

	bills := make(map[string]bool)
	linked := make(map[string]bool)
	ops := make(map[string]bool)

	add := func(total *decimal.Decimal, a model.Amount) {
		d, ok := a.Decimal()
		if !ok {
			s.NonNumeric++
			return
		}
		*total = total.Add(d)
	}

	sorted := linkresult.SortByBillDate(records)
	for _, rec := range sorted {
		if rec.Linked() {
			linked[rec.Bill.ID] = true
		}
		if !bills[rec.Bill.ID] {
			bills[rec.Bill.ID] = true
			if rec.Bill.IsRefund {
				s.Refunds++
			}
			add(&s.BillTotal, rec.Bill.Amount)
		}
		if rec.Debit != nil {
			s.DebitLinks++
			if !ops[rec.Debit.ID] {
				ops[rec.Debit.ID] = true
				add(&s.DebitTotal, rec.Debit.Amount)
			}
		}
		if rec.Credit != nil {
			s.CreditLinks++
			if !ops[rec.Credit.ID] {
				ops[rec.Credit.ID] = true
				add(&s.CreditTotal, rec.Credit.Amount)
			}
		}
	}
	s.Bills = len(bills)
	s.Operations = len(ops)

	seen := make(map[string]bool)
	for _, rec := range sorted {
		if linked[rec.Bill.ID] || seen[rec.Bill.ID] {
			continue
		}
		seen[rec.Bill.ID] = true
		s.Unlinked = append(s.Unlinked, rec.Bill)
	}
	return s
}

// WriteText writes a human-readable report.
func (s Summary) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"records", fmt.Sprint(s.Records)},
		{"bills", fmt.Sprint(s.Bills)},
		{"refunds", fmt.Sprint(s.Refunds)},
		{"operations", fmt.Sprint(s.Operations)},
		{"paid by", fmt.Sprint(s.DebitLinks)},
		{"reimbursed by", fmt.Sprint(s.CreditLinks)},
		{"unlinked bills", fmt.Sprint(len(s.Unlinked))},
		{"bill total", s.BillTotal.StringFixed(2)},
		{"debit total", s.DebitTotal.StringFixed(2)},
		{"credit total", s.CreditTotal.StringFixed(2)},
	}
	if s.NonNumeric > 0 {
		rows = append(rows, [2]string{"non-numeric amounts", fmt.Sprint(s.NonNumeric)})
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	if len(s.Unlinked) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nunlinked:"); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	for _, b := range s.Unlinked {
		if _, err := fmt.Fprintf(w, "  %s  %s  %s  %s\n", b.DisplayDate(), b.ID, b.Vendor, b.Amount); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	return nil
}
