package linkresult

import (
	"fmt"

	"github.com/konnector-tools/billgraph/internal/model"
)

// raw* types mirror the JSON shape with pointers so that absent fields
// can be told apart from zero values.

type rawRecord struct {
	Bill   *rawBill      `json:"bill"`
	Debit  *rawOperation `json:"debitOperation"`
	Credit *rawOperation `json:"creditOperation"`
}

type rawBill struct {
	ID          *string       `json:"_id"`
	Date        *string       `json:"date"`
	Vendor      *string       `json:"vendor"`
	Beneficiary string        `json:"beneficiary"`
	Subtype     string        `json:"subtype"`
	Amount      *model.Amount `json:"amount"`
	IsRefund    *bool         `json:"isRefund"`
}

type rawOperation struct {
	ID     *string       `json:"_id"`
	Date   *string       `json:"date"`
	Label  *string       `json:"label"`
	Amount *model.Amount `json:"amount"`
}

func missing(key, field string) error {
	return fmt.Errorf("record %q: %s: %w", key, field, ErrMissingField)
}

func (r rawRecord) record(key string) (model.LinkRecord, error) {
	if r.Bill == nil {
		return model.LinkRecord{}, missing(key, "bill")
	}
	bill, err := r.Bill.bill(key)
	if err != nil {
		return model.LinkRecord{}, err
	}

	rec := model.LinkRecord{Key: key, Bill: bill}
	if !r.Debit.empty() {
		op, err := r.Debit.operation(key, "debitOperation")
		if err != nil {
			return model.LinkRecord{}, err
		}
		rec.Debit = &op
	}
	if !r.Credit.empty() {
		op, err := r.Credit.operation(key, "creditOperation")
		if err != nil {
			return model.LinkRecord{}, err
		}
		rec.Credit = &op
	}
	return rec, nil
}

func (b rawBill) bill(key string) (model.Bill, error) {
	switch {
	case b.ID == nil:
		return model.Bill{}, missing(key, "bill._id")
	case b.Date == nil:
		return model.Bill{}, missing(key, "bill.date")
	case b.Vendor == nil:
		return model.Bill{}, missing(key, "bill.vendor")
	case b.Amount == nil:
		return model.Bill{}, missing(key, "bill.amount")
	case b.IsRefund == nil:
		return model.Bill{}, missing(key, "bill.isRefund")
	}
	return model.Bill{
		ID:          *b.ID,
		Date:        *b.Date,
		Vendor:      *b.Vendor,
		Beneficiary: b.Beneficiary,
		Subtype:     b.Subtype,
		Amount:      *b.Amount,
		IsRefund:    *b.IsRefund,
	}, nil
}

// empty reports whether the operation is absent, null or an empty object.
func (o *rawOperation) empty() bool {
	return o == nil || (o.ID == nil && o.Date == nil && o.Label == nil && o.Amount == nil)
}

func (o *rawOperation) operation(key, name string) (model.Operation, error) {
	switch {
	case o.ID == nil:
		return model.Operation{}, missing(key, name+"._id")
	case o.Date == nil:
		return model.Operation{}, missing(key, name+".date")
	case o.Label == nil:
		return model.Operation{}, missing(key, name+".label")
	case o.Amount == nil:
		return model.Operation{}, missing(key, name+".amount")
	}
	return model.Operation{
		ID:     *o.ID,
		Date:   *o.Date,
		Label:  *o.Label,
		Amount: *o.Amount,
	}, nil
}
