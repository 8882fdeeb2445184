package model

// dateLen is the length of the "YYYY-MM-DD" prefix of an ISO-8601 date.
const dateLen = 10

// Bill is a bill saved by a konnector, as dumped by the linker.
type Bill struct {
	ID          string `json:"_id"`
	Date        string `json:"date"`
	Vendor      string `json:"vendor"`
	Beneficiary string `json:"beneficiary,omitempty"`
	Subtype     string `json:"subtype,omitempty"`
	Amount      Amount `json:"amount"`
	IsRefund    bool   `json:"isRefund"`
}

// DisplayDate returns the day part of the bill date.
func (b Bill) DisplayDate() string {
	return truncateDate(b.Date)
}

// Operation is a bank operation (debit or credit).
type Operation struct {
	ID     string `json:"_id"`
	Date   string `json:"date"`
	Label  string `json:"label"`
	Amount Amount `json:"amount"`
}

// DisplayDate returns the day part of the operation date.
func (o Operation) DisplayDate() string {
	return truncateDate(o.Date)
}

// LinkRecord is one entry of the link results: a bill and the operations
// that paid it (Debit) and reimbursed it (Credit). Either may be nil.
type LinkRecord struct {
	Key    string     `json:"-"` // key in the link results object
	Bill   Bill       `json:"bill"`
	Debit  *Operation `json:"debitOperation,omitempty"`
	Credit *Operation `json:"creditOperation,omitempty"`
}

// Linked reports whether any operation was matched to the bill.
func (r LinkRecord) Linked() bool {
	return r.Debit != nil || r.Credit != nil
}

func truncateDate(d string) string {
	if len(d) <= dateLen {
		return d
	}
	return d[:dateLen]
}
