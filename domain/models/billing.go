package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillPresentment controls how a loaded bill is presented to the payer
type BillPresentment string

const (
	PresentmentFull    BillPresentment = "Full"
	PresentmentPartial BillPresentment = "Partial"
)

// Bill represents a billable line item associated with a payment or a bill
// load. Identifier1 is the primary lookup key at the gateway; the remaining
// identifiers are optional qualifiers.
type Bill struct {
	BillType    string
	Identifier1 string
	Identifier2 string
	Identifier3 string
	Identifier4 string
	Amount      decimal.Decimal
	DueDate     time.Time
	Presentment BillPresentment

	// Customer holds the bill-held customer info sent with bill loads.
	// Nil for payment line items.
	Customer *Customer
}

// TotalAmount sums the amounts of a bill collection
func TotalAmount(bills []Bill) decimal.Decimal {
	total := decimal.Zero
	for _, bill := range bills {
		total = total.Add(bill.Amount)
	}
	return total
}
