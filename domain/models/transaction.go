package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType represents the caller's declared intent
type TransactionType string

const (
	TypeSale     TransactionType = "sale"
	TypeVerify   TransactionType = "verify"
	TypeReversal TransactionType = "reversal"
)

// AuthorizationRequest is the normalized parameter set handed to the
// gateway's authorization path. The builder layer validates it; the core
// assumes it is well formed (exactly one payment method kind populated,
// non-negative amount, bill amounts summing to the declared total for sales).
type AuthorizationRequest struct {
	TransactionType      TransactionType
	PaymentMethod        PaymentMethod
	Amount               decimal.Decimal
	ConvenienceAmount    decimal.Decimal
	Currency             string
	Bills                []Bill
	Address              *Address
	Customer             *Customer
	IsBillDataHosted     bool
	RequestMultiUseToken bool
}

// ReversalRequest reverses a previously executed payment. TransactionID is
// the gateway-assigned id of the prior transaction and is required. Bills,
// when present, replace the original bill allocation for a partial reversal.
type ReversalRequest struct {
	TransactionID     string
	Amount            decimal.Decimal
	ConvenienceAmount decimal.Decimal
	Bills             []Bill
}

// TransactionResult is the normalized outcome of a gateway call. Code is the
// gateway's result code verbatim; "0" denotes success. At most one of
// TransactionID, Token, and PaymentIdentifier is populated, depending on the
// operation that produced the result.
type TransactionResult struct {
	Code              string
	Message           string
	TransactionID     string
	Token             string
	PaymentIdentifier string
	CustomerKey       string
	PaymentMethodKey  string
}

// Approved reports whether the gateway accepted the transaction
func (r *TransactionResult) Approved() bool {
	return r.Code == "0"
}
