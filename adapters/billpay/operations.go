package billpay

import (
	"github.com/beevik/etree"

	"github.com/kevin07696/billpay-client/domain/models"
	pkgerrors "github.com/kevin07696/billpay-client/pkg/errors"
)

// Fixed error summaries per operation family
const (
	summaryPayment       = "An error occurred attempting to make the payment"
	summaryToken         = "An error occurred attempting to create the token"
	summaryReversal      = "An error occurred attempting to reverse the payment"
	summaryLoadBills     = "An error occurred attempting to load the bills"
	summarySecurePay     = "An error occurred attempting to load the hosted payment"
	summaryCustomer      = "An error occurred attempting to manage the customer"
	summaryPaymentMethod = "An error occurred attempting to manage the payment method"
)

// operation describes one gateway operation: the body element name it goes
// out as, the response tag it comes back under, the error summary for its
// family, and the decoder for its response shape.
type operation struct {
	wireName    string
	responseTag string
	summary     string
	decode      decodeFunc
}

// authOperation pairs an operation with the encoder for a normalized
// authorization request
type authOperation struct {
	operation
	encode func(*etree.Element, *models.AuthorizationRequest)
}

// The authorization routing table. Entries are constructed once and shared
// by every call; the ACH tokenize path has its own encoder but shares the
// GetToken wire operation and response tag with the card path.
var (
	opMakePayment = &authOperation{
		operation: operation{
			wireName:    "MakePayment",
			responseTag: "MakePaymentResponse",
			summary:     summaryPayment,
			decode:      decodeTransaction,
		},
		encode: encodePayment,
	}

	opMakePaymentReturnToken = &authOperation{
		operation: operation{
			wireName:    "MakePaymentReturnToken",
			responseTag: "MakePaymentReturnTokenResponse",
			summary:     summaryPayment,
			decode:      decodeTransactionWithToken,
		},
		encode: encodePayment,
	}

	opMakeBlindPayment = &authOperation{
		operation: operation{
			wireName:    "MakeBlindPayment",
			responseTag: "MakeBlindPaymentResponse",
			summary:     summaryPayment,
			decode:      decodeTransaction,
		},
		encode: encodePayment,
	}

	opMakeBlindPaymentReturnToken = &authOperation{
		operation: operation{
			wireName:    "MakeBlindPaymentReturnToken",
			responseTag: "MakeBlindPaymentReturnTokenResponse",
			summary:     summaryPayment,
			decode:      decodeTransactionWithToken,
		},
		encode: encodePayment,
	}

	opGetToken = &authOperation{
		operation: operation{
			wireName:    "GetToken",
			responseTag: "GetTokenResponse",
			summary:     summaryToken,
			decode:      decodeToken,
		},
		encode: encodeGetToken,
	}

	opGetACHToken = &authOperation{
		operation: operation{
			wireName:    "GetToken",
			responseTag: "GetTokenResponse",
			summary:     summaryToken,
			decode:      decodeToken,
		},
		encode: encodeGetACHToken,
	}
)

// Management operations
var (
	opReversePayment = &operation{
		wireName:    "ReversePayment",
		responseTag: "ReversePaymentResponse",
		summary:     summaryReversal,
		decode:      decodeTransaction,
	}

	opLoadBills = &operation{
		wireName:    "LoadBills",
		responseTag: "LoadBillsResponse",
		summary:     summaryLoadBills,
		decode:      decodeTransaction,
	}

	opLoadSecurePay = &operation{
		wireName:    "LoadSecurePay",
		responseTag: "LoadSecurePayResponse",
		summary:     summarySecurePay,
		decode:      decodeSecurePay,
	}

	opCreateCustomer = &operation{
		wireName:    "CreateCustomer",
		responseTag: "CreateCustomerResponse",
		summary:     summaryCustomer,
		decode:      decodeCustomer,
	}

	opUpdateCustomer = &operation{
		wireName:    "UpdateCustomer",
		responseTag: "UpdateCustomerResponse",
		summary:     summaryCustomer,
		decode:      decodeCustomer,
	}

	opDeleteCustomer = &operation{
		wireName:    "DeleteCustomer",
		responseTag: "DeleteCustomerResponse",
		summary:     summaryCustomer,
		decode:      decodeCustomer,
	}

	opCreatePaymentMethod = &operation{
		wireName:    "CreateCustomerAccount",
		responseTag: "CreateCustomerAccountResponse",
		summary:     summaryPaymentMethod,
		decode:      decodePaymentMethod,
	}

	opUpdatePaymentMethod = &operation{
		wireName:    "UpdateCustomerAccount",
		responseTag: "UpdateCustomerAccountResponse",
		summary:     summaryPaymentMethod,
		decode:      decodePaymentMethod,
	}

	opDeletePaymentMethod = &operation{
		wireName:    "DeleteCustomerAccount",
		responseTag: "DeleteCustomerAccountResponse",
		summary:     summaryPaymentMethod,
		decode:      decodePaymentMethod,
	}
)

// selectOperation resolves a normalized authorization request to its gateway
// operation. Sale fans out over the hosted-bill and multi-use-token flags;
// Verify requires a token request and fans out over the payment method kind.
// Every other combination has no routing entry.
func selectOperation(req *models.AuthorizationRequest) (*authOperation, error) {
	switch req.TransactionType {
	case models.TypeSale:
		switch {
		case req.IsBillDataHosted && req.RequestMultiUseToken:
			return opMakePaymentReturnToken, nil
		case req.IsBillDataHosted:
			return opMakePayment, nil
		case req.RequestMultiUseToken:
			return opMakeBlindPaymentReturnToken, nil
		default:
			return opMakeBlindPayment, nil
		}
	case models.TypeVerify:
		if !req.RequestMultiUseToken {
			return nil, pkgerrors.NewUnsupportedTransactionError()
		}
		if req.PaymentMethod.Kind == models.PaymentMethodACH {
			return opGetACHToken, nil
		}
		return opGetToken, nil
	default:
		return nil, pkgerrors.NewUnsupportedTransactionError()
	}
}
