package billpay

import (
	"github.com/beevik/etree"

	"github.com/kevin07696/billpay-client/domain/models"
	pkgerrors "github.com/kevin07696/billpay-client/pkg/errors"
)

// decodeFunc extracts a normalized result from a raw response document
type decodeFunc func(responseTag string, raw []byte) (*models.TransactionResult, error)

// findResponse locates the expected response element anywhere in the
// returned document. Wrapper elements and unknown children are tolerated;
// a missing response tag is a contract mismatch.
func findResponse(responseTag string, raw []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, pkgerrors.NewProtocolError("malformed response XML: %v", err)
	}

	el := doc.FindElement("//" + responseTag)
	if el == nil {
		return nil, pkgerrors.NewProtocolError("response element <%s> not found", responseTag)
	}
	return el, nil
}

// decodeResult extracts the result code and message common to every
// response shape. The result code is required; the router must never see a
// result without one.
func decodeResult(responseTag string, raw []byte) (*etree.Element, *models.TransactionResult, error) {
	el, err := findResponse(responseTag, raw)
	if err != nil {
		return nil, nil, err
	}

	code := el.SelectElement("Code")
	if code == nil {
		return nil, nil, pkgerrors.NewProtocolError("response element <%s> is missing the result code", responseTag)
	}

	return el, &models.TransactionResult{
		Code:    code.Text(),
		Message: childText(el, "Message"),
	}, nil
}

// decodeTransaction handles the transaction-result shape: code, message,
// and the gateway transaction id
func decodeTransaction(responseTag string, raw []byte) (*models.TransactionResult, error) {
	el, result, err := decodeResult(responseTag, raw)
	if err != nil {
		return nil, err
	}
	result.TransactionID = childText(el, "TransactionId")
	return result, nil
}

// decodeToken handles the token-result shape returned by tokenization
// operations
func decodeToken(responseTag string, raw []byte) (*models.TransactionResult, error) {
	el, result, err := decodeResult(responseTag, raw)
	if err != nil {
		return nil, err
	}
	result.Token = childText(el, "Token")
	return result, nil
}

// decodeTransactionWithToken handles payment responses that also return a
// multi-use token
func decodeTransactionWithToken(responseTag string, raw []byte) (*models.TransactionResult, error) {
	el, result, err := decodeResult(responseTag, raw)
	if err != nil {
		return nil, err
	}
	result.TransactionID = childText(el, "TransactionId")
	result.Token = childText(el, "Token")
	return result, nil
}

// decodeSecurePay handles the hosted-payment identifier shape
func decodeSecurePay(responseTag string, raw []byte) (*models.TransactionResult, error) {
	el, result, err := decodeResult(responseTag, raw)
	if err != nil {
		return nil, err
	}
	result.PaymentIdentifier = childText(el, "PaymentIdentifier")
	return result, nil
}

// decodeCustomer handles customer record responses carrying the
// gateway-assigned customer key
func decodeCustomer(responseTag string, raw []byte) (*models.TransactionResult, error) {
	el, result, err := decodeResult(responseTag, raw)
	if err != nil {
		return nil, err
	}
	result.CustomerKey = childText(el, "CustomerKey")
	return result, nil
}

// decodePaymentMethod handles recurring payment method responses carrying
// the gateway-assigned payment method key
func decodePaymentMethod(responseTag string, raw []byte) (*models.TransactionResult, error) {
	el, result, err := decodeResult(responseTag, raw)
	if err != nil {
		return nil, err
	}
	result.PaymentMethodKey = childText(el, "PaymentMethodKey")
	return result, nil
}

func childText(el *etree.Element, name string) string {
	child := el.SelectElement(name)
	if child == nil {
		return ""
	}
	return child.Text()
}
