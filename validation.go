package billpayclient

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/kevin07696/billpay-client/domain/models"
	pkgerrors "github.com/kevin07696/billpay-client/pkg/errors"
)

// The builder layer owns field-level validation; the gateway adapter assumes
// every request reaching it is well formed. Failures carry the full message
// list, not just the first.

var validate = validator.New(validator.WithRequiredStructEnabled())

type chargeParams struct {
	Currency string `validate:"required,len=3"`
}

type customerParams struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"omitempty,email"`
}

type securePayParams struct {
	CustomerEmail string `validate:"omitempty,email"`
}

// collectStructMessages runs the struct validator and appends one message
// per failed field
func collectStructMessages(v interface{}, messages *[]string) {
	err := validate.Struct(v)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		*messages = append(*messages, err.Error())
		return
	}

	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			*messages = append(*messages, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			*messages = append(*messages, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		default:
			*messages = append(*messages, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
	}
}

// validatePaymentDescriptor checks that exactly one payment method kind is
// populated and matches the declared kind
func validatePaymentDescriptor(pm models.PaymentMethod, messages *[]string) {
	switch pm.Kind {
	case models.PaymentMethodCard:
		if pm.Card == nil {
			*messages = append(*messages, "Card data is required for a card payment method")
		}
	case models.PaymentMethodACH:
		if pm.ACH == nil {
			*messages = append(*messages, "Bank account data is required for an ACH payment method")
		}
	case models.PaymentMethodToken:
		if pm.Token == "" {
			*messages = append(*messages, "A token value is required for a token payment method")
		}
	default:
		*messages = append(*messages, "A payment method is required")
	}
}

func validateCharge(req *models.AuthorizationRequest) error {
	var messages []string

	collectStructMessages(chargeParams{Currency: req.Currency}, &messages)
	validatePaymentDescriptor(req.PaymentMethod, &messages)

	if req.Amount.IsNegative() {
		messages = append(messages, "Amount must not be negative")
	}

	if len(req.Bills) == 0 {
		messages = append(messages, "At least one bill is required")
	} else if !models.TotalAmount(req.Bills).Equal(req.Amount) {
		messages = append(messages, "The sum of the bill amounts must match the payment amount")
	}

	if len(messages) > 0 {
		return pkgerrors.NewValidationError(messages...)
	}
	return nil
}

func validateVerify(req *models.AuthorizationRequest) error {
	var messages []string

	validatePaymentDescriptor(req.PaymentMethod, &messages)

	if req.PaymentMethod.Kind == models.PaymentMethodToken {
		messages = append(messages, "A token cannot be tokenized again")
	}

	if len(messages) > 0 {
		return pkgerrors.NewValidationError(messages...)
	}
	return nil
}

func validateReversal(req *models.ReversalRequest) error {
	var messages []string

	if req.TransactionID == "" {
		messages = append(messages, "A transaction id of a previous payment is required")
	}
	if req.Amount.IsNegative() {
		messages = append(messages, "Amount must not be negative")
	}
	if len(req.Bills) > 0 && !models.TotalAmount(req.Bills).Equal(req.Amount) {
		messages = append(messages, "The sum of the bill amounts must match the reversal amount")
	}

	if len(messages) > 0 {
		return pkgerrors.NewValidationError(messages...)
	}
	return nil
}

func validateBillLoad(bills []models.Bill) error {
	var messages []string

	if len(bills) == 0 {
		messages = append(messages, "At least one bill is required")
	}
	for i, bill := range bills {
		if bill.BillType == "" {
			messages = append(messages, fmt.Sprintf("Bill %d is missing its bill type", i+1))
		}
		if bill.Identifier1 == "" {
			messages = append(messages, fmt.Sprintf("Bill %d is missing its first identifier", i+1))
		}
	}

	if len(messages) > 0 {
		return pkgerrors.NewValidationError(messages...)
	}
	return nil
}

func validateSecurePay(data *models.HostedPaymentData) error {
	var messages []string

	if len(data.Bills) == 0 {
		messages = append(messages, "At least one bill is required")
	}
	if data.HostedPaymentType == "" {
		messages = append(messages, "A hosted payment type is required")
	}
	collectStructMessages(securePayParams{CustomerEmail: data.CustomerEmail}, &messages)

	if len(messages) > 0 {
		return pkgerrors.NewValidationError(messages...)
	}
	return nil
}

func validateCustomer(customer *models.Customer, requireKey bool) error {
	var messages []string

	if customer == nil {
		return pkgerrors.NewValidationError("A customer is required")
	}

	collectStructMessages(customerParams{
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
	}, &messages)

	if requireKey && customer.Key == "" {
		messages = append(messages, "A customer key is required")
	}

	if len(messages) > 0 {
		return pkgerrors.NewValidationError(messages...)
	}
	return nil
}

func validatePaymentMethod(pm *models.RecurringPaymentMethod, requireKey bool) error {
	var messages []string

	if pm == nil {
		return pkgerrors.NewValidationError("A payment method is required")
	}

	if pm.CustomerKey == "" {
		messages = append(messages, "A customer key is required")
	}
	if requireKey && pm.Key == "" {
		messages = append(messages, "A payment method key is required")
	}
	if !requireKey && pm.Card == nil && pm.ACH == nil {
		messages = append(messages, "Card or bank account data is required")
	}
	if pm.Card != nil && pm.ACH != nil {
		messages = append(messages, "Only one of card or bank account data may be set")
	}

	if len(messages) > 0 {
		return pkgerrors.NewValidationError(messages...)
	}
	return nil
}
