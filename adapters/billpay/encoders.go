package billpay

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/kevin07696/billpay-client/domain/models"
)

// dateFormat is the gateway's textual date format
const dateFormat = "2006-01-02"

// Encoders fill one operation's body element with its fields. Element order
// is fixed; the gateway parses positionally. Absent optional fields are
// omitted entirely, while fields of a present-but-blank optional block (an
// address, a customer) are emitted as empty elements.

func encodePayment(body *etree.Element, req *models.AuthorizationRequest) {
	writePaymentMethod(body, req.PaymentMethod)
	writeAmount(body, "Amount", req.Amount)
	if !req.ConvenienceAmount.IsZero() {
		writeAmount(body, "ConvenienceAmount", req.ConvenienceAmount)
	}
	writeText(body, "Currency", req.Currency)
	writePaymentBills(body, req.Bills)
	writeAddress(body, req.Address)
	writeCustomer(body, req.Customer)
}

func encodeGetToken(body *etree.Element, req *models.AuthorizationRequest) {
	writeCard(body, req.PaymentMethod.Card)
	writeAddress(body, req.Address)
	writeText(body, "RequestToken", strconv.FormatBool(req.RequestMultiUseToken))
}

func encodeGetACHToken(body *etree.Element, req *models.AuthorizationRequest) {
	writeACH(body, req.PaymentMethod.ACH)
	writeAddress(body, req.Address)
	writeText(body, "RequestToken", strconv.FormatBool(req.RequestMultiUseToken))
}

func encodeReversal(body *etree.Element, req *models.ReversalRequest) {
	writeText(body, "TransactionId", req.TransactionID)
	writeAmount(body, "Amount", req.Amount)
	if !req.ConvenienceAmount.IsZero() {
		writeAmount(body, "ConvenienceAmount", req.ConvenienceAmount)
	}
	if len(req.Bills) > 0 {
		writePaymentBills(body, req.Bills)
	}
}

func encodeLoadBills(body *etree.Element, bills []models.Bill) {
	wrapper := body.CreateElement("Bills")
	for _, bill := range bills {
		el := wrapper.CreateElement("Bill")
		writeText(el, "BillType", bill.BillType)
		writeText(el, "Identifier1", bill.Identifier1)
		writeOptionalText(el, "Identifier2", bill.Identifier2)
		writeOptionalText(el, "Identifier3", bill.Identifier3)
		writeOptionalText(el, "Identifier4", bill.Identifier4)
		writeAmount(el, "Amount", bill.Amount)
		if !bill.DueDate.IsZero() {
			writeText(el, "DueDate", bill.DueDate.Format(dateFormat))
		}
		writeText(el, "Presentment", string(bill.Presentment))
		writeCustomer(el, bill.Customer)
	}
}

func encodeSecurePay(body *etree.Element, data *models.HostedPaymentData) {
	writeText(body, "HostedPaymentType", string(data.HostedPaymentType))
	writePaymentBills(body, data.Bills)
	writeText(body, "FirstName", data.CustomerFirstName)
	writeText(body, "LastName", data.CustomerLastName)
	writeText(body, "Email", data.CustomerEmail)
	writeOptionalText(body, "MobilePhone", data.CustomerPhoneMobile)
	writeAddress(body, data.CustomerAddress)
	writeText(body, "CustomerIsEditable", strconv.FormatBool(data.CustomerIsEditable))
}

func encodeCustomer(body *etree.Element, customer *models.Customer) {
	writeOptionalText(body, "CustomerKey", customer.Key)
	writeText(body, "FirstName", customer.FirstName)
	writeText(body, "LastName", customer.LastName)
	writeText(body, "Email", customer.Email)
	writeText(body, "HomePhone", customer.HomePhone)
	writeText(body, "MobilePhone", customer.MobilePhone)
	writeAddress(body, customer.Address)
}

func encodePaymentMethod(body *etree.Element, pm *models.RecurringPaymentMethod) {
	writeText(body, "CustomerKey", pm.CustomerKey)
	writeOptionalText(body, "PaymentMethodKey", pm.Key)
	writeText(body, "AccountName", pm.AccountName)
	if pm.Card != nil {
		writeCard(body, pm.Card)
	}
	if pm.ACH != nil {
		writeACH(body, pm.ACH)
	}
}

// Shared element writers

func writeText(parent *etree.Element, name, value string) {
	parent.CreateElement(name).SetText(value)
}

// writeOptionalText omits the element when the value is absent
func writeOptionalText(parent *etree.Element, name, value string) {
	if value == "" {
		return
	}
	writeText(parent, name, value)
}

func writeAmount(parent *etree.Element, name string, amount decimal.Decimal) {
	writeText(parent, name, amount.StringFixed(2))
}

func writePaymentMethod(parent *etree.Element, pm models.PaymentMethod) {
	switch pm.Kind {
	case models.PaymentMethodCard:
		writeCard(parent, pm.Card)
	case models.PaymentMethodACH:
		writeACH(parent, pm.ACH)
	case models.PaymentMethodToken:
		writeText(parent, "Token", pm.Token)
		if pm.TokenKind == models.TokenKindACH {
			writeText(parent, "TokenPaymentType", "ACH")
		} else {
			writeText(parent, "TokenPaymentType", "Card")
		}
	}
}

func writeCard(parent *etree.Element, card *models.CreditCard) {
	writeText(parent, "AccountNumber", card.Number)
	writeText(parent, "ExpirationMonth", strconv.Itoa(card.ExpMonth))
	writeText(parent, "ExpirationYear", strconv.Itoa(card.ExpYear))
	writeText(parent, "CVV", card.CVV)
	writeText(parent, "NameOnCard", card.CardHolderName)
}

func writeACH(parent *etree.Element, ach *models.ACHAccount) {
	writeText(parent, "RoutingNumber", ach.RoutingNumber)
	writeText(parent, "AccountNumber", ach.AccountNumber)
	writeText(parent, "AccountType", string(ach.AccountType))
	writeText(parent, "CheckType", string(ach.CheckType))
	writeText(parent, "SECCode", string(ach.SECCode))
	writeText(parent, "CheckHolderName", ach.CheckHolderName)
	writeText(parent, "BankName", ach.BankName)
}

// writePaymentBills emits the bill line items of a payment or reversal.
// Hosted bills are addressed by type and identifiers; blind bills carry the
// same shape with the bill data inline.
func writePaymentBills(parent *etree.Element, bills []models.Bill) {
	wrapper := parent.CreateElement("Bills")
	for _, bill := range bills {
		el := wrapper.CreateElement("Bill")
		writeOptionalText(el, "BillType", bill.BillType)
		writeText(el, "Identifier1", bill.Identifier1)
		writeOptionalText(el, "Identifier2", bill.Identifier2)
		writeOptionalText(el, "Identifier3", bill.Identifier3)
		writeOptionalText(el, "Identifier4", bill.Identifier4)
		writeAmount(el, "Amount", bill.Amount)
		if !bill.DueDate.IsZero() {
			writeText(el, "DueDate", bill.DueDate.Format(dateFormat))
		}
	}
}

// writeAddress emits a billing address block. A nil address is omitted; a
// present address emits every child, blank values included.
func writeAddress(parent *etree.Element, address *models.Address) {
	if address == nil {
		return
	}
	el := parent.CreateElement("BillingAddress")
	writeText(el, "StreetAddress1", address.StreetAddress1)
	writeText(el, "StreetAddress2", address.StreetAddress2)
	writeText(el, "City", address.City)
	writeText(el, "State", address.State)
	writeText(el, "PostalCode", address.PostalCode)
	writeText(el, "Country", address.Country)
}

// writeCustomer emits a customer block with the same present-vs-absent rule
// as addresses
func writeCustomer(parent *etree.Element, customer *models.Customer) {
	if customer == nil {
		return
	}
	el := parent.CreateElement("Customer")
	writeOptionalText(el, "CustomerKey", customer.Key)
	writeText(el, "FirstName", customer.FirstName)
	writeText(el, "LastName", customer.LastName)
	writeText(el, "Email", customer.Email)
	writeText(el, "HomePhone", customer.HomePhone)
	writeText(el, "MobilePhone", customer.MobilePhone)
	writeAddress(el, customer.Address)
}
