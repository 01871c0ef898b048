package billpay

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin07696/billpay-client/domain/models"
)

func encodeToElement(t *testing.T, encode func(*etree.Element)) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	body := doc.CreateElement("Body")
	encode(body)
	return body
}

func TestEncodePayment_SingleBill(t *testing.T) {
	req := &models.AuthorizationRequest{
		TransactionType:  models.TypeSale,
		PaymentMethod:    cardMethod(),
		Amount:           decimal.NewFromInt(50),
		Currency:         "USD",
		IsBillDataHosted: true,
		Bills: []models.Bill{
			{Identifier1: "12345", Amount: decimal.NewFromInt(50)},
		},
	}

	body := encodeToElement(t, func(el *etree.Element) {
		encodePayment(el, req)
	})

	assert.Equal(t, "50.00", body.SelectElement("Amount").Text())
	assert.Equal(t, "USD", body.SelectElement("Currency").Text())

	bills := body.SelectElement("Bills").SelectElements("Bill")
	require.Len(t, bills, 1)
	assert.Equal(t, "12345", bills[0].SelectElement("Identifier1").Text())
	assert.Equal(t, "50.00", bills[0].SelectElement("Amount").Text())
	// hosted bills carry no type element
	assert.Nil(t, bills[0].SelectElement("BillType"))
}

func TestEncodePayment_CardFieldsComeFirst(t *testing.T) {
	req := &models.AuthorizationRequest{
		PaymentMethod: cardMethod(),
		Amount:        decimal.NewFromInt(10),
		Currency:      "USD",
		Bills:         []models.Bill{{Identifier1: "1", Amount: decimal.NewFromInt(10)}},
	}

	body := encodeToElement(t, func(el *etree.Element) {
		encodePayment(el, req)
	})

	children := body.ChildElements()
	require.NotEmpty(t, children)
	assert.Equal(t, "AccountNumber", children[0].Tag)
	assert.Equal(t, "ExpirationMonth", children[1].Tag)
	assert.Equal(t, "ExpirationYear", children[2].Tag)
	assert.Equal(t, "CVV", children[3].Tag)
	assert.Equal(t, "NameOnCard", children[4].Tag)
	assert.Equal(t, "Amount", children[5].Tag)
}

func TestEncodePayment_TokenMethod(t *testing.T) {
	req := &models.AuthorizationRequest{
		PaymentMethod: models.TokenPaymentMethod("tok_987", models.TokenKindACH),
		Amount:        decimal.NewFromInt(25),
		Currency:      "USD",
		Bills:         []models.Bill{{Identifier1: "1", Amount: decimal.NewFromInt(25)}},
	}

	body := encodeToElement(t, func(el *etree.Element) {
		encodePayment(el, req)
	})

	assert.Equal(t, "tok_987", body.SelectElement("Token").Text())
	assert.Equal(t, "ACH", body.SelectElement("TokenPaymentType").Text())
}

func TestEncodePayment_ConvenienceAmountOmittedWhenZero(t *testing.T) {
	req := &models.AuthorizationRequest{
		PaymentMethod: cardMethod(),
		Amount:        decimal.NewFromInt(10),
		Currency:      "USD",
	}

	body := encodeToElement(t, func(el *etree.Element) {
		encodePayment(el, req)
	})

	assert.Nil(t, body.SelectElement("ConvenienceAmount"))
}

func TestEncodePayment_AbsentAddressOmitted_BlankAddressEmitted(t *testing.T) {
	withoutAddress := &models.AuthorizationRequest{
		PaymentMethod: cardMethod(),
		Amount:        decimal.NewFromInt(10),
		Currency:      "USD",
	}
	body := encodeToElement(t, func(el *etree.Element) {
		encodePayment(el, withoutAddress)
	})
	assert.Nil(t, body.SelectElement("BillingAddress"))

	withBlankAddress := &models.AuthorizationRequest{
		PaymentMethod: cardMethod(),
		Amount:        decimal.NewFromInt(10),
		Currency:      "USD",
		Address:       &models.Address{PostalCode: "12345"},
	}
	body = encodeToElement(t, func(el *etree.Element) {
		encodePayment(el, withBlankAddress)
	})

	address := body.SelectElement("BillingAddress")
	require.NotNil(t, address)
	assert.Equal(t, "12345", address.SelectElement("PostalCode").Text())
	// present-but-blank fields still travel as empty elements
	require.NotNil(t, address.SelectElement("StreetAddress1"))
	assert.Equal(t, "", address.SelectElement("StreetAddress1").Text())
}

func TestEncodeGetToken_RequestTokenFlag(t *testing.T) {
	req := &models.AuthorizationRequest{
		TransactionType:      models.TypeVerify,
		PaymentMethod:        cardMethod(),
		RequestMultiUseToken: true,
		Address:              &models.Address{PostalCode: "12345"},
	}

	body := encodeToElement(t, func(el *etree.Element) {
		encodeGetToken(el, req)
	})

	assert.Equal(t, "true", body.SelectElement("RequestToken").Text())
	assert.Equal(t, "4444444444444448", body.SelectElement("AccountNumber").Text())
	assert.Equal(t, "12", body.SelectElement("ExpirationMonth").Text())
}

func TestEncodeGetACHToken_BankFields(t *testing.T) {
	req := &models.AuthorizationRequest{
		TransactionType:      models.TypeVerify,
		PaymentMethod:        achMethod(),
		RequestMultiUseToken: true,
	}

	body := encodeToElement(t, func(el *etree.Element) {
		encodeGetACHToken(el, req)
	})

	assert.Equal(t, "064000017", body.SelectElement("RoutingNumber").Text())
	assert.Equal(t, "12345", body.SelectElement("AccountNumber").Text())
	assert.Equal(t, "Checking", body.SelectElement("AccountType").Text())
	assert.Equal(t, "true", body.SelectElement("RequestToken").Text())
}

func TestEncodeReversal_WithReplacementBills(t *testing.T) {
	req := &models.ReversalRequest{
		TransactionID: "98765",
		Amount:        decimal.NewFromInt(10),
		Bills: []models.Bill{
			{Identifier1: "123", Amount: decimal.NewFromInt(5)},
			{Identifier1: "321", Amount: decimal.NewFromInt(5)},
		},
	}

	body := encodeToElement(t, func(el *etree.Element) {
		encodeReversal(el, req)
	})

	assert.Equal(t, "98765", body.SelectElement("TransactionId").Text())
	assert.Equal(t, "10.00", body.SelectElement("Amount").Text())
	assert.Len(t, body.SelectElement("Bills").SelectElements("Bill"), 2)
}

func TestEncodeReversal_NoBillsElementWhenFull(t *testing.T) {
	req := &models.ReversalRequest{
		TransactionID: "98765",
		Amount:        decimal.NewFromInt(50),
	}

	body := encodeToElement(t, func(el *etree.Element) {
		encodeReversal(el, req)
	})

	assert.Nil(t, body.SelectElement("Bills"))
}

func TestEncodeLoadBills_FullBillData(t *testing.T) {
	due := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	bills := []models.Bill{
		{
			BillType:    "Tax Payments",
			Identifier1: "12345",
			Identifier2: "23456",
			Amount:      decimal.NewFromInt(50),
			DueDate:     due,
			Presentment: models.PresentmentFull,
			Customer: &models.Customer{
				FirstName: "Test",
				LastName:  "Tester",
				Email:     "tester@example.com",
			},
		},
	}

	body := encodeToElement(t, func(el *etree.Element) {
		encodeLoadBills(el, bills)
	})

	bill := body.SelectElement("Bills").SelectElement("Bill")
	require.NotNil(t, bill)
	assert.Equal(t, "Tax Payments", bill.SelectElement("BillType").Text())
	assert.Equal(t, "12345", bill.SelectElement("Identifier1").Text())
	assert.Equal(t, "23456", bill.SelectElement("Identifier2").Text())
	assert.Nil(t, bill.SelectElement("Identifier3"))
	assert.Equal(t, "50.00", bill.SelectElement("Amount").Text())
	assert.Equal(t, "2026-09-04", bill.SelectElement("DueDate").Text())
	assert.Equal(t, "Full", bill.SelectElement("Presentment").Text())

	customer := bill.SelectElement("Customer")
	require.NotNil(t, customer)
	assert.Equal(t, "Test", customer.SelectElement("FirstName").Text())
}

func TestEncodeSecurePay_SessionFields(t *testing.T) {
	data := &models.HostedPaymentData{
		HostedPaymentType: models.HostedPaymentMakePayment,
		Bills: []models.Bill{
			{BillType: "Tax Payments", Identifier1: "12345", Amount: decimal.NewFromInt(50)},
		},
		CustomerFirstName:  "Test",
		CustomerLastName:   "Tester",
		CustomerEmail:      "test@tester.com",
		CustomerIsEditable: true,
	}

	body := encodeToElement(t, func(el *etree.Element) {
		encodeSecurePay(el, data)
	})

	assert.Equal(t, "MakePayment", body.SelectElement("HostedPaymentType").Text())
	assert.Equal(t, "true", body.SelectElement("CustomerIsEditable").Text())
	assert.Equal(t, "test@tester.com", body.SelectElement("Email").Text())
	assert.Len(t, body.SelectElement("Bills").SelectElements("Bill"), 1)
}

func TestEncodePaymentMethod_CardAccount(t *testing.T) {
	pm := &models.RecurringPaymentMethod{
		CustomerKey: "cust-1",
		AccountName: "primary-card",
		Card: &models.CreditCard{
			Number:   "4444444444444448",
			ExpMonth: 12,
			ExpYear:  2025,
		},
	}

	body := encodeToElement(t, func(el *etree.Element) {
		encodePaymentMethod(el, pm)
	})

	assert.Equal(t, "cust-1", body.SelectElement("CustomerKey").Text())
	assert.Equal(t, "primary-card", body.SelectElement("AccountName").Text())
	assert.Equal(t, "4444444444444448", body.SelectElement("AccountNumber").Text())
	// key is gateway assigned, absent on create
	assert.Nil(t, body.SelectElement("PaymentMethodKey"))
}
