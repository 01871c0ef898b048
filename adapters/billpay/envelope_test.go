package billpay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin07696/billpay-client/config"
)

func testConfig() *config.BillPayConfig {
	return &config.BillPayConfig{
		MerchantName: "IntegrationTesting",
		Username:     "IntegrationTestCashier",
		Password:     "test-password",
		ServiceURL:   "https://gateway.example/BillingDataManagementService",
		Timeout:      30 * time.Second,
	}
}

func TestNewEnvelope_CarriesCredentialsInHeader(t *testing.T) {
	doc, body := newEnvelope("MakePayment", testConfig())

	auth := doc.FindElement("//AuthenticationHeader")
	require.NotNil(t, auth)
	assert.Equal(t, "IntegrationTesting", auth.SelectElement("MerchantName").Text())
	assert.Equal(t, "IntegrationTestCashier", auth.SelectElement("UserName").Text())
	assert.Equal(t, "test-password", auth.SelectElement("Password").Text())

	require.NotNil(t, body)
	assert.Equal(t, "MakePayment", body.Tag)
}

func TestNewEnvelope_BodyElementNamedAfterOperation(t *testing.T) {
	doc, body := newEnvelope("GetToken", testConfig())

	soapBody := doc.FindElement("//soap:Body")
	require.NotNil(t, soapBody)
	require.Len(t, soapBody.ChildElements(), 1)
	assert.Same(t, body, soapBody.ChildElements()[0])
}

func TestNewEnvelope_SerializesToWellFormedXML(t *testing.T) {
	doc, body := newEnvelope("LoadBills", testConfig())
	body.CreateElement("Bills")

	out, err := doc.WriteToString()

	require.NoError(t, err)
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"`)
	assert.Contains(t, out, "<LoadBills><Bills/></LoadBills>")
}

func TestNewEnvelope_EscapesCredentialCharacters(t *testing.T) {
	cfg := testConfig()
	cfg.Password = `G?vaXhg6<@V'Y)-m`

	doc, _ := newEnvelope("MakePayment", cfg)
	out, err := doc.WriteToString()

	require.NoError(t, err)
	assert.NotContains(t, out, "<@V")
	assert.Contains(t, out, "G?vaXhg6&lt;@V")
}
