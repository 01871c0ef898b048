package billpay

import (
	"github.com/beevik/etree"

	"github.com/kevin07696/billpay-client/config"
)

const soapNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

// newEnvelope builds the fixed SOAP envelope for one gateway operation:
// authentication header from the service credentials, and an empty body
// element named after the operation for the encoder to fill in. Pure
// function of its inputs; no I/O.
func newEnvelope(operationName string, cfg *config.BillPayConfig) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	envelope := doc.CreateElement("soap:Envelope")
	envelope.CreateAttr("xmlns:soap", soapNamespace)

	header := envelope.CreateElement("soap:Header")
	auth := header.CreateElement("AuthenticationHeader")
	auth.CreateElement("MerchantName").SetText(cfg.MerchantName)
	auth.CreateElement("UserName").SetText(cfg.Username)
	auth.CreateElement("Password").SetText(cfg.Password)

	body := envelope.CreateElement("soap:Body")
	operation := body.CreateElement(operationName)

	return doc, operation
}
