package models

// HostedPaymentType selects which payment operation the hosted page runs
// when the payer completes it
type HostedPaymentType string

const (
	HostedPaymentMakePayment            HostedPaymentType = "MakePayment"
	HostedPaymentMakePaymentReturnToken HostedPaymentType = "MakePaymentReturnToken"
)

// HostedPaymentData describes a secure-pay session to preload at the
// gateway. The returned payment identifier is used to redirect the payer to
// the hosted payment page.
type HostedPaymentData struct {
	Bills               []Bill
	HostedPaymentType   HostedPaymentType
	CustomerAddress     *Address
	CustomerEmail       string
	CustomerFirstName   string
	CustomerLastName    string
	CustomerPhoneMobile string
	CustomerIsEditable  bool
}

// RecurringPaymentMethod is a card or bank account stored at the gateway
// under a customer record for later charges. AccountName is caller chosen;
// Key is assigned by the gateway on create.
type RecurringPaymentMethod struct {
	Key         string
	CustomerKey string
	AccountName string
	Card        *CreditCard
	ACH         *ACHAccount
}
