package billpayclient

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kevin07696/billpay-client/domain/models"
)

// ChargeBuilder accumulates the parameters of a sale. Bill data is assumed
// hosted at the gateway unless WithBlindBillData is called.
type ChargeBuilder struct {
	svc         *Service
	serviceName string
	req         models.AuthorizationRequest
}

// Charge starts a sale of the given amount with the given payment method
func (s *Service) Charge(amount decimal.Decimal, pm models.PaymentMethod) *ChargeBuilder {
	return &ChargeBuilder{
		svc: s,
		req: models.AuthorizationRequest{
			TransactionType:  models.TypeSale,
			Amount:           amount,
			PaymentMethod:    pm,
			Currency:         "USD",
			IsBillDataHosted: true,
		},
	}
}

// WithBills sets the bill line items the charge pays
func (b *ChargeBuilder) WithBills(bills ...models.Bill) *ChargeBuilder {
	b.req.Bills = bills
	return b
}

// WithAddress sets the billing address
func (b *ChargeBuilder) WithAddress(address *models.Address) *ChargeBuilder {
	b.req.Address = address
	return b
}

// WithCustomer attaches customer info to the charge
func (b *ChargeBuilder) WithCustomer(customer *models.Customer) *ChargeBuilder {
	b.req.Customer = customer
	return b
}

// WithCurrency overrides the default USD currency
func (b *ChargeBuilder) WithCurrency(currency string) *ChargeBuilder {
	b.req.Currency = currency
	return b
}

// WithConvenienceAmount sets the convenience fee charged on top of the bills
func (b *ChargeBuilder) WithConvenienceAmount(amount decimal.Decimal) *ChargeBuilder {
	b.req.ConvenienceAmount = amount
	return b
}

// WithRequestMultiUseToken requests a reusable token alongside the payment
func (b *ChargeBuilder) WithRequestMultiUseToken(request bool) *ChargeBuilder {
	b.req.RequestMultiUseToken = request
	return b
}

// WithBlindBillData marks the bill data as not hosted at the gateway, so
// the full bill details travel with the payment
func (b *ChargeBuilder) WithBlindBillData() *ChargeBuilder {
	b.req.IsBillDataHosted = false
	return b
}

// WithServiceName routes the charge through a named service configuration
func (b *ChargeBuilder) WithServiceName(name string) *ChargeBuilder {
	b.serviceName = name
	return b
}

// Execute validates the accumulated parameters and runs the charge
func (b *ChargeBuilder) Execute(ctx context.Context) (*models.TransactionResult, error) {
	if err := validateCharge(&b.req); err != nil {
		return nil, err
	}

	gw, err := b.svc.gateway(b.serviceName)
	if err != nil {
		return nil, err
	}
	return gw.Execute(ctx, &b.req)
}

// VerifyBuilder accumulates the parameters of a payment method verification.
// Tokenization requires WithRequestMultiUseToken(true); the gateway has no
// plain verify operation.
type VerifyBuilder struct {
	svc         *Service
	serviceName string
	req         models.AuthorizationRequest
}

// Verify starts a verification of the given payment method
func (s *Service) Verify(pm models.PaymentMethod) *VerifyBuilder {
	return &VerifyBuilder{
		svc: s,
		req: models.AuthorizationRequest{
			TransactionType: models.TypeVerify,
			PaymentMethod:   pm,
		},
	}
}

// WithAddress sets the billing address
func (b *VerifyBuilder) WithAddress(address *models.Address) *VerifyBuilder {
	b.req.Address = address
	return b
}

// WithRequestMultiUseToken requests a reusable token for the payment method
func (b *VerifyBuilder) WithRequestMultiUseToken(request bool) *VerifyBuilder {
	b.req.RequestMultiUseToken = request
	return b
}

// WithServiceName routes the verification through a named service
// configuration
func (b *VerifyBuilder) WithServiceName(name string) *VerifyBuilder {
	b.serviceName = name
	return b
}

// Execute validates the accumulated parameters and runs the verification
func (b *VerifyBuilder) Execute(ctx context.Context) (*models.TransactionResult, error) {
	if err := validateVerify(&b.req); err != nil {
		return nil, err
	}

	gw, err := b.svc.gateway(b.serviceName)
	if err != nil {
		return nil, err
	}
	return gw.Execute(ctx, &b.req)
}

// ReversalBuilder accumulates the parameters of a payment reversal
type ReversalBuilder struct {
	svc         *Service
	serviceName string
	req         models.ReversalRequest
}

// Reverse starts a reversal of a prior transaction
func (s *Service) Reverse(transactionID string, amount decimal.Decimal) *ReversalBuilder {
	return &ReversalBuilder{
		svc: s,
		req: models.ReversalRequest{
			TransactionID: transactionID,
			Amount:        amount,
		},
	}
}

// WithBills replaces the original bill allocation for a partial reversal
func (b *ReversalBuilder) WithBills(bills ...models.Bill) *ReversalBuilder {
	b.req.Bills = bills
	return b
}

// WithConvenienceAmount sets the convenience fee portion to reverse
func (b *ReversalBuilder) WithConvenienceAmount(amount decimal.Decimal) *ReversalBuilder {
	b.req.ConvenienceAmount = amount
	return b
}

// WithServiceName routes the reversal through a named service configuration
func (b *ReversalBuilder) WithServiceName(name string) *ReversalBuilder {
	b.serviceName = name
	return b
}

// Execute validates the accumulated parameters and runs the reversal
func (b *ReversalBuilder) Execute(ctx context.Context) (*models.TransactionResult, error) {
	if err := validateReversal(&b.req); err != nil {
		return nil, err
	}

	gw, err := b.svc.gateway(b.serviceName)
	if err != nil {
		return nil, err
	}
	return gw.ReversePayment(ctx, &b.req)
}

// LoadBillsBuilder accumulates a bill load. Bill loads often target a
// separately named service configuration with its own merchant credentials.
type LoadBillsBuilder struct {
	svc         *Service
	serviceName string
	bills       []models.Bill
}

// LoadBills starts a bulk bill load
func (s *Service) LoadBills(bills ...models.Bill) *LoadBillsBuilder {
	return &LoadBillsBuilder{
		svc:   s,
		bills: bills,
	}
}

// WithServiceName routes the load through a named service configuration
func (b *LoadBillsBuilder) WithServiceName(name string) *LoadBillsBuilder {
	b.serviceName = name
	return b
}

// Execute validates the bills and runs the load
func (b *LoadBillsBuilder) Execute(ctx context.Context) (*models.TransactionResult, error) {
	if err := validateBillLoad(b.bills); err != nil {
		return nil, err
	}

	gw, err := b.svc.gateway(b.serviceName)
	if err != nil {
		return nil, err
	}
	return gw.LoadBills(ctx, b.bills)
}

// SecurePayBuilder accumulates a hosted payment session load
type SecurePayBuilder struct {
	svc         *Service
	serviceName string
	data        *models.HostedPaymentData
}

// LoadHostedPayment starts a secure-pay session load
func (s *Service) LoadHostedPayment(data *models.HostedPaymentData) *SecurePayBuilder {
	return &SecurePayBuilder{
		svc:  s,
		data: data,
	}
}

// WithServiceName routes the load through a named service configuration
func (b *SecurePayBuilder) WithServiceName(name string) *SecurePayBuilder {
	b.serviceName = name
	return b
}

// Execute validates the session data and loads it, returning a result whose
// PaymentIdentifier addresses the hosted payment page
func (b *SecurePayBuilder) Execute(ctx context.Context) (*models.TransactionResult, error) {
	if err := validateSecurePay(b.data); err != nil {
		return nil, err
	}

	gw, err := b.svc.gateway(b.serviceName)
	if err != nil {
		return nil, err
	}
	return gw.LoadSecurePay(ctx, b.data)
}
