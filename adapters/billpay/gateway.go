package billpay

import (
	"context"
	"time"

	"github.com/beevik/etree"

	"github.com/kevin07696/billpay-client/config"
	"github.com/kevin07696/billpay-client/domain/models"
	"github.com/kevin07696/billpay-client/domain/ports"
	pkgerrors "github.com/kevin07696/billpay-client/pkg/errors"
	"github.com/kevin07696/billpay-client/pkg/observability"
)

// Gateway talks to one configured bill-payment service. It is stateless per
// call: the configuration and operation table are read-only after
// construction, so a single Gateway is safe for concurrent use.
type Gateway struct {
	cfg       *config.BillPayConfig
	transport *transport
	logger    ports.Logger
}

// NewGateway creates a gateway adapter for one service configuration
func NewGateway(cfg *config.BillPayConfig, httpClient ports.HTTPClient, logger ports.Logger) *Gateway {
	return &Gateway{
		cfg:       cfg,
		transport: newTransport(httpClient, logger),
		logger:    logger,
	}
}

// Execute routes a normalized authorization request to its gateway
// operation and runs the full encode, transmit, decode cycle. Result code
// "0" returns the result; any other code raises a GatewayError carrying the
// gateway's code and message verbatim.
func (g *Gateway) Execute(ctx context.Context, req *models.AuthorizationRequest) (*models.TransactionResult, error) {
	op, err := selectOperation(req)
	if err != nil {
		g.logger.Warn("No gateway operation for transaction",
			ports.String("transaction_type", string(req.TransactionType)),
			ports.Field{Key: "bill_data_hosted", Value: req.IsBillDataHosted},
			ports.Field{Key: "request_multi_use_token", Value: req.RequestMultiUseToken},
		)
		return nil, err
	}

	g.logger.Info("Executing gateway transaction",
		ports.String("operation", op.wireName),
		ports.String("transaction_type", string(req.TransactionType)),
		ports.String("amount", req.Amount.StringFixed(2)),
	)

	return g.run(ctx, &op.operation, func(body *etree.Element) {
		op.encode(body, req)
	})
}

// ReversePayment reverses a prior transaction by its gateway transaction id
func (g *Gateway) ReversePayment(ctx context.Context, req *models.ReversalRequest) (*models.TransactionResult, error) {
	g.logger.Info("Reversing gateway transaction",
		ports.String("transaction_id", req.TransactionID),
		ports.String("amount", req.Amount.StringFixed(2)),
	)

	return g.run(ctx, opReversePayment, func(body *etree.Element) {
		encodeReversal(body, req)
	})
}

// LoadBills preloads a collection of hosted bills at the gateway
func (g *Gateway) LoadBills(ctx context.Context, bills []models.Bill) (*models.TransactionResult, error) {
	g.logger.Info("Loading bills", ports.Int("bill_count", len(bills)))

	return g.run(ctx, opLoadBills, func(body *etree.Element) {
		encodeLoadBills(body, bills)
	})
}

// LoadSecurePay loads hosted payment page data and returns the payment
// identifier for the payer redirect
func (g *Gateway) LoadSecurePay(ctx context.Context, data *models.HostedPaymentData) (*models.TransactionResult, error) {
	g.logger.Info("Loading secure pay session",
		ports.String("hosted_payment_type", string(data.HostedPaymentType)),
		ports.Int("bill_count", len(data.Bills)),
	)

	return g.run(ctx, opLoadSecurePay, func(body *etree.Element) {
		encodeSecurePay(body, data)
	})
}

// CreateCustomer creates a customer record and returns its gateway key
func (g *Gateway) CreateCustomer(ctx context.Context, customer *models.Customer) (*models.TransactionResult, error) {
	return g.run(ctx, opCreateCustomer, func(body *etree.Element) {
		encodeCustomer(body, customer)
	})
}

// UpdateCustomer updates the customer record addressed by its key
func (g *Gateway) UpdateCustomer(ctx context.Context, customer *models.Customer) (*models.TransactionResult, error) {
	return g.run(ctx, opUpdateCustomer, func(body *etree.Element) {
		encodeCustomer(body, customer)
	})
}

// DeleteCustomer deletes the customer record addressed by its key
func (g *Gateway) DeleteCustomer(ctx context.Context, customer *models.Customer) (*models.TransactionResult, error) {
	return g.run(ctx, opDeleteCustomer, func(body *etree.Element) {
		encodeCustomer(body, customer)
	})
}

// CreatePaymentMethod stores a recurring payment method under a customer
// record and returns its gateway key
func (g *Gateway) CreatePaymentMethod(ctx context.Context, pm *models.RecurringPaymentMethod) (*models.TransactionResult, error) {
	return g.run(ctx, opCreatePaymentMethod, func(body *etree.Element) {
		encodePaymentMethod(body, pm)
	})
}

// UpdatePaymentMethod updates a stored recurring payment method
func (g *Gateway) UpdatePaymentMethod(ctx context.Context, pm *models.RecurringPaymentMethod) (*models.TransactionResult, error) {
	return g.run(ctx, opUpdatePaymentMethod, func(body *etree.Element) {
		encodePaymentMethod(body, pm)
	})
}

// DeletePaymentMethod removes a stored recurring payment method
func (g *Gateway) DeletePaymentMethod(ctx context.Context, pm *models.RecurringPaymentMethod) (*models.TransactionResult, error) {
	return g.run(ctx, opDeletePaymentMethod, func(body *etree.Element) {
		encodePaymentMethod(body, pm)
	})
}

// run drives one exchange: envelope, encode, transmit, decode, result-code
// inspection. Transport failures short-circuit before the decoder can see
// the body.
func (g *Gateway) run(ctx context.Context, op *operation, encode func(*etree.Element)) (*models.TransactionResult, error) {
	doc, body := newEnvelope(op.wireName, g.cfg)
	encode(body)

	request, err := doc.WriteToString()
	if err != nil {
		return nil, pkgerrors.NewProtocolError("failed to serialize request: %v", err)
	}

	startTime := time.Now()

	raw, err := g.transport.send(ctx, g.cfg.ServiceURL, request)
	if err != nil {
		observability.ObserveGatewayRequest(op.wireName, observability.OutcomeTransportError, time.Since(startTime))
		return nil, err
	}

	result, err := op.decode(op.responseTag, raw)
	if err != nil {
		observability.ObserveGatewayRequest(op.wireName, observability.OutcomeProtocolError, time.Since(startTime))
		g.logger.Error("Failed to decode gateway response",
			ports.Err(err),
			ports.String("operation", op.wireName),
		)
		return nil, err
	}

	if !result.Approved() {
		observability.ObserveGatewayRequest(op.wireName, observability.OutcomeGatewayError, time.Since(startTime))
		g.logger.Warn("Gateway declined transaction",
			ports.String("operation", op.wireName),
			ports.String("code", result.Code),
			ports.String("message", result.Message),
		)
		return nil, pkgerrors.NewGatewayError(op.summary, result.Code, result.Message)
	}

	observability.ObserveGatewayRequest(op.wireName, observability.OutcomeApproved, time.Since(startTime))
	g.logger.Info("Gateway transaction approved",
		ports.String("operation", op.wireName),
		ports.String("transaction_id", result.TransactionID),
	)

	return result, nil
}
