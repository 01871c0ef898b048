package ports

import (
	"context"

	"github.com/kevin07696/billpay-client/domain/models"
)

// AuthorizationGateway executes charge and verify intents. The adapter
// routes each request to the matching gateway operation based on the
// transaction type, the hosted-bill and multi-use-token flags, and the
// payment method kind.
type AuthorizationGateway interface {
	Execute(ctx context.Context, req *models.AuthorizationRequest) (*models.TransactionResult, error)
}

// BillingGateway covers the management operations: reversals, bill loads,
// hosted payment sessions, and customer / recurring payment method records.
type BillingGateway interface {
	ReversePayment(ctx context.Context, req *models.ReversalRequest) (*models.TransactionResult, error)
	LoadBills(ctx context.Context, bills []models.Bill) (*models.TransactionResult, error)
	LoadSecurePay(ctx context.Context, data *models.HostedPaymentData) (*models.TransactionResult, error)

	CreateCustomer(ctx context.Context, customer *models.Customer) (*models.TransactionResult, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) (*models.TransactionResult, error)
	DeleteCustomer(ctx context.Context, customer *models.Customer) (*models.TransactionResult, error)

	CreatePaymentMethod(ctx context.Context, pm *models.RecurringPaymentMethod) (*models.TransactionResult, error)
	UpdatePaymentMethod(ctx context.Context, pm *models.RecurringPaymentMethod) (*models.TransactionResult, error)
	DeletePaymentMethod(ctx context.Context, pm *models.RecurringPaymentMethod) (*models.TransactionResult, error)
}
