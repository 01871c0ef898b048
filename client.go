// Package billpayclient is a client library for a SOAP/XML bill-payment
// gateway. Callers register service configurations once, then issue charges,
// verifications, reversals, bill loads, hosted payment sessions, and
// customer / recurring payment method operations through a Service. Each
// call is a single synchronous request/response cycle against the gateway.
package billpayclient

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"

	adapter "github.com/kevin07696/billpay-client/adapters/billpay"
	"github.com/kevin07696/billpay-client/config"
	"github.com/kevin07696/billpay-client/domain/models"
	"github.com/kevin07696/billpay-client/domain/ports"
	"github.com/kevin07696/billpay-client/pkg/logging"
	"go.uber.org/zap"
)

// Service is the caller-facing entry point. It resolves named service
// configurations from the registry and reuses one gateway adapter per
// configured service. A Service is safe for concurrent use once the
// registry is populated.
type Service struct {
	registry   *config.Registry
	httpClient ports.HTTPClient
	logger     ports.Logger

	mu       sync.Mutex
	gateways map[string]*adapter.Gateway
}

// Option configures a Service
type Option func(*Service)

// WithHTTPClient overrides the HTTP client used for gateway calls
func WithHTTPClient(client ports.HTTPClient) Option {
	return func(s *Service) {
		s.httpClient = client
	}
}

// WithLogger overrides the logger used for gateway calls
func WithLogger(logger ports.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a Service backed by the given registry
func New(registry *config.Registry, opts ...Option) *Service {
	s := &Service{
		registry: registry,
		logger:   logging.NewZapLogger(zap.NewNop()),
		gateways: make(map[string]*adapter.Gateway),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// gateway returns the adapter for the named service, constructing it on
// first use
func (s *Service) gateway(name string) (*adapter.Gateway, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gw, ok := s.gateways[name]; ok {
		return gw, nil
	}

	cfg, err := s.registry.Lookup(name)
	if err != nil {
		return nil, err
	}

	httpClient := s.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	gw := adapter.NewGateway(cfg, httpClient, s.logger)
	s.gateways[name] = gw
	return gw, nil
}

// CreateCustomer creates a customer record at the gateway and returns a copy
// with the gateway-assigned key set
func (s *Service) CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := validateCustomer(customer, false); err != nil {
		return nil, err
	}

	gw, err := s.gateway("")
	if err != nil {
		return nil, err
	}

	result, err := gw.CreateCustomer(ctx, customer)
	if err != nil {
		return nil, err
	}

	created := *customer
	created.Key = result.CustomerKey
	return &created, nil
}

// UpdateCustomer updates the customer record addressed by its key
func (s *Service) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	if err := validateCustomer(customer, true); err != nil {
		return err
	}

	gw, err := s.gateway("")
	if err != nil {
		return err
	}

	_, err = gw.UpdateCustomer(ctx, customer)
	return err
}

// DeleteCustomer deletes the customer record addressed by its key
func (s *Service) DeleteCustomer(ctx context.Context, customer *models.Customer) error {
	if err := validateCustomer(customer, true); err != nil {
		return err
	}

	gw, err := s.gateway("")
	if err != nil {
		return err
	}

	_, err = gw.DeleteCustomer(ctx, customer)
	return err
}

// CreatePaymentMethod stores a recurring payment method under a customer
// record. An empty AccountName is replaced with a generated one. Returns a
// copy with the gateway-assigned payment method key set.
func (s *Service) CreatePaymentMethod(ctx context.Context, pm *models.RecurringPaymentMethod) (*models.RecurringPaymentMethod, error) {
	if err := validatePaymentMethod(pm, false); err != nil {
		return nil, err
	}

	stored := *pm
	if stored.AccountName == "" {
		stored.AccountName = uuid.NewString()
	}

	gw, err := s.gateway("")
	if err != nil {
		return nil, err
	}

	result, err := gw.CreatePaymentMethod(ctx, &stored)
	if err != nil {
		return nil, err
	}

	stored.Key = result.PaymentMethodKey
	return &stored, nil
}

// UpdatePaymentMethod updates a stored recurring payment method
func (s *Service) UpdatePaymentMethod(ctx context.Context, pm *models.RecurringPaymentMethod) error {
	if err := validatePaymentMethod(pm, true); err != nil {
		return err
	}

	gw, err := s.gateway("")
	if err != nil {
		return err
	}

	_, err = gw.UpdatePaymentMethod(ctx, pm)
	return err
}

// DeletePaymentMethod removes a stored recurring payment method
func (s *Service) DeletePaymentMethod(ctx context.Context, pm *models.RecurringPaymentMethod) error {
	if err := validatePaymentMethod(pm, true); err != nil {
		return err
	}

	gw, err := s.gateway("")
	if err != nil {
		return err
	}

	_, err = gw.DeletePaymentMethod(ctx, pm)
	return err
}
