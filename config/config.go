package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Well-known gateway endpoints
const (
	EndpointCertification = "https://certification.billpaygateway.net/BillingDataManagement/v3/BillingDataManagementService"
	EndpointProduction    = "https://secure.billpaygateway.net/BillingDataManagement/v3/BillingDataManagementService"
)

// BillPayConfig holds the credentials and endpoint for one configured
// gateway service. Instances are read-only once registered; the gateway
// adapter borrows them per call and never mutates them.
type BillPayConfig struct {
	MerchantName string
	Username     string
	Password     string
	ServiceURL   string
	Timeout      time.Duration
}

// Validate checks that the configuration is complete enough to reach the
// gateway
func (c *BillPayConfig) Validate() error {
	if c.MerchantName == "" {
		return fmt.Errorf("merchant name is required")
	}
	if c.Username == "" {
		return fmt.Errorf("username is required")
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}
	if c.ServiceURL == "" {
		return fmt.Errorf("service URL is required")
	}
	return nil
}

// LoadFromEnv loads a gateway configuration from environment variables
func LoadFromEnv() (*BillPayConfig, error) {
	cfg := &BillPayConfig{
		MerchantName: getEnv("BILLPAY_MERCHANT_NAME", ""),
		Username:     getEnv("BILLPAY_USERNAME", ""),
		Password:     getEnv("BILLPAY_PASSWORD", ""),
		ServiceURL:   getEnv("BILLPAY_SERVICE_URL", EndpointCertification),
		Timeout:      time.Duration(getEnvAsInt("BILLPAY_TIMEOUT", 30)) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
