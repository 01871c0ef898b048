package errors

import (
	"fmt"
	"strings"
)

// GatewayError represents a well-formed gateway response with a non-zero
// result code. Code and Message carry the gateway's values verbatim; Summary
// is a fixed human-readable message chosen by operation family.
type GatewayError struct {
	Summary string
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: code=%s message=%s", e.Summary, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: code=%s", e.Summary, e.Code)
}

// NewGatewayError creates a new gateway error
func NewGatewayError(summary, code, message string) *GatewayError {
	return &GatewayError{
		Summary: summary,
		Code:    code,
		Message: message,
	}
}

// TransportError represents a failure to complete the HTTP exchange with the
// gateway: an I/O error or a non-200 status. The response body is never
// decoded on this path.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway transport failure: %v", e.Err)
	}
	return fmt.Sprintf("unexpected http status code [%d]", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a transport error for a non-200 status
func NewTransportError(statusCode int) *TransportError {
	return &TransportError{StatusCode: statusCode}
}

// WrapTransportError creates a transport error for an I/O failure
func WrapTransportError(err error) *TransportError {
	return &TransportError{Err: err}
}

// ProtocolError represents a response the gateway contract does not allow:
// missing response tag or missing required child elements.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected gateway response: %s", e.Message)
}

// NewProtocolError creates a new protocol error
func NewProtocolError(format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{Message: fmt.Sprintf(format, args...)}
}

// UnsupportedTransactionError indicates a transaction type/flag combination
// with no routing entry for this gateway.
type UnsupportedTransactionError struct {
	Message string
}

func (e *UnsupportedTransactionError) Error() string {
	return e.Message
}

// NewUnsupportedTransactionError creates an unsupported transaction error
// with the default message
func NewUnsupportedTransactionError() *UnsupportedTransactionError {
	return &UnsupportedTransactionError{
		Message: "Transaction type not supported for this configuration",
	}
}

// ValidationError represents input validation failures raised before a
// request reaches the gateway. It carries every message collected during
// validation, not just the first.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("the request failed validation: %s", strings.Join(e.Messages, "; "))
}

// NewValidationError creates a new validation error
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
