package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed scan for the HTTP boundary.
type ErrorKind string

const (
	// KindValidation is bad or missing input rejected before any network call.
	KindValidation ErrorKind = "validation"
	// KindConfiguration is a missing provider secret.
	KindConfiguration ErrorKind = "configuration"
	// KindProvider is an audit provider that answered with a failure or an
	// unusable payload.
	KindProvider ErrorKind = "provider"
	// KindNetwork is a transport failure reaching the audit provider.
	KindNetwork ErrorKind = "network"
)

// Error codes used in API responses and internal error handling.
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeMissingConfig = "MISSING_CONFIG"
	ErrCodeNetwork       = "NETWORK_ERROR"
	ErrCodeRateLimited   = "RATE_LIMITED"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeInternal      = "INTERNAL_ERROR"

	// Audit provider codes, one per classified status.
	ErrCodeAuditInvalidURL = "AUDIT_INVALID_URL"
	ErrCodeAuditQuota      = "AUDIT_QUOTA_EXCEEDED"
	ErrCodeAuditRateLimit  = "AUDIT_RATE_LIMITED"
	ErrCodeAuditFailed     = "AUDIT_FAILED"
	ErrCodeAuditNoResults  = "AUDIT_NO_RESULTS"
)

// User-facing messages.
const (
	MsgURLRequired = "URL is required"
	MsgURLInvalid  = "Please enter a valid URL including the scheme (e.g. https://example.com)"

	MsgAuditInvalidURL = "The URL is invalid or the page cannot be analyzed."
	MsgAuditQuota      = "API quota exceeded or invalid API key."
	MsgAuditRateLimit  = "Too many requests. Please wait a moment and retry."
	MsgAuditNoResults  = "No results returned. The site may be unreachable or blocking automated analysis."
	MsgNetwork         = "Network error while contacting the analysis service. Please check your connection and try again."
)

// ErrorResponse is the JSON body returned by POST /scan on failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ScanError is the internal error type carrying a kind and an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type ScanError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Details string
	Err     error // wrapped original error
}

func (e *ScanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// ToResponse converts an internal error to the API-facing ErrorResponse.
func (e *ScanError) ToResponse() *ErrorResponse {
	return &ErrorResponse{Error: e.Message, Code: e.Code, Details: e.Details}
}

// NewValidationError reports rejected input.
func NewValidationError(message string) *ScanError {
	return &ScanError{Kind: KindValidation, Code: ErrCodeInvalidInput, Message: message}
}

// NewConfigurationError reports a missing secret by its environment name.
func NewConfigurationError(name string) *ScanError {
	return &ScanError{
		Kind:    KindConfiguration,
		Code:    ErrCodeMissingConfig,
		Message: name + " environment variable is not set.",
	}
}

// NewProviderError reports an audit provider failure.
func NewProviderError(code, message, details string) *ScanError {
	return &ScanError{Kind: KindProvider, Code: code, Message: message, Details: details}
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(err error) *ScanError {
	return &ScanError{Kind: KindNetwork, Code: ErrCodeNetwork, Message: MsgNetwork, Err: err}
}

// AsScanError unwraps err into a *ScanError, wrapping unknown errors as
// internal failures.
func AsScanError(err error) *ScanError {
	var se *ScanError
	if errors.As(err, &se) {
		return se
	}
	return &ScanError{Kind: KindProvider, Code: ErrCodeInternal, Message: err.Error(), Err: err}
}
