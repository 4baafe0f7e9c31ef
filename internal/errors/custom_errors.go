package errors

import (
	"fmt"
)

// AppError carries both sides of a failure: the UserMessage/Code/HTTPStatus
// trio rendered to partners, and the TechnicalMessage kept for server logs.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

func (e *AppError) Error() string {
	if e.OriginalError == nil {
		return e.UserMessage
	}
	return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
}

// Unwrap exposes the cause so errors.Is and errors.As see through AppError.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError builds an AppError. originalErr may be nil when the failure
// originates here rather than wrapping a lower layer.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Machine-readable codes returned in the error envelope.
const (
	// Quote pipeline.
	ErrCodeInvalidAddress      = "INVALID_ADDRESS"
	ErrCodePropertyNotFound    = "PROPERTY_NOT_FOUND"
	ErrCodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"

	// Accounts and access.
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
	ErrCodeAccountPending     = "ACCOUNT_PENDING"
	ErrCodeAccountDenied      = "ACCOUNT_DENIED"
	ErrCodeRateLimited        = "RATE_LIMITED"

	// Lead lifecycle.
	ErrCodeLeadNotFound         = "LEAD_NOT_FOUND"
	ErrCodeLeadNotQualified     = "LEAD_NOT_QUALIFIED"
	ErrCodeLeadAlreadySubmitted = "LEAD_ALREADY_SUBMITTED"
	ErrCodeSubmissionRejected   = "SUBMISSION_REJECTED"

	ErrCodeInvalidParameters = "INVALID_PARAMETERS"
	ErrCodeInternal          = "INTERNAL_ERROR"
)
