package service

import "errors"

// Sentinel errors shared across the billing services. Handlers translate
// these (or the domain error codes wrapping them) into HTTP responses.
var (
	ErrPlanNotFound         = errors.New("plan not found")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAttemptNotFound      = errors.New("payment attempt not found")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidOutcome       = errors.New("outcome must be succeeded or failed")
	ErrInvalidInterval      = errors.New("unsupported billing interval unit")
)
