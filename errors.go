package invoiceledger

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios.
var (
	// Validation errors
	ErrInvalidAddress = errors.New("invoiceledger: invalid address")
	ErrSelfInvoice    = errors.New("invoiceledger: cannot create invoice for yourself")
	ErrZeroAmount     = errors.New("invoiceledger: amount must be greater than 0")

	// Payment errors
	ErrNotFound         = errors.New("invoiceledger: invoice not found")
	ErrAlreadyPaid      = errors.New("invoiceledger: invoice is already paid")
	ErrUnauthorized     = errors.New("invoiceledger: only the recipient can pay this invoice")
	ErrIncorrectPayment = errors.New("invoiceledger: incorrect payment amount")

	// Lifecycle errors
	ErrNotReady      = errors.New("invoiceledger: ledger not started")
	ErrAlreadyExists = errors.New("invoiceledger: invoice already exists")

	// Store errors
	ErrStoreClosed     = errors.New("invoiceledger: store is closed")
	ErrMigrationFailed = errors.New("invoiceledger: migration failed")
)

// ValidationError represents a validation failure with details.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invoiceledger: validation failed for %s: %s", e.Field, e.Message)
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDomainError returns true if the error is a domain rejection rather than
// a storage or host fault. Domain rejections abort an operation before any
// state mutation; storage faults propagate unchanged.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrInvalidAddress) ||
		errors.Is(err, ErrSelfInvoice) ||
		errors.Is(err, ErrZeroAmount) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAlreadyPaid) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrIncorrectPayment)
}

// IsStorageFault returns true if the error indicates the underlying
// persistence layer failed rather than the caller's request being rejected.
func IsStorageFault(err error) bool {
	return err != nil && !IsDomainError(err) && !errors.Is(err, ErrNotReady)
}
