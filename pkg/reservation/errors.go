package reservation

import (
	"errors"
	"fmt"
)

// Domain-level error values returned by the reservation service.
var (
	ErrAlreadyInitialized   = errors.New("already initialized")
	ErrNotInitialized       = errors.New("not initialized")
	ErrNotFound             = errors.New("reservation not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidState         = errors.New("invalid reservation state")
	ErrInvalidTransition    = errors.New("invalid reservation transition")
	ErrTransferFailed       = errors.New("transfer failed")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidServiceConfig = errors.New("invalid service config")
	// ErrTransferNotRecorded is returned by stores when no receipt exists for an event.
	ErrTransferNotRecorded = errors.New("transfer not recorded")
	// ErrTransferAlreadyRecorded is returned by stores when an event already has a receipt.
	ErrTransferAlreadyRecorded = errors.New("transfer already recorded")
)

// OperationError wraps a failure with a stable operation code.
type OperationError struct {
	operation string
	subject   string
	code      string
	err       error
}

// Error returns the formatted error message.
func (operationError OperationError) Error() string {
	return fmt.Sprintf("%s.%s.%s: %v", operationError.operation, operationError.subject, operationError.code, operationError.err)
}

// Unwrap returns the underlying error.
func (operationError OperationError) Unwrap() error {
	return operationError.err
}

// Operation returns the operation segment.
func (operationError OperationError) Operation() string {
	return operationError.operation
}

// Subject returns the subject segment.
func (operationError OperationError) Subject() string {
	return operationError.subject
}

// Code returns the stable error code segment.
func (operationError OperationError) Code() string {
	return operationError.code
}

// WrapError wraps an error with operation, subject, and code metadata.
func WrapError(operation string, subject string, code string, err error) error {
	if err == nil {
		return nil
	}
	return OperationError{
		operation: operation,
		subject:   subject,
		code:      code,
		err:       err,
	}
}

// TransferError reports a failed value movement. It matches ErrTransferFailed
// and the cause returned by the asset.
type TransferError struct {
	Transfer Transfer
	Err      error
}

// Error returns the formatted error message.
func (transferError *TransferError) Error() string {
	return fmt.Sprintf("%s transfer of %d %s from %s to %s: %v",
		transferError.Transfer.Kind,
		transferError.Transfer.Amount.Int64(),
		transferError.Transfer.Asset.String(),
		transferError.Transfer.From.String(),
		transferError.Transfer.To.String(),
		transferError.Err,
	)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (transferError *TransferError) Unwrap() []error {
	if transferError.Err == nil {
		return []error{ErrTransferFailed}
	}
	return []error{ErrTransferFailed, transferError.Err}
}

// NewTransferError builds a TransferError for the given transfer.
func NewTransferError(transfer Transfer, cause error) error {
	return &TransferError{Transfer: transfer, Err: cause}
}
