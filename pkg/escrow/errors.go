package escrow

import "errors"

var (
	// ErrUnknownAsset is returned when no transferer is registered for an asset.
	ErrUnknownAsset = errors.New("unknown asset")
	// ErrDuplicateTransfer is returned when an event already moved value.
	ErrDuplicateTransfer = errors.New("transfer already completed for event")
)
