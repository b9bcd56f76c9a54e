package wallet

import "errors"

var (
	// ErrRecordNotFound is returned for missing records and for records owned by
	// another user, so ownership is not revealed.
	ErrRecordNotFound = errors.New("wallet record not found")

	// ErrRecordInactive indicates the record was superseded and can no longer be re-protected.
	ErrRecordInactive = errors.New("wallet record is inactive")

	// ErrUnsupportedChain indicates no chain is registered under the requested name.
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrUnknownMode indicates a protection mode this build cannot handle.
	ErrUnknownMode = errors.New("unknown protection mode")
)
