package models

import "errors"

// Domain errors surfaced by the services. Callers receive only the message
// text over HTTP; these sentinels exist so service code and tests can
// distinguish failure kinds with errors.Is.
var (
	// ErrInvalidArgument covers malformed input: blank identifiers, missing
	// required fields, unparseable path parameters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound means the entity does not exist in the local collection.
	ErrNotFound = errors.New("does not exist")

	// ErrInactiveAccount means the account exists but has been closed.
	// Closed accounts are terminal: no ledger or lifecycle operation
	// touches them again.
	ErrInactiveAccount = errors.New("account is closed")

	// ErrAlreadyExists is returned by create paths on a duplicate key.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInsufficientFunds is the balance policy violation.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrPeerUpdateFailed means a remote mutation of a peer-owned entity
	// failed or was substituted by a fallback payload. The peer may have
	// partially applied its mutation; nothing rolls that back.
	ErrPeerUpdateFailed = errors.New("user account list could not be updated")

	// ErrOperationFailed is the generic failure for cases the services do
	// not distinguish further, such as identifiers that parse to zero.
	ErrOperationFailed = errors.New("operation failed")
)
