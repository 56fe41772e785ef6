package reconcile

import "errors"

// Reconciler errors. Every error is fatal to the current cascade: dispatch
// stops at the failing handler and already-applied mutations stay in the
// scope for the caller's transaction to commit or discard.
var (
	// ErrUnsupportedOperation flags an unrecognized transaction type
	// reaching a handler.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidArgument flags an event field that violates its contract:
	// a negative amount, or a transfer whose source and target coincide.
	ErrInvalidArgument = errors.New("invalid argument")
)
