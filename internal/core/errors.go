package core

import "errors"

// ErrTxNotFound means the chain has no record of the transaction yet. The
// caller may retry later once the transaction is indexed.
var ErrTxNotFound error = errors.New("transaction not found")

// ErrRPCUnavailable marks infrastructure failures talking to an RPC endpoint,
// as opposed to a transaction that is legitimately absent.
var ErrRPCUnavailable error = errors.New("rpc request failed")

type RejectReason string

const (
	ReasonUnsupportedChain   RejectReason = "unsupported chain"
	ReasonNotConfirmed       RejectReason = "transaction failed or not confirmed"
	ReasonRecipientMismatch  RejectReason = "invalid recipient"
	ReasonInsufficientAmount RejectReason = "insufficient payment amount"
)

// RejectionError is a policy verdict, not an infrastructure failure. A
// rejected hash is never persisted, so retrying with a corrected transaction
// stays possible.
type RejectionError struct {
	Reason RejectReason
}

func (e *RejectionError) Error() string {
	return string(e.Reason)
}

func Reject(reason RejectReason) error {
	return &RejectionError{Reason: reason}
}
