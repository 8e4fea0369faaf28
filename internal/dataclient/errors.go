package dataclient

import (
	"errors"
	"fmt"

	"github.com/natnael-haile/hireflow/internal/domain/contract"
)

// Kind classifies a failure into the taxonomy call sites branch on.
type Kind string

const (
	KindValidation       Kind = "ValidationError"
	KindAuth             Kind = "AuthError"
	KindNotFound         Kind = "NotFoundError"
	KindConflict         Kind = "ConflictError"
	KindUnscopedMutation Kind = "UnscopedMutation"
	KindTransport        Kind = "TransportError"
	KindUnknownEntity    Kind = "UnknownEntity"
	KindUnknownProcedure Kind = "UnknownProcedure"
)

// Error is the uniform error shape returned in the {data, error} envelope.
// Lower-level failures are wrapped with their original message preserved.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// classify re-classifies a lower-level failure. Anything not already an *Error
// is treated as a transport-level failure.
func classify(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if errors.Is(err, contract.ErrDuplicateKey) {
		return wrapError(KindConflict, err, "unique constraint violated")
	}
	return wrapError(KindTransport, err, "store operation failed")
}
