package workflow

import (
	"errors"
	"fmt"
)

// Kind classifies why a transition was refused. Every refusal is recovered at
// the transition boundary and returned as a typed result; nothing is thrown
// past the executor.

type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindInvalidTransition  Kind = "invalid_transition"
	KindUnauthorized       Kind = "unauthorized"
	KindPreconditionFailed Kind = "precondition_failed"
	KindConflictingState   Kind = "conflicting_state"
)

// Error is a refused transition. PreconditionFailed errors always carry a
// human-readable business reason the actor can act on ("Quote has expired",
// "Payment not complete - balance due: 40").
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func NewError(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

func NotFound(reason string) *Error {
	return &Error{Kind: KindNotFound, Reason: reason}
}

func InvalidTransition(reason string) *Error {
	return &Error{Kind: KindInvalidTransition, Reason: reason}
}

func Unauthorized(reason string) *Error {
	return &Error{Kind: KindUnauthorized, Reason: reason}
}

func PreconditionFailed(reason string) *Error {
	return &Error{Kind: KindPreconditionFailed, Reason: reason}
}

func PreconditionFailedf(format string, args ...any) *Error {
	return &Error{Kind: KindPreconditionFailed, Reason: fmt.Sprintf(format, args...)}
}

// ConflictingState marks a transition whose precondition state changed
// between read and commit. Surfaced distinctly from InvalidTransition so
// callers can decide to retry.
func ConflictingState(reason string) *Error {
	return &Error{Kind: KindConflictingState, Reason: reason}
}

// IsKind reports whether err is a workflow Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var we *Error
	return errors.As(err, &we) && we.Kind == kind
}
