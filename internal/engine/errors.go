package engine

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode uint16

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeCircularDependency
	ErrCodeNoActiveScope
	ErrCodeConstructionPanic
	ErrCodeTypeMismatch
	ErrCodeDestroyFailed
	ErrCodeHealthCheckFailed
)

var codeNames = map[ErrorCode]string{
	ErrCodeUnknown:            "UNKNOWN",
	ErrCodeCircularDependency: "CIRCULAR_DEPENDENCY",
	ErrCodeNoActiveScope:      "NO_ACTIVE_SCOPE",
	ErrCodeConstructionPanic:  "CONSTRUCTION_PANIC",
	ErrCodeTypeMismatch:       "TYPE_MISMATCH",
	ErrCodeDestroyFailed:      "DESTROY_FAILED",
	ErrCodeHealthCheckFailed:  "HEALTH_CHECK_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", c)
}

// Error is the failure type for the engine's own errors. Factory errors
// never pass through it: they reach the caller unchanged.
type Error struct {
	Code     ErrorCode
	Message  string
	Provider string
	Chain    []string
	Cause    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))

	if e.Provider != "" {
		b.WriteString(fmt.Sprintf(" provider=%q:", e.Provider))
	}

	b.WriteString(" ")
	b.WriteString(e.Message)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *Error) WithProvider(provider string) *Error {
	e.Provider = provider
	return e
}

func (e *Error) WithChain(chain []string) *Error {
	e.Chain = chain
	return e
}

func NewError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func errCircularDependency(provider string, chain []string) *Error {
	return NewError(
		ErrCodeCircularDependency,
		fmt.Sprintf("circular dependency detected: %s", strings.Join(chain, " -> ")),
		nil,
	).WithProvider(provider).WithChain(chain)
}

func errNoActiveScope() *Error {
	return NewError(
		ErrCodeNoActiveScope,
		"resolver is not bound to an injection context",
		nil,
	)
}

func errConstructionPanic(provider string, recovered any) *Error {
	return NewError(
		ErrCodeConstructionPanic,
		fmt.Sprintf("factory panicked: %v", recovered),
		nil,
	).WithProvider(provider)
}

func errDestroyFailed(provider string, cause error) *Error {
	return NewError(
		ErrCodeDestroyFailed,
		"destroy hook failed",
		cause,
	).WithProvider(provider)
}
