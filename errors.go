package ioc

import (
	"errors"

	"github.com/MunMunMiao/dn-ioc/internal/engine"
)

type ErrorCode = engine.ErrorCode

const (
	ErrCodeUnknown            = engine.ErrCodeUnknown
	ErrCodeCircularDependency = engine.ErrCodeCircularDependency
	ErrCodeNoActiveScope      = engine.ErrCodeNoActiveScope
	ErrCodeConstructionPanic  = engine.ErrCodeConstructionPanic
	ErrCodeTypeMismatch       = engine.ErrCodeTypeMismatch
	ErrCodeDestroyFailed      = engine.ErrCodeDestroyFailed
	ErrCodeHealthCheckFailed  = engine.ErrCodeHealthCheckFailed
)

// Error is the failure type for the runtime's own errors. Factory
// errors are never wrapped in it: they reach the Resolve caller
// unchanged.
type Error = engine.Error

func errNilProviderRef() *Error {
	return engine.NewError(ErrCodeUnknown, "nil provider reference", nil)
}

func errTypeMismatch(message string) *Error {
	return engine.NewError(ErrCodeTypeMismatch, message, nil)
}

func errHealthCheckFailed(provider string, cause error) *Error {
	return engine.NewError(
		ErrCodeHealthCheckFailed,
		"health check failed",
		cause,
	).WithProvider(provider)
}

func IsCircularDependency(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeCircularDependency
}

func IsNoActiveScope(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNoActiveScope
}

func IsConstructionPanic(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConstructionPanic
}

func IsTypeMismatch(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTypeMismatch
}

func IsDestroyFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDestroyFailed
}

func IsHealthCheckFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeHealthCheckFailed
}
