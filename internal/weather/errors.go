package weather

import "fmt"

// The calling protocol has no structured-error channel for tool results, so
// every failure is ultimately rendered as a descriptive string. Internally the
// kinds stay distinguishable: callers can match with errors.As and the outer
// boundary flattens to err.Error().

// ValidationError reports malformed caller input (unsupported city, bad days
// value). It is produced before any network call is made.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// InvalidDaysError is the validation failure for a forecast days value outside
// the supported range, or one that is not an integer.
func InvalidDaysError() *ValidationError {
	return &ValidationError{msg: "Error: 'days' parameter must be an integer between 1 and 7"}
}

// UpstreamError reports a transport-level failure against the weather
// provider. The prose already carries the failure description.
type UpstreamError struct {
	msg   string
	cause error
}

func (e *UpstreamError) Error() string { return e.msg }

func (e *UpstreamError) Unwrap() error { return e.cause }

func newUpstreamError(cause error, format string, args ...any) *UpstreamError {
	return &UpstreamError{msg: fmt.Sprintf(format, args...), cause: cause}
}
