package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a diagnostic failure. Every failure maps to exit code 1,
// the kind only selects which remediation text the operator sees.
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindConnection    Kind = "connection"
)

// Step names the stage of the connection sequence that failed.
type Step string

const (
	StepConnect       Step = "connect"
	StepPing          Step = "ping"
	StepListDatabases Step = "list_databases"
	StepDisconnect    Step = "disconnect"
)

// Exit codes returned by the dbcheck command.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Error is a structured diagnostic error.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Step    Step  // empty for configuration errors
	Err     error // underlying driver error, if any
}

func (e *Error) Error() string {
	prefix := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Step != "" {
		prefix = fmt.Sprintf("[%s] %s (%s)", e.Code, e.Message, e.Step)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return prefix
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error without a cause.
func New(kind Kind, code string, message string) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Wrap wraps a driver error with a kind and the failed step.
func Wrap(kind Kind, code string, message string, step Step, err error) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
		Step:    step,
		Err:     err,
	}
}

// ---- Configuration (CFG) ----

// ErrMissingURI reports that no connection URI was configured.
func ErrMissingURI(envKey string) *Error {
	return New(KindConfiguration, "CFG_001", fmt.Sprintf("%s is not defined", envKey))
}

// ErrInvalidConfig wraps a failure to read or decode configuration.
func ErrInvalidConfig(err error) *Error {
	return Wrap(KindConfiguration, "CFG_002", "invalid configuration", "", err)
}

// ---- Connection (CONN) ----

// Connection wraps any failure of the connect/ping/list/disconnect sequence.
func Connection(step Step, err error) *Error {
	return Wrap(KindConnection, "CONN_001", "connection test failed", step, err)
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsConfiguration(err error) bool {
	return KindOf(err) == KindConfiguration
}

func IsConnection(err error) bool {
	return KindOf(err) == KindConnection
}

// Cause returns the message of the underlying driver error, or "" when the
// failure carries none.
func Cause(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Err == nil {
			return ""
		}
		return appErr.Err.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// ExitCode maps a diagnostic result to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitFailure
}
