package investmind

import "fmt"

// ValidationError reports user input that failed one of the core's
// validation rules. It is recoverable: callers are expected to re-prompt
// with corrected input.
type ValidationError struct {
	Field string // the offending field, e.g. "amount" or "option_type"
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func validationErrorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// AuthError reports a failed authentication attempt. It deliberately does
// not distinguish an unknown username from a password mismatch.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

// PersistenceError reports that the user store could not be read or
// written. At startup it is fatal: there is no recovery path for a store
// that exists but cannot be parsed.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("user store %q: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
