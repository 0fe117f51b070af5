// Package errors defines the structured failure type every deploy step
// returns. Each error carries a category code, a short user-facing message,
// and an optional fix suggestion; the root command prints one and exits.
package errors

import (
	"errors"
	"strings"
)

// Error codes for categorizing failures across the deploy pipeline.
// Every step of a run maps to exactly one code, and every error is
// terminal: nothing is caught and retried.
const (
	ErrConfigRead       = "CONFIG_READ"
	ErrConfigParse      = "CONFIG_PARSE"
	ErrConfigWrite      = "CONFIG_WRITE"
	ErrHomeDir          = "HOME_DIR"
	ErrKeyGen           = "KEYGEN"
	ErrKeyInstall       = "KEY_INSTALL"
	ErrBuild            = "BUILD"
	ErrNoBinaryTarget   = "NO_BINARY_TARGET"
	ErrAmbiguousProject = "AMBIGUOUS_PROJECT"
	ErrProvision        = "PROVISION"
	ErrTransfer         = "TRANSFER"
)

// Error pairs what failed with how to recover. Rendered over several lines,
// message first, then the underlying cause and the suggestion when present:
//
//	✗ SCP file transfer failed
//
//	  exit status 1
//
//	  Check your connection to pi.local
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New builds an error with no underlying cause.
func New(code, message, suggestion string) *Error {
	return Wrap(nil, code, message, suggestion)
}

// Wrap attaches a code, message, and suggestion to an underlying error.
func Wrap(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

func (e *Error) Error() string {
	sections := []string{"✗ " + e.Message}

	if e.Cause != nil {
		sections = append(sections, "  "+e.Cause.Error())
	}
	if e.Suggestion != "" {
		sections = append(sections, "  "+e.Suggestion)
	}

	return strings.Join(sections, "\n\n") + "\n"
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode reports whether err is, or wraps, an Error with the given code.
func IsCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
