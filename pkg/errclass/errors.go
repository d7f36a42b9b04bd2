// Package errclass defines the stable, machine-readable error classes
// surfaced by svgmotion.
package errclass

import "fmt"

// Error is a stable, machine-readable error class.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

// WithMessage returns a new Error with the same Code but a specific message.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{Code: e.Code, Message: msg}
}

// WithMessagef returns a new Error with a formatted message.
func (e *Error) WithMessagef(format string, args ...any) *Error {
	return &Error{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// Document operations never fail; these classes cover the preview cache
// and caller-side validation only.
var (
	ErrPreviewUnavailable = &Error{Code: "E_PREVIEW_UNAVAILABLE"}
	ErrNameInvalid        = &Error{Code: "E_NAME_INVALID"}
	ErrAnimationUnknown   = &Error{Code: "E_ANIMATION_UNKNOWN"}
	ErrSettingsInvalid    = &Error{Code: "E_SETTINGS_INVALID"}
	ErrConfigInvalid      = &Error{Code: "E_CONFIG_INVALID"}
)
