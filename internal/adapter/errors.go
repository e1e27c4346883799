package adapter

import "errors"

// Failure kinds. Every error returned by Router.Generate wraps exactly one.
var (
	ErrProviderUnavailable    = errors.New("provider unavailable")
	ErrMissingCredential      = errors.New("missing credential")
	ErrUnsupportedClientShape = errors.New("unsupported client shape")
	ErrProviderCallFailed     = errors.New("provider call failed")
	ErrUnsupportedProvider    = errors.New("unsupported provider")
)

// Error is the flat, user-facing failure produced at the adapter boundary.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}
