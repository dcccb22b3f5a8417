package domain

import "errors"

// ErrorKind is the closed vocabulary every storage failure is folded
// into before it leaves the data layer.
type ErrorKind string

const (
	KindPermissionDenied ErrorKind = "permission-denied"
	KindNotFound         ErrorKind = "not-found"
	KindAlreadyExists    ErrorKind = "already-exists"
	KindUnknown          ErrorKind = "unknown"
)

// Error is a normalized storage error. Err retains the provider error
// for diagnostics and is reachable through errors.Unwrap.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so callers can test against
// the sentinels below without caring about message or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrPermissionDenied = &Error{Kind: KindPermissionDenied, Message: "you do not have permission to perform this action"}
	ErrNotFound         = &Error{Kind: KindNotFound, Message: "the requested resource was not found"}
	ErrAlreadyExists    = &Error{Kind: KindAlreadyExists, Message: "this resource already exists"}
)

// NewError builds a normalized error around a provider failure.
func NewError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

// Normalize guarantees the result carries a kind. Already-normalized
// errors pass through unchanged; anything else becomes unknown with the
// original message preserved. Never panics, nil stays nil.
func Normalize(err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return &Error{Kind: KindUnknown, Message: err.Error(), Err: err}
}

// Kind extracts the normalized kind, defaulting to unknown.
func Kind(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
