// Package apperr carries the error kinds every service reports:
// validation, not-found, conflict and access-control failures.
// Controllers map kinds to HTTP statuses.
package apperr

import "errors"

type Kind string

const (
	Validation   Kind = "VALIDATION"
	NotFound     Kind = "NOT_FOUND"
	Conflict     Kind = "CONFLICT"
	Unauthorized Kind = "UNAUTHORIZED"
	Forbidden    Kind = "FORBIDDEN"
)

type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Kind() Kind    { return e.kind }

func New(k Kind, msg string) error { return &Error{kind: k, msg: msg} }

// KindOf extracts the kind, or "" for plain errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.kind
	}
	return ""
}
