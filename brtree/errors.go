package brtree

import "errors"

// ErrMalformed is reported by Parse for any structural violation: a second
// root, an attribute outside of any node, or unbalanced brackets.
var ErrMalformed = errors.New("malformed document")

// ErrNotFound is reported by Remove and Replace when the target child is
// not present.
var ErrNotFound = errors.New("child not found")

// MalformedError describes why a document failed to parse. It wraps
// ErrMalformed so callers can match with errors.Is.
type MalformedError struct {
	Msg string
}

func (e *MalformedError) Error() string { return "brtree: malformed document: " + e.Msg }

func (e *MalformedError) Unwrap() error { return ErrMalformed }
