package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("conflict")
	ErrReferenced   = errors.New("resource is referenced")
)

// Error pairs a classifying sentinel with the stable machine code the API
// contract promises. errors.Is against the sentinel still works through
// Unwrap.
type Error struct {
	kind error
	Code string
	msg  string
}

func Errorf(kind error, code, format string, args ...any) *Error {
	return &Error{kind: kind, Code: code, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// CodeOf returns the machine code carried in the error chain, or "".
func CodeOf(err error) string {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}
