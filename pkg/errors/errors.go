// Copyright © 2018 One Concern

// Package errors augments the standard errors
// provided by fmt (https://golang.org/src/fmt/errors.go)
// with Wrap() and WrapMessage() methods to qualify errors without resorting
// to fmt.Errorf("%w", err).
//
// The intended usage is to declare sentinel errors in some status package,
// then wrap the actual cause whenever the sentinel is returned:
//
//	return status.ErrUploadFailed.Wrap(err)
package errors

import (
	stderr "errors"
	"fmt"
)

var _ error = New("")

// New Error
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error augments the standard error interface with a Wrap method.
//
// The main difference with github.com/pkg/errors is that we are wrapping
// errors from errors, not from text.
//
// Wrapping never mutates the receiver: a sentinel declared at package level
// may be wrapped concurrently and remains comparable with errors.Is.
type Error struct {
	msg    string
	err    error
	parent *Error
}

// Error message
func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap nested error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap a nested error
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, parent: e.root()}
}

// WrapMessage wraps a nested error built from a formatted message
func (e *Error) WrapMessage(format string, args ...interface{}) *Error {
	return e.Wrap(New(fmt.Sprintf(format, args...)))
}

// Is of some error type?
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return e.err == target
	}
	return e == t || e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.parent != nil {
		return e.parent
	}
	return e
}

// As finds the first error in err's chain that matches target, and if so, sets target to that error value and returns true.
// (a shortcut to standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
