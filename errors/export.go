// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package errors

import (
	stderrors "errors"
	"reflect"
)

// Export functions from standard package errors for convenience.

// New directly calls standard errors.New.
func New(msg string) error {
	return stderrors.New(msg)
}

// Unwrap directly calls standard errors.Unwrap.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Is directly calls standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As calls standard errors.As,
// but panics if target is of type *error,
// because As always returns true for that
// so that the function call is senseless.
func As(err error, target any) bool {
	if reflect.TypeOf(target) == errorPointerType {
		panic(AutoMsg("target is of type *error; " +
			"As always returns true for that"))
	}
	return stderrors.As(err, target)
}

// Join directly calls standard errors.Join.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// errorPointerType is the reflect.Type of *error.
var errorPointerType = reflect.TypeFor[*error]()
