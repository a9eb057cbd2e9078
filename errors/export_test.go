// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package errors

import "github.com/gocancel/cancel/runtime"

// Export for testing only.

// NewAutoWrappedError returns an error of the type that is the same as
// the error type returned by functions AutoWrap, AutoWrapSkip,
// and AutoWrapCustom.
//
// It is used to simulate the error generated by AutoWrap, AutoWrapSkip,
// and AutoWrapCustom for testing.
func NewAutoWrappedError(err error) error {
	frame, ok := runtime.CallerFrame(1)
	if !ok || frame.Function == "" ||
		len(runtime.FuncPkg(frame.Function)) >= len(frame.Function) {
		panic(AutoMsg("cannot retrieve caller function name"))
	}
	return &autoWrappedError{
		err:      err,
		ms:       PrependSimpleFuncName,
		fullFunc: frame.Function,
	}
}

type ErrorListImpl = errorList

func (el *ErrorListImpl) GetList() []error {
	if el == nil {
		return nil
	}
	return el.list
}
