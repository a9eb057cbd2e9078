// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package errors

import stderrors "errors"

// AutoNew creates a new error with specified error message msg,
// and then wraps it by prepending the full function name
// (i.e., the package path-qualified function name) of its caller
// to that error message.
//
// If msg is empty, it will use "<no error message>" instead.
func AutoNew(msg string) error {
	return AutoWrapCustom(stderrors.New(msg), PrependFullFuncName, 1, nil)
}

// AutoNewCustom creates a new error with specified error message msg,
// and then wraps it by prepending the function or package name of the caller
// to that error message.
// Caller can specify its behavior by ms.
//
// skip is the number of stack frames to ascend,
// with 0 identifying the caller of AutoNewCustom.
// For example, if skip is 1, instead of the caller of AutoNewCustom,
// the information of that caller's caller will be used.
//
// If msg is empty, it will use "<no error message>" instead.
// If ms is invalid, it will use PrependFullFuncName instead.
func AutoNewCustom(msg string, ms ErrorMessageStrategy, skip int) error {
	return AutoWrapCustom(stderrors.New(msg), ms, skip+1, nil)
}
