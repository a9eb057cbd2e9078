// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package errors

import "strconv"

// ErrorMessageStrategy is a strategy for auto-generating error messages.
type ErrorMessageStrategy int8

// Enumeration of supported error message strategies.
const (
	OriginalMsg             ErrorMessageStrategy = 1 + iota // OriginalMessage
	PrependFullFuncName                                     // PrependFullFunctionName
	PrependFullPkgName                                      // PrependFullPackageName
	PrependSimpleFuncName                                   // PrependSimpleFunctionName
	PrependSimplePkgName                                    // PrependSimplePackageName
	maxErrorMessageStrategy                                 // ErrorMessageStrategy(6)
)

// Before running the following command, please make sure the numeric value
// in the line comment of maxErrorMessageStrategy is correct.
//
//go:generate stringer -type=ErrorMessageStrategy -output=error_message_strategy_string.go -linecomment

// Valid returns true if the error message strategy is known.
//
// Known error message strategies are shown as follows:
//   - OriginalMsg: use the error message itself
//   - PrependFullFuncName: add the full function name (i.e., the package path-qualified function name) before the error message
//   - PrependFullPkgName: add the full package name before the error message
//   - PrependSimpleFuncName: add the simple function name before the error message
//   - PrependSimplePkgName: add the simple package name before the error message
func (i ErrorMessageStrategy) Valid() bool {
	return i > 0 && i < maxErrorMessageStrategy
}

// MustValid panics if i is invalid.
// Otherwise, it does nothing.
func (i ErrorMessageStrategy) MustValid() {
	if !i.Valid() {
		panic(AutoMsgCustom(
			"unknown message strategy: "+strconv.FormatInt(int64(i), 10),
			-1,
			1,
		))
	}
}
