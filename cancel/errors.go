// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package cancel

// This file exists only to document the package's error-handling
// convention: contract violations (programmer bugs, see spec.md §7) are
// reported with panic(errors.AutoMsg("...")) at the call site, and system
// errors from underlying OS primitives are returned wrapped with
// errors.AutoWrap(err), both from github.com/gocancel/cancel/errors. Each
// call site uses the helper directly rather than through an indirection
// here, so the automatically captured caller frame names the real
// offending function instead of a shared wrapper.
