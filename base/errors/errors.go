// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
)

// ErrUnsupported indicates that a requested operation cannot be performed,
// because it is unsupported. It is [errors.ErrUnsupported].
var ErrUnsupported = errors.ErrUnsupported

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
// It is [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
// It is [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// As finds the first error in err's tree that matches target, and if one is found,
// sets target to that error value and returns true. Otherwise, it returns false.
// It is [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is reports whether any error in err's tree matches target.
// It is [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if err's type contains
// an Unwrap method returning error. Otherwise, Unwrap returns nil.
// It is [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
