// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality
// of numbers within a tolerance, for use in tests.
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Equal asserts that the two given numbers are equal
// within a tolerance of 1.0e-4.
func Equal[T constraints.Float](t testing.TB, expected, actual T, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 1.0e-4, msgAndArgs...)
}

// EqualTol asserts that the two given numbers are equal
// within the given tolerance.
func EqualTol[T constraints.Float](t testing.TB, expected, actual, tol T, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, float64(expected), float64(actual), float64(tol), msgAndArgs...)
}

// EqualSlice asserts that the two given slices of numbers have the
// same length and are elementwise equal within a tolerance of 1.0e-4.
func EqualSlice[T constraints.Float](t testing.TB, expected, actual []T, msgAndArgs ...any) bool {
	return EqualTolSlice(t, expected, actual, 1.0e-4, msgAndArgs...)
}

// EqualTolSlice asserts that the two given slices of numbers have the
// same length and are elementwise equal within the given tolerance.
func EqualTolSlice[T constraints.Float](t testing.TB, expected, actual []T, tol T, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Equal(t, len(expected), len(actual), msgAndArgs...) {
		return false
	}
	for i, e := range expected {
		if !EqualTol(t, e, actual[i], tol, msgAndArgs...) {
			return false
		}
	}
	return true
}
