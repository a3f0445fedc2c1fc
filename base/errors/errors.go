// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
	"log/slog"
)

// New returns an error that formats as the given text.
// It is the same as the standard library [errors.New].
func New(text string) error { return errors.New(text) }

// Is is the same as the standard library [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// Join is the same as the standard library [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(imagex.Save(img, "fi.png"))
//	// or
//	return errors.Log(imagex.Save(img, "fi.png"))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 takes the given value and error, logs the error if it is
// non-nil, and returns the value in either case. The intended usage is:
//
//	face := errors.Log1(opentype.NewFace(f, opts))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(fs.Sub(embedded, "raster"))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Error(args ...any)
}

// Test takes the given error and errors the test it if it is non-nil.
// The intended usage is:
//
//	errors.Test(t, MyFunc(v))
func Test(t TestingT, err error) error {
	if err != nil {
		t.Error(err)
	}
	return err
}
