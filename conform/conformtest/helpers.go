// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package conformtest

import (
	"context"

	"github.com/diffeo/go-conformance/conform"
)

// ---------------------------------------------------------------------------
// Support functions for common tests

// String returns a pointer to its argument, for filling optional
// request fields inline.
func String(s string) *string { return &s }

// Bool returns a pointer to its argument.
func Bool(b bool) *bool { return &b }

// Int32 returns a pointer to its argument.
func Int32(i int32) *int32 { return &i }

// Int64 returns a pointer to its argument.
func Int64(i int64) *int64 { return &i }

// Float64 returns a pointer to its argument.
func Float64(f float64) *float64 { return &f }

// CreateWidget creates a widget through the service under test,
// failing the running test if the creation does not produce a value.
// It returns the stored widget and its version token.
func (s *Suite) CreateWidget(w conform.Widget) (conform.Widget, string) {
	res := s.Service.CreateWidget(context.Background(),
		conform.CreateWidgetRequest{Widget: w})
	if !s.Nil(res.Err) || !s.NotNil(res.Value) {
		s.T().FailNow()
	}
	s.NotNil(res.Value.Widget)
	s.NotEmpty(res.Value.ETag)
	return *res.Value.Widget, res.Value.ETag
}

// ErrorCode checks that an error arm is present and carries an
// expected symbolic code.
func (s *Suite) ErrorCode(expected string, err *conform.Error) {
	if s.NotNil(err) {
		s.Equal(expected, err.Code)
	}
}
