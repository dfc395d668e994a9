// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package conformtest provides generic functional tests for the
// conformance Service interface.  A typical backend test module needs
// to wrap Suite to create its backend:
//
//	package mybackend
//
//	import (
//	        "testing"
//	        "github.com/diffeo/go-conformance/conform/conformtest"
//	        "github.com/stretchr/testify/suite"
//	)
//
//	// Suite is the per-backend generic test suite.
//	type Suite struct{
//	        conformtest.Suite
//	}
//
//	// SetupSuite does global setup for the test suite.
//	func (s *Suite) SetupSuite() {
//	        s.Suite.SetupSuite()
//	        s.Service = NewWithClock(nil, s.Clock)
//	}
//
//	// TestService runs the generic service tests.
//	func TestService(t *testing.T) {
//	        suite.Run(t, &Suite{})
//	}
package conformtest

import (
	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-conformance/conform"
	"github.com/stretchr/testify/suite"
)

// Suite is the generic conformance service test suite.
type Suite struct {
	suite.Suite

	// Clock contains the alternate time source to be used in tests.  It
	// is pre-initialized to a mock clock.
	Clock *clock.Mock

	// Service contains the top-level interface to the backend under
	// test.  It is set by importing packages.
	Service conform.Service
}

// SetupSuite does one-time initialization for the test suite.
func (s *Suite) SetupSuite() {
	s.Clock = clock.NewMock()
}
