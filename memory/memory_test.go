// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-conformance/conform"
	"github.com/diffeo/go-conformance/conform/conformtest"
	"github.com/diffeo/go-conformance/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite is the per-backend generic test suite.
type Suite struct {
	conformtest.Suite
}

// SetupSuite does global setup for the test suite.
func (s *Suite) SetupSuite() {
	s.Suite.SetupSuite()
	s.Service = NewWithClock(nil, s.Clock)
}

// TestService runs the generic service tests against the in-memory
// backend.
func TestService(t *testing.T) {
	suite.Run(t, &Suite{})
}

// TestFixtureCount checks that the service reports the number of test
// cases it was constructed with.
func TestFixtureCount(t *testing.T) {
	cases := []fixture.Case{
		{Name: "one", Request: fixture.Request{Method: "GET", URI: "/"}},
		{Name: "two", Request: fixture.Request{Method: "GET", URI: "/"}},
	}
	service := New(cases)
	res := service.GetInfo(context.Background(), conform.GetInfoRequest{})
	assert.Nil(t, res.Err)
	if assert.NotNil(t, res.Info) {
		assert.Equal(t, 2, res.Info.TestCases)
	}
}

// TestCreatedTimestamp checks that widget creation stamps the current
// time from the injected clock.  The mock clock starts at the epoch.
func TestCreatedTimestamp(t *testing.T) {
	clk := clock.NewMock()
	clk.Add(5 * time.Minute)
	service := NewWithClock(nil, clk)

	res := service.CreateWidget(context.Background(), conform.CreateWidgetRequest{
		Widget: conform.Widget{Color: conformtest.String(conform.ColorBlue)},
	})
	assert.Nil(t, res.Err)
	if assert.NotNil(t, res.Value) && assert.NotNil(t, res.Value.Widget) {
		if assert.NotNil(t, res.Value.Widget.Created) {
			assert.Equal(t, "1970-01-01T00:05:00Z", *res.Value.Widget.Created)
		}
	}
}

// TestDuplicateID checks that creating a widget with an ID that is
// already present is a conflict.
func TestDuplicateID(t *testing.T) {
	service := New(nil)
	ctx := context.Background()

	res := service.CreateWidget(ctx, conform.CreateWidgetRequest{
		Widget: conform.Widget{ID: 17},
	})
	assert.Nil(t, res.Err)

	res = service.CreateWidget(ctx, conform.CreateWidgetRequest{
		Widget: conform.Widget{ID: 17},
	})
	assert.Nil(t, res.Value)
	if assert.NotNil(t, res.Err) {
		assert.Equal(t, conform.CodeConflict, res.Err.Code)
	}
}
