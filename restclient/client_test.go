// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient_test

import (
	"net/http/httptest"
	"testing"

	"github.com/diffeo/go-conformance/conform/conformtest"
	"github.com/diffeo/go-conformance/memory"
	"github.com/diffeo/go-conformance/restclient"
	"github.com/diffeo/go-conformance/restserver"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic service tests over an object stack where the
// REST client code talks to the REST server code, which points at an
// in-memory backend.
type Suite struct {
	conformtest.Suite
	server *httptest.Server
}

// SetupSuite does global setup for the test suite.
func (s *Suite) SetupSuite() {
	s.Suite.SetupSuite()
	backend := memory.NewWithClock(nil, s.Clock)
	s.server = httptest.NewServer(restserver.NewRouter(backend))
	service, err := restclient.New(s.server.URL)
	if err != nil {
		panic(err)
	}
	s.Service = service
}

// TearDownSuite shuts down the test HTTP server.
func (s *Suite) TearDownSuite() {
	s.server.Close()
}

// TestService runs the generic service tests through the full REST
// stack.
func TestService(t *testing.T) {
	suite.Run(t, &Suite{})
}

func TestUnreachableURL(t *testing.T) {
	_, err := restclient.New("http://localhost:1/")
	if err == nil {
		t.Fatal("Expected error when given an unreachable URL.")
	}
}
