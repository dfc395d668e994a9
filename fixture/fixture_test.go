// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package fixture

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	cases, err := Load("testdata/cases.yaml")
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, cases, 4)
	assert.Equal(t, "root document", cases[0].Name)
	assert.Equal(t, "GET", cases[0].Request.Method)
	assert.Equal(t, "/", cases[0].Request.URI)
	assert.Equal(t, 200, cases[0].Response.Status)
}

func TestParseUnnamedCase(t *testing.T) {
	_, err := Parse([]byte(`
- request:
    method: GET
    uri: /
  response:
    status: 200
`))
	assert.Error(t, err)
}

func TestParseIncompleteRequest(t *testing.T) {
	_, err := Parse([]byte(`
- name: no method
  request:
    uri: /
  response:
    status: 200
`))
	assert.Error(t, err)
}

func TestParseNotYAML(t *testing.T) {
	_, err := Parse([]byte("{"))
	assert.Error(t, err)
}

func checkCase() Case {
	return Case{
		Name:    "check",
		Request: Request{Method: "GET", URI: "/"},
		Response: Response{
			Status:  200,
			Headers: map[string]string{"Content-Type": "application/json"},
			Body:    `{"a": 1, "b": 2}`,
		},
	}
}

func TestCheckConforming(t *testing.T) {
	c := checkCase()
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	// Key order and whitespace in a JSON body don't matter.
	mismatches := c.Check(200, headers, []byte(`{"b":2,"a":1}`))
	assert.Empty(t, mismatches)
}

func TestCheckStatusMismatch(t *testing.T) {
	c := checkCase()
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	mismatches := c.Check(404, headers, []byte(`{"a":1,"b":2}`))
	assert.Len(t, mismatches, 1)
}

func TestCheckHeaderMismatch(t *testing.T) {
	c := checkCase()
	headers := http.Header{}
	headers.Set("Content-Type", "text/plain")
	mismatches := c.Check(200, headers, []byte(`{"a":1,"b":2}`))
	assert.Len(t, mismatches, 1)
}

func TestCheckBodyMismatch(t *testing.T) {
	c := checkCase()
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	mismatches := c.Check(200, headers, []byte(`{"a":1,"b":3}`))
	assert.Len(t, mismatches, 1)
}

// TestCheckEmptyBody checks that a fixture recording a bodiless
// response rejects a response that has one.
func TestCheckEmptyBody(t *testing.T) {
	c := Case{
		Name:     "bodiless",
		Request:  Request{Method: "GET", URI: "/"},
		Response: Response{Status: 304},
	}
	assert.Empty(t, c.Check(304, http.Header{}, nil))
	assert.Len(t, c.Check(304, http.Header{}, []byte(`{}`)), 1)
}

// TestCheckNonJSONBody checks the byte-for-byte fallback for bodies
// that aren't JSON.
func TestCheckNonJSONBody(t *testing.T) {
	c := Case{
		Name:     "text",
		Request:  Request{Method: "GET", URI: "/"},
		Response: Response{Status: 200, Body: "hello"},
	}
	assert.Empty(t, c.Check(200, http.Header{}, []byte("hello")))
	assert.Len(t, c.Check(200, http.Header{}, []byte("goodbye")), 1)
}
