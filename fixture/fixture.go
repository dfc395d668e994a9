// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package fixture models conformance fixture files: ordered lists of
// named test cases, each a literal HTTP request/response exchange.
//
// The binding layer never interprets fixtures.  A service is handed
// the loaded cases at construction and may report their count; the
// conformcheck tool replays them against a live server and compares
// the observed exchange against the recorded one.
package fixture

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Request is the literal HTTP request of a test case.
type Request struct {
	// Method is the HTTP method, e.g. "GET".
	Method string `yaml:"method"`

	// URI is the request target, a path with optional query
	// string, e.g. "/checkQuery?int32=4".
	URI string `yaml:"uri"`

	// Headers holds request headers to send, if any.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Body is the literal request body, usually JSON text.  An
	// empty string means no body.
	Body string `yaml:"body,omitempty"`
}

// Response is the expected HTTP response of a test case.
type Response struct {
	// Status is the expected HTTP status code.
	Status int `yaml:"status"`

	// Headers holds expected response headers.  Headers present
	// here must appear with exactly these values; headers not
	// listed are not checked.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Body is the expected literal body.  JSON bodies are
	// compared structurally, everything else byte for byte.
	Body string `yaml:"body,omitempty"`
}

// Case is one named conformance test case.
type Case struct {
	Name     string   `yaml:"name"`
	Request  Request  `yaml:"request"`
	Response Response `yaml:"response"`
}

// Load reads an ordered list of test cases from a YAML file.
func Load(filename string) ([]Case, error) {
	bytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(bytes)
}

// Parse reads an ordered list of test cases from YAML text.
func Parse(bytes []byte) ([]Case, error) {
	var cases []Case
	if err := yaml.Unmarshal(bytes, &cases); err != nil {
		return nil, err
	}
	for i, c := range cases {
		if c.Name == "" {
			return nil, fmt.Errorf("test case %d has no name", i)
		}
		if c.Request.Method == "" || c.Request.URI == "" {
			return nil, fmt.Errorf("test case %q has an incomplete request", c.Name)
		}
	}
	return cases, nil
}
