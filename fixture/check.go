// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package fixture

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"
)

// Check compares an observed HTTP exchange against the recorded
// response of a test case.  It returns one human-readable mismatch
// description per deviation, or nil if the exchange conforms.
func (c Case) Check(status int, headers http.Header, body []byte) []string {
	var mismatches []string

	if status != c.Response.Status {
		mismatches = append(mismatches,
			fmt.Sprintf("status: got %d, want %d", status, c.Response.Status))
	}

	for name, want := range c.Response.Headers {
		got := headers.Get(name)
		if got != want {
			mismatches = append(mismatches,
				fmt.Sprintf("header %s: got %q, want %q", name, got, want))
		}
	}

	if msg := checkBody(c.Response.Body, body); msg != "" {
		mismatches = append(mismatches, msg)
	}

	return mismatches
}

// checkBody compares bodies structurally when both sides parse as
// JSON, so that key order and whitespace in the fixture don't matter,
// and byte for byte otherwise.  An empty expected body requires an
// empty observed body: a fixture that records a bodiless 304 must not
// pass against a response that has one.
func checkBody(want string, got []byte) string {
	trimmedGot := strings.TrimSpace(string(got))
	trimmedWant := strings.TrimSpace(want)

	if trimmedWant == "" {
		if trimmedGot != "" {
			return fmt.Sprintf("body: got %q, want empty", trimmedGot)
		}
		return ""
	}

	var wantVal, gotVal interface{}
	wantErr := json.Unmarshal([]byte(trimmedWant), &wantVal)
	gotErr := json.Unmarshal([]byte(trimmedGot), &gotVal)
	if wantErr == nil && gotErr == nil {
		if !reflect.DeepEqual(wantVal, gotVal) {
			return fmt.Sprintf("body: got %s, want %s", trimmedGot, trimmedWant)
		}
		return ""
	}

	if trimmedGot != trimmedWant {
		return fmt.Sprintf("body: got %q, want %q", trimmedGot, trimmedWant)
	}
	return ""
}
