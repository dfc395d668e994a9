// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides generic REST client code.

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/diffeo/go-conformance/restdata"
	"github.com/jtacoma/uritemplates"
	"github.com/ugorji/go/codec"
)

// resource is any object that has a URL.
type resource struct {
	URL *url.URL
}

// Template expands an RFC 6570 URI template with vars, relative to
// the resource's own URL.
func (r *resource) Template(template string, vars map[string]interface{}) (*url.URL, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return nil, err
	}

	expanded, err := tmpl.Expand(vars)
	if err != nil {
		return nil, err
	}

	return r.URL.Parse(expanded)
}

// exchange captures the transport-level parts of a response that the
// typed client needs beyond the decoded body: the status code (to
// recognize 304 Not Modified) and headers (ETag, Location).
type exchange struct {
	StatusCode int
	Header     http.Header
}

// Do performs some HTTP action.  If in is non-nil, the request data
// is serialized and sent as the body of, for instance, a POST
// request.  If out is non-nil, the response data (if any) is
// deserialized into this object, which must be of pointer type.
// headers, if non-nil, are added to the request.
func (r *resource) Do(ctx context.Context, method string, url *url.URL, headers http.Header, in, out interface{}) (ex exchange, err error) {
	json := &codec.JsonHandle{}

	// Set up the body as serialized JSON, if there is one
	var body io.Reader
	if in != nil {
		var encoded []byte
		encoder := codec.NewEncoderBytes(&encoded, json)
		if err = encoder.Encode(in); err != nil {
			return exchange{}, err
		}
		body = bytes.NewReader(encoded)
	}

	// Create the request and set headers
	req, err := http.NewRequestWithContext(ctx, method, url.String(), body)
	if err != nil {
		return exchange{}, err
	}
	for name, values := range headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	if in != nil {
		req.Header.Set("Content-Type", restdata.V1JSONMediaType)
	}
	req.Header.Set("Accept", restdata.V1JSONMediaType)

	// Actually do the request
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return exchange{}, err
	}

	// If the response included a body, clean up afterwards
	if resp.Body != nil {
		defer func() {
			err = firstError(err, resp.Body.Close())
		}()
	}
	ex = exchange{StatusCode: resp.StatusCode, Header: resp.Header}

	// Check the response code.  304 Not Modified is a success for
	// conditional requests; the typed client inspects StatusCode.
	if err = checkHTTPStatus(resp); err != nil {
		return ex, err
	}

	// If there is both a body and a requested output, decode it
	if resp.Body != nil && out != nil &&
		resp.StatusCode != http.StatusNoContent &&
		resp.StatusCode != http.StatusNotModified {
		contentType := resp.Header.Get("Content-Type")
		err = restdata.Decode(contentType, resp.Body, out)
	}

	return ex, err
}

// Get retrieves a resource from some URL.  The result is stored in
// out, which must be of pointer type.
func (r *resource) Get(ctx context.Context, url *url.URL, out interface{}) (exchange, error) {
	return r.Do(ctx, "GET", url, nil, nil, out)
}

// Post submits data to some URL.  The server response is stored in
// out, which must be of pointer type.
func (r *resource) Post(ctx context.Context, url *url.URL, in, out interface{}) (exchange, error) {
	return r.Do(ctx, "POST", url, nil, in, out)
}

// ErrorHTTP is a catch-all error for non-successes returned from the
// REST endpoint that did not carry a decodable error body.
type ErrorHTTP struct {
	// Response holds a pointer to the failing HTTP response.
	Response *http.Response

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string
}

func (e ErrorHTTP) Error() string {
	return e.Response.Status
}

// checkHTTPStatus examines an HTTP response and returns an error if
// it is not successful.  2xx statuses and 304 Not Modified are
// successes.
func checkHTTPStatus(resp *http.Response) error {
	if len(resp.Status) > 0 && resp.Status[0] == '2' {
		return nil
	}
	if resp.StatusCode == http.StatusNotModified {
		return nil
	}

	// Always collect the entire body; we will need it as a
	// fallback and can only parse it once.
	var body []byte
	var err error
	if resp.Body != nil {
		body, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}
	}

	// Take a shot at decoding it as a better error
	var errResp restdata.ErrorResponse
	contentType := resp.Header.Get("Content-Type")
	err2 := restdata.Decode(contentType, bytes.NewReader(body), &errResp)
	if err2 == nil && errResp.Code != "" {
		// Given that we decoded that successfully, return the
		// server-provided error
		return errResp.ToError()
	}

	return ErrorHTTP{Response: resp, Body: string(body)}
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
