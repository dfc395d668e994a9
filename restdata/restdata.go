// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines common data structures shared between the
// restserver and restclient packages.  Generally JSON encodings of
// these are passed across the wire as the
// application/vnd.diffeo.conformance.v1+json MIME type.
//
// API Usage
//
// HTTP GET the root document at its specified URL.  This returns a
// JSON serialization of the RootData object, which carries links to
// the other resources.  The widget URL field is an RFC 6570 URI
// template with a single parameter, "id".
//
// While the URL structure is predictable and formulaic, it is not
// part of the API contract.  The only specific guarantee is that
// retrieving the root resource returns a serialization of RootData.
//
// HTTP Considerations
//
// Widget resources use entity tags for optimistic concurrency and
// caching.  A GET of a single widget returns its current version
// token in the ETag response header; supplying that token in
// If-None-Match yields 304 Not Modified with no body.  A DELETE with
// If-Match only succeeds if the supplied token matches the current
// version; a stale token yields 409 Conflict, and a missing widget
// yields 404 Not Found regardless of the token.
//
// Errors
//
// Every error is returned as an encoding of ErrorResponse.  The code
// field is a symbolic name; the mapping from codes to HTTP status
// codes is fixed across all endpoints (see StatusForCode) and unknown
// codes map to 500 Internal Server Error.  If Go server code panics,
// this is captured and returned as an ErrorResponse with code
// "panic".
package restdata

import "github.com/diffeo/go-conformance/conform"

// V1JSONMediaType is the preferred, most specific MIME type for the
// JSON representation of this content.
const V1JSONMediaType = "application/vnd.diffeo.conformance.v1+json"

// JSONMediaType requests the most recent version of the JSON
// representation of this content.
const JSONMediaType = "application/vnd.diffeo.conformance+json"

// RootData is returned by the root path.
type RootData struct {
	// Service is the service name.
	Service string `json:"service"`

	// Version is the service version string.
	Version string `json:"version"`

	// TestCases is the number of conformance test cases loaded
	// into the backing service.
	TestCases int `json:"test_cases"`

	// WidgetsURL points at the widget collection.  This endpoint
	// supports HTTP GET with an optional "q" query parameter,
	// returning a WidgetList, and HTTP POST to submit a new
	// widget.
	WidgetsURL string `json:"widgets_url"`

	// WidgetURL points at the representation of a single widget.
	// This endpoint supports HTTP GET and DELETE.  This field is
	// a URI template with a single parameter, "id".
	WidgetURL string `json:"widget_url"`

	// WidgetBatchURL accepts HTTP POST with a BatchRequest body
	// and returns a positionally aligned array of batch entries.
	WidgetBatchURL string `json:"widget_batch_url"`

	// MirrorFieldsURL accepts HTTP POST with a structured payload
	// and echoes it back.
	MirrorFieldsURL string `json:"mirror_fields_url"`

	// CheckQueryURL supports HTTP GET with up to eight typed
	// query parameters, echoing back the coerced values.
	CheckQueryURL string `json:"check_query_url"`

	// CheckPathURL is a URI template with eight parameters, one
	// per supported primitive type, in declared order: string,
	// boolean, double, int32, int64, decimal, enum, datetime.
	CheckPathURL string `json:"check_path_url"`
}

// WidgetList is the GET /widgets response body.
type WidgetList struct {
	Widgets []conform.Widget `json:"widgets"`
}

// BatchRequest is the POST /widgets/get request body: a bare JSON
// array of widget IDs.
type BatchRequest []int32
