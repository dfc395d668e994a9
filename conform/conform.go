// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package conform defines an abstract API to the conformance widget
// service.
//
// The service exists to exercise an HTTP binding layer: every method
// takes a typed request whose fields were extracted from raw HTTP
// input, and returns a typed result that is either a value or an
// error.  Exactly one arm of each result must be populated.  A result
// with neither arm populated indicates a bug in the service
// implementation, and callers are expected to treat it as fatal
// rather than guessing.
//
// Implementations are handed a static list of conformance test cases
// at construction.  They do not interpret the cases; the count is the
// only thing they may derive from them.
package conform

import "context"

// Service is the principal interface to the conformance system.
// There is one method per HTTP endpoint.  Methods never return Go
// errors: failures travel in the Err arm of the result so that the
// transport layer can shape them uniformly.
type Service interface {
	// GetInfo describes the running service.  It takes no inputs.
	GetInfo(ctx context.Context, req GetInfoRequest) GetInfoResult

	// ListWidgets returns all widgets, optionally filtered by a
	// free-text query.
	ListWidgets(ctx context.Context, req ListWidgetsRequest) ListWidgetsResult

	// CreateWidget stores a new widget and assigns it a version
	// token.  The request body is taken verbatim; the service is
	// responsible for all validation, including enum membership
	// of the widget color.
	CreateWidget(ctx context.Context, req CreateWidgetRequest) CreateWidgetResult

	// GetWidget retrieves a single widget by ID.  If the request
	// carries an If-None-Match token equal to the widget's
	// current version, the result reports NotModified instead of
	// returning the widget.
	GetWidget(ctx context.Context, req GetWidgetRequest) GetWidgetResult

	// DeleteWidget removes a widget.  The outcome distinguishes a
	// missing widget from a version conflict; checking for the
	// missing widget always happens first.
	DeleteWidget(ctx context.Context, req DeleteWidgetRequest) DeleteWidgetResult

	// GetWidgetBatch looks up several widgets at once.  The
	// result array is positionally aligned with the requested
	// IDs; entries for missing widgets carry a NotFound error in
	// place of a widget.
	GetWidgetBatch(ctx context.Context, req GetWidgetBatchRequest) GetWidgetBatchResult

	// MirrorFields echoes a structured payload back to the
	// caller.
	MirrorFields(ctx context.Context, req MirrorFieldsRequest) MirrorFieldsResult

	// CheckQuery echoes back primitive values coerced from query
	// parameters.  Fields absent from the request stay absent in
	// the echo.
	CheckQuery(ctx context.Context, req CheckRequest) CheckResult

	// CheckPath is CheckQuery for values coerced from path
	// segments.
	CheckPath(ctx context.Context, req CheckRequest) CheckResult
}
