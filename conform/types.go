// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package conform

// Widget is the entity the conformance surface revolves around.  The
// transport layer passes widgets through without inspecting them; all
// of the fields except ID are optional, and a nil pointer means the
// field was never set, which is distinct from a zero value.
type Widget struct {
	// ID identifies the widget.  Widget IDs are small integers
	// assigned at creation time.
	ID int32 `json:"id"`

	// Weight is an arbitrary optional attribute.
	Weight *int32 `json:"weight,omitempty"`

	// Color is a symbolic enum tag.  The binding layer forwards
	// whatever string the client sent; only the service checks
	// membership against the known colors.
	Color *string `json:"color,omitempty"`

	// Created is an RFC 3339 timestamp stamped by the service
	// when the widget was stored.
	Created *string `json:"created,omitempty"`
}

// Widget colors the service accepts.  The binding layer never
// consults this list.
const (
	ColorRed  = "red"
	ColorBlue = "blue"
)

// CheckFields is the record of optional primitive values used by the
// type-checking endpoints.  The same record binds from query
// parameters and from path segments, and is echoed back as the
// response body.  A nil field was not supplied (or failed to parse);
// it must never be echoed as a type's zero value.
type CheckFields struct {
	String   *string  `json:"string,omitempty" mapstructure:"string"`
	Boolean  *bool    `json:"boolean,omitempty" mapstructure:"boolean"`
	Double   *float64 `json:"double,omitempty" mapstructure:"double"`
	Int32    *int32   `json:"int32,omitempty" mapstructure:"int32"`
	Int64    *int64   `json:"int64,omitempty" mapstructure:"int64"`
	Decimal  *float64 `json:"decimal,omitempty" mapstructure:"decimal"`
	Enum     *string  `json:"enum,omitempty" mapstructure:"enum"`
	Datetime *string  `json:"datetime,omitempty" mapstructure:"datetime"`
}

// MirrorPayload is the structured payload the field-mirroring
// endpoint accepts and echoes.  The body arrives as loose JSON and is
// decoded into this shape without validation.
type MirrorPayload struct {
	Field  *CheckFields `json:"field,omitempty" mapstructure:"field"`
	Matrix [][]float64  `json:"matrix,omitempty" mapstructure:"matrix"`
}

// Info describes the running service.
type Info struct {
	// Service is the service name.
	Service string `json:"service"`

	// Version is the service version string.
	Version string `json:"version"`

	// TestCases is the number of conformance test cases the
	// service was constructed with.
	TestCases int `json:"test_cases"`
}

// GetInfoRequest has no fields; the info endpoint takes no inputs.
type GetInfoRequest struct{}

// ListWidgetsRequest carries the optional free-text filter from the
// "q" query parameter.
type ListWidgetsRequest struct {
	Query *string
}

// CreateWidgetRequest carries the JSON request body verbatim.
type CreateWidgetRequest struct {
	Widget Widget
}

// GetWidgetRequest identifies a widget and optionally a version token
// from the If-None-Match header.  ID is a pointer because path
// coercion failures leave the field unset rather than rejecting the
// request.
type GetWidgetRequest struct {
	ID          *int32
	IfNoneMatch *string
}

// DeleteWidgetRequest identifies a widget and optionally a required
// version token from the If-Match header.
type DeleteWidgetRequest struct {
	ID      *int32
	IfMatch *string
}

// GetWidgetBatchRequest carries the JSON array of widget IDs from the
// request body.
type GetWidgetBatchRequest struct {
	IDs []int32
}

// MirrorFieldsRequest carries the loose mirror payload.
type MirrorFieldsRequest struct {
	Payload MirrorPayload
}

// CheckRequest carries the coerced primitive fields for both
// type-checking endpoints.
type CheckRequest struct {
	Fields CheckFields
}

// GetInfoResult is the result union for GetInfo.
type GetInfoResult struct {
	Err  *Error
	Info *Info
}

// WidgetList is the value arm for ListWidgets.
type WidgetList struct {
	Widgets []Widget `json:"widgets"`
}

// ListWidgetsResult is the result union for ListWidgets.
type ListWidgetsResult struct {
	Err   *Error
	Value *WidgetList
}

// CreatedWidget is the value arm for CreateWidget: the stored widget
// plus its freshly assigned version token.
type CreatedWidget struct {
	Widget *Widget
	ETag   string
}

// CreateWidgetResult is the result union for CreateWidget.
type CreateWidgetResult struct {
	Err   *Error
	Value *CreatedWidget
}

// WidgetVersion is the value arm for GetWidget.  Widget and
// NotModified are mutually exclusive: a present widget is a fresh
// resource, NotModified reports that the caller's token is current.
// Both absent is a contract violation.
type WidgetVersion struct {
	Widget      *Widget
	ETag        string
	NotModified bool
}

// GetWidgetResult is the result union for GetWidget.
type GetWidgetResult struct {
	Err   *Error
	Value *WidgetVersion
}

// DeleteOutcome is the value arm for DeleteWidget.  The zero value
// means the widget was deleted.  NotFound takes precedence over
// Conflict; a version conflict can only be reported for a widget
// that exists.
type DeleteOutcome struct {
	NotFound bool
	Conflict bool
}

// DeleteWidgetResult is the result union for DeleteWidget.
type DeleteWidgetResult struct {
	Err   *Error
	Value *DeleteOutcome
}

// BatchEntry is one element of a batch lookup response, aligned to
// the requested ID at the same position.  Exactly one of Widget and
// Error is set.
type BatchEntry struct {
	Widget *Widget `json:"widget,omitempty"`
	Error  *Error  `json:"error,omitempty"`
}

// BatchResult is the value arm for GetWidgetBatch.
type BatchResult struct {
	Results []BatchEntry
}

// GetWidgetBatchResult is the result union for GetWidgetBatch.
type GetWidgetBatchResult struct {
	Err   *Error
	Value *BatchResult
}

// MirrorFieldsResult is the result union for MirrorFields.
type MirrorFieldsResult struct {
	Err   *Error
	Value *MirrorPayload
}

// CheckResult is the result union for CheckQuery and CheckPath.
type CheckResult struct {
	Err   *Error
	Value *CheckFields
}
