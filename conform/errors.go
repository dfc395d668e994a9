// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package conform

import "fmt"

// Symbolic error codes a Service may return.  The restdata package
// owns the mapping from these codes to HTTP status codes; nothing in
// this package depends on HTTP.
const (
	CodeNotModified        = "NotModified"
	CodeInvalidRequest     = "InvalidRequest"
	CodeNotAuthenticated   = "NotAuthenticated"
	CodeNotAuthorized      = "NotAuthorized"
	CodeNotFound           = "NotFound"
	CodeConflict           = "Conflict"
	CodeRequestTooLarge    = "RequestTooLarge"
	CodeTooManyRequests    = "TooManyRequests"
	CodeInternalError      = "InternalError"
	CodeServiceUnavailable = "ServiceUnavailable"
	CodeNotAdmin           = "NotAdmin"
)

// Error is the error arm of every result union.  Code is a symbolic
// name, not an HTTP status; codes outside the well-known set are
// legal and map to a generic server error at the transport layer.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// NotFoundError builds a NotFound error for a widget ID.
func NotFoundError(id int32) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("no such widget %d", id)}
}

// InvalidRequestError builds an InvalidRequest error with a reason.
func InvalidRequestError(message string) *Error {
	return &Error{Code: CodeInvalidRequest, Message: message}
}
