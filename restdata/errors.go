// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/diffeo/go-conformance/conform"
)

// statusForCode is the fixed mapping from symbolic error codes to
// HTTP status codes.  It is shared by every endpoint; no endpoint may
// override it.
var statusForCode = map[string]int{
	conform.CodeNotModified:        http.StatusNotModified,
	conform.CodeInvalidRequest:     http.StatusBadRequest,
	conform.CodeNotAuthenticated:   http.StatusUnauthorized,
	conform.CodeNotAuthorized:      http.StatusForbidden,
	conform.CodeNotFound:           http.StatusNotFound,
	conform.CodeConflict:           http.StatusConflict,
	conform.CodeRequestTooLarge:    http.StatusRequestEntityTooLarge,
	conform.CodeTooManyRequests:    http.StatusTooManyRequests,
	conform.CodeInternalError:      http.StatusInternalServerError,
	conform.CodeServiceUnavailable: http.StatusServiceUnavailable,
	conform.CodeNotAdmin:           http.StatusForbidden,
}

// StatusForCode maps a symbolic error code to its HTTP status code.
// An unknown or empty code maps to 500 Internal Server Error.
func StatusForCode(code string) int {
	if status, known := statusForCode[code]; known {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorStatus describes errors that correspond to specific HTTP
// status codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrBadRequest is returned as an error when there is an error
// decoding HTTP headers or the request body.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	// Code is the symbolic error code.
	Code string `json:"code"`

	// Message is optional human-oriented detail.
	Message string `json:"message,omitempty"`

	// Stack is only present when the error came from a panic in
	// server code.
	Stack string `json:"stack,omitempty"`
}

// HTTPStatus returns the status code the fixed table assigns to this
// response's code.
func (e *ErrorResponse) HTTPStatus() int {
	return StatusForCode(e.Code)
}

// FromError populates an ErrorResponse based on an error value.
// Service errors keep their symbolic code; transport-layer decode
// failures become InvalidRequest; anything else degrades to
// InternalError.
func (e *ErrorResponse) FromError(err error) {
	switch et := err.(type) {
	case *conform.Error:
		e.Code = et.Code
		e.Message = et.Message
	case ErrBadRequest:
		e.Code = conform.CodeInvalidRequest
		e.Message = et.Err.Error()
	case ErrUnsupportedMediaType:
		e.Code = conform.CodeInvalidRequest
		e.Message = et.Error()
	default:
		e.Code = conform.CodeInternalError
		e.Message = err.Error()
	}
}

// ToError converts e back into a service error.  This is the dual of
// FromError, used by the REST client to rebuild the error arm of a
// result union.
func (e *ErrorResponse) ToError() *conform.Error {
	code := e.Code
	if code == "" {
		code = conform.CodeInternalError
	}
	return &conform.Error{Code: code, Message: e.Message}
}

// FromPanic populates an error response based on a panic.  Typical
// use is:
//
//	defer func() {
//	    if obj := recover(); obj != nil {
//	        resp := restdata.ErrorResponse{}
//	        resp.FromPanic(obj)
//	        // write resp out as makes sense
//	    }
//	}()
func (e *ErrorResponse) FromPanic(obj interface{}) {
	e.Code = "panic"
	if recoveredError, isError := obj.(error); isError {
		e.Message = recoveredError.Error()
	} else {
		e.Message = fmt.Sprintf("%+v", obj)
	}
	var stack [4096]byte
	n := runtime.Stack(stack[:], false)
	e.Stack = string(stack[:n])
}
