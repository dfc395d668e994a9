// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"net/http"
	"testing"

	"github.com/diffeo/go-conformance/conform"
	"github.com/stretchr/testify/assert"
)

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{conform.CodeNotModified, http.StatusNotModified},
		{conform.CodeInvalidRequest, http.StatusBadRequest},
		{conform.CodeNotAuthenticated, http.StatusUnauthorized},
		{conform.CodeNotAuthorized, http.StatusForbidden},
		{conform.CodeNotFound, http.StatusNotFound},
		{conform.CodeConflict, http.StatusConflict},
		{conform.CodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{conform.CodeTooManyRequests, http.StatusTooManyRequests},
		{conform.CodeInternalError, http.StatusInternalServerError},
		{conform.CodeServiceUnavailable, http.StatusServiceUnavailable},
		{conform.CodeNotAdmin, http.StatusForbidden},
	}
	for _, test := range tests {
		assert.Equal(t, test.status, StatusForCode(test.code),
			"StatusForCode(%q)", test.code)
	}
}

// TestStatusForUnknownCode checks that codes outside the fixed table
// map to a generic server error, never to a success status.
func TestStatusForUnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusForCode("Teapot"))
	assert.Equal(t, http.StatusInternalServerError, StatusForCode(""))
	assert.Equal(t, http.StatusInternalServerError, StatusForCode("panic"))
}

func TestFromError(t *testing.T) {
	// A service error keeps its code and message.
	response := ErrorResponse{}
	response.FromError(conform.NotFoundError(17))
	assert.Equal(t, conform.CodeNotFound, response.Code)
	assert.Equal(t, "no such widget 17", response.Message)
	assert.Equal(t, http.StatusNotFound, response.HTTPStatus())

	// Transport-level decode failures become invalid requests.
	response = ErrorResponse{}
	response.FromError(ErrBadRequest{Err: errors.New("bogus body")})
	assert.Equal(t, conform.CodeInvalidRequest, response.Code)

	// Anything else is an internal error.
	response = ErrorResponse{}
	response.FromError(errors.New("wat"))
	assert.Equal(t, conform.CodeInternalError, response.Code)
	assert.Equal(t, http.StatusInternalServerError, response.HTTPStatus())
}

func TestToError(t *testing.T) {
	response := ErrorResponse{Code: conform.CodeConflict, Message: "taken"}
	err := response.ToError()
	if assert.NotNil(t, err) {
		assert.Equal(t, conform.CodeConflict, err.Code)
		assert.Equal(t, "taken", err.Message)
	}
}

func TestFromPanic(t *testing.T) {
	response := ErrorResponse{}
	response.FromPanic("boom")
	assert.Equal(t, "panic", response.Code)
	assert.Contains(t, response.Message, "boom")
	assert.NotEmpty(t, response.Stack)
	// The panic pseudo-code is outside the fixed table on
	// purpose.
	assert.Equal(t, http.StatusInternalServerError, response.HTTPStatus())
}
