// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package conform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	err := NotFoundError(17)
	assert.Equal(t, CodeNotFound, err.Code)
	assert.Equal(t, "NotFound: no such widget 17", err.Error())

	err = &Error{Code: CodeConflict}
	assert.Equal(t, "Conflict", err.Error())
}

func TestInvalidRequestError(t *testing.T) {
	err := InvalidRequestError("bad input")
	assert.Equal(t, CodeInvalidRequest, err.Code)
	assert.Equal(t, "bad input", err.Message)
}
