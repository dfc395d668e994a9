// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	b := Backend{}
	if assert.NoError(t, b.Set("memory")) {
		assert.Equal(t, "memory", b.Implementation)
		assert.Equal(t, "", b.Address)
		assert.Equal(t, "memory", b.String())
	}
	if assert.NoError(t, b.Set("memory:ignored")) {
		assert.Equal(t, "memory", b.Implementation)
		assert.Equal(t, "ignored", b.Address)
		assert.Equal(t, "memory:ignored", b.String())
	}
	assert.Error(t, b.Set("postgres:host=localhost"))
}

func TestService(t *testing.T) {
	b := Backend{Implementation: "memory"}
	service, err := b.Service(nil)
	if assert.NoError(t, err) {
		assert.NotNil(t, service)
	}

	b = Backend{Implementation: "bogus"}
	_, err = b.Service(nil)
	assert.Error(t, err)
}
