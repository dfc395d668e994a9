// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package backend provides a standard way to construct a conformance
// service based on command-line flags.
package backend

import (
	"errors"
	"strings"

	"github.com/diffeo/go-conformance/conform"
	"github.com/diffeo/go-conformance/fixture"
	"github.com/diffeo/go-conformance/memory"
)

// Backend describes user-visible parameters for the widget store.
// This implements the flag.Value interface, and so a typical use is
//
//	func main() {
//	    backend := backend.Backend{Implementation: "memory"}
//	    flag.Var(&backend, "backend", "impl[:address] of the widget store")
//	    flag.Parse()
//	    service, err := backend.Service(cases)
//	}
type Backend struct {
	// Implementation holds the name of the implementation; for
	// instance, "memory".
	Implementation string

	// Address holds some backend-specific address.  The memory
	// backend ignores it.
	Address string
}

// Service creates a new conformance service holding the provided
// test cases.  This generally should only be called once: each call
// with the "memory" implementation creates an independent widget
// store.
func (b *Backend) Service(cases []fixture.Case) (conform.Service, error) {
	switch b.Implementation {
	case "memory", "":
		return memory.New(cases), nil
	default:
		return nil, errors.New("unknown backend " + b.Implementation)
	}
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address", where
// address can be any string.  This is part of the flag.Value
// interface.
func (b *Backend) Set(param string) error {
	parts := strings.SplitN(param, ":", 2)
	b.Implementation = parts[0]
	if len(parts) > 1 {
		b.Address = parts[1]
	} else {
		b.Address = ""
	}
	if b.Implementation != "memory" {
		return errors.New("unknown backend " + b.Implementation)
	}
	return nil
}
