// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// Primitive coercion: pure functions converting a raw string into an
// optional typed value.  A nil return means the value is absent, not
// that the request is in error; malformed input degrades to "field
// never set" and validation stays the backing service's problem.
//
// Integer coercion uses strconv's base-10 parse, so a fractional
// string like "1.9" does not parse an integer prefix; it rejects, and
// the field stays unset.  This policy is applied consistently to
// int32 and int64, from both query parameters and path segments.

import (
	"strconv"
	"strings"
)

// coerceString returns the raw string itself.  Only an empty string
// is treated as absent.
func coerceString(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

// coerceBool accepts exactly "true" and "false", case-insensitively.
// Truthy spellings like "1" or "yes" do not parse.
func coerceBool(raw string) *bool {
	switch strings.ToLower(raw) {
	case "true":
		b := true
		return &b
	case "false":
		b := false
		return &b
	default:
		return nil
	}
}

func coerceInt32(raw string) *int32 {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil
	}
	v32 := int32(v)
	return &v32
}

func coerceInt64(raw string) *int64 {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// coerceFloat backs both the double and decimal wire types.  It uses
// Go's default float parser, so the usual "Inf" and "NaN" spellings
// are accepted.
func coerceFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// coerceEnum passes the raw string through as a symbolic tag.  Enum
// membership is deliberately not checked here; an invalid tag is
// forwarded for the service to reject.
func coerceEnum(raw string) *string {
	return coerceString(raw)
}

// coerceDatetime passes the raw ISO-8601 text through unchanged,
// without parsing it.
func coerceDatetime(raw string) *string {
	return coerceString(raw)
}
